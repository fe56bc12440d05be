package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange    = errors.New("check-out date must be after check-in date")
	ErrEmptyReservation    = errors.New("reservation must include at least one item")
	ErrNoParticipants      = errors.New("activity requires at least one participant")
	ErrIncoherentItinerary = errors.New("activity date falls outside the hotel stay")
	ErrInvalidTransition   = errors.New("invalid reservation status transition")
	ErrNoSuchItem          = errors.New("no such booking item")
	ErrNoHotelItem         = errors.New("reservation has no hotel item")
)

// Reservation is the aggregate root for a composite travel booking: at most
// one hotel stay plus ordered lists of transport legs and activities. The
// total price is always recomputed from the sub-items, never set directly.
type Reservation struct {
	id         uuid.UUID
	userID     uuid.UUID
	status     Status
	hotel      *HotelBooking
	transports []TransportBooking
	activities []ActivityBooking
	totalPrice Money
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(userID uuid.UUID, now time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		userID:    userID,
		status:    StatusInProgress,
		createdAt: now,
		updatedAt: now,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) TotalPrice() Money    { return r.totalPrice }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// Hotel returns a copy of the hotel sub-item, or nil when none is set.
func (r *Reservation) Hotel() *HotelBooking {
	if r.hotel == nil {
		return nil
	}
	h := *r.hotel
	return &h
}

// Transports returns a copy of the transport sub-items in insertion order.
func (r *Reservation) Transports() []TransportBooking {
	out := make([]TransportBooking, len(r.transports))
	copy(out, r.transports)
	return out
}

// Activities returns a copy of the activity sub-items in insertion order.
func (r *Reservation) Activities() []ActivityBooking {
	out := make([]ActivityBooking, len(r.activities))
	copy(out, r.activities)
	return out
}

func (r *Reservation) IsEmpty() bool {
	return r.hotel == nil && len(r.transports) == 0 && len(r.activities) == 0
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// SetHotel replaces the hotel sub-item; a reservation holds at most one.
func (r *Reservation) SetHotel(b HotelBooking, now time.Time) {
	r.hotel = &b
	r.recalcTotal()
	r.touch(now)
}

func (r *Reservation) AddTransport(b TransportBooking, now time.Time) {
	r.transports = append(r.transports, b)
	r.recalcTotal()
	r.touch(now)
}

func (r *Reservation) AddActivity(b ActivityBooking, now time.Time) {
	r.activities = append(r.activities, b)
	r.recalcTotal()
	r.touch(now)
}

// ConfirmHotel records the provider's confirmation number. Confirmation
// numbers are never fabricated; these methods are the only write path.
func (r *Reservation) ConfirmHotel(confirmation string, now time.Time) error {
	if r.hotel == nil {
		return ErrNoHotelItem
	}
	r.hotel.ConfirmationNumber = &confirmation
	r.touch(now)
	return nil
}

func (r *Reservation) ConfirmTransport(i int, confirmation string, now time.Time) error {
	if i < 0 || i >= len(r.transports) {
		return ErrNoSuchItem
	}
	r.transports[i].ConfirmationNumber = &confirmation
	r.touch(now)
	return nil
}

func (r *Reservation) ConfirmActivity(i int, confirmation string, now time.Time) error {
	if i < 0 || i >= len(r.activities) {
		return ErrNoSuchItem
	}
	r.activities[i].ConfirmationNumber = &confirmation
	r.touch(now)
	return nil
}

func (r *Reservation) ClearHotelConfirmation(now time.Time) {
	if r.hotel != nil {
		r.hotel.ConfirmationNumber = nil
		r.touch(now)
	}
}

func (r *Reservation) ClearTransportConfirmation(i int, now time.Time) {
	if i >= 0 && i < len(r.transports) {
		r.transports[i].ConfirmationNumber = nil
		r.touch(now)
	}
}

func (r *Reservation) ClearActivityConfirmation(i int, now time.Time) {
	if i >= 0 && i < len(r.activities) {
		r.activities[i].ConfirmationNumber = nil
		r.touch(now)
	}
}

// Validate is the confirmation gate: pure, no I/O.
func (r *Reservation) Validate() error {
	if r.IsEmpty() {
		return ErrEmptyReservation
	}
	if r.hotel != nil && !r.hotel.CheckOutDate.After(r.hotel.CheckInDate) {
		return ErrInvalidDateRange
	}
	for _, t := range r.transports {
		if t.ArrivalDate.Before(t.DepartureDate) {
			return ErrInvalidDateRange
		}
	}
	for _, a := range r.activities {
		if a.Participants <= 0 {
			return ErrNoParticipants
		}
		if r.hotel != nil {
			if a.Date.Before(r.hotel.CheckInDate) || !a.Date.Before(r.hotel.CheckOutDate) {
				return ErrIncoherentItinerary
			}
		}
	}
	return nil
}

func (r *Reservation) BeginConfirmation(now time.Time) error {
	return r.transition(StatusPendingConfirmation, now)
}

func (r *Reservation) MarkConfirmed(now time.Time) error {
	return r.transition(StatusConfirmed, now)
}

func (r *Reservation) MarkModified(now time.Time) error {
	return r.transition(StatusModified, now)
}

func (r *Reservation) MarkCancelled(now time.Time) error {
	return r.transition(StatusCancelled, now)
}

// ReopenForModification turns a confirmed aggregate (normally a deep copy of
// one) back into a mutable in-progress session.
func (r *Reservation) ReopenForModification(now time.Time) error {
	return r.transition(StatusInProgress, now)
}

func (r *Reservation) transition(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	r.touch(now)
	return nil
}

func (r *Reservation) recalcTotal() {
	var total Money
	if r.hotel != nil && r.hotel.Price != nil {
		total = total.Add(*r.hotel.Price)
	}
	for _, t := range r.transports {
		if t.Price != nil {
			total = total.Add(*t.Price)
		}
	}
	for _, a := range r.activities {
		if a.Price != nil {
			total = total.Add(*a.Price)
		}
	}
	r.totalPrice = total
}

// touch keeps updatedAt strictly monotonic even when the clock stands still.
func (r *Reservation) touch(now time.Time) {
	if now.After(r.updatedAt) {
		r.updatedAt = now
		return
	}
	r.updatedAt = r.updatedAt.Add(time.Nanosecond)
}
