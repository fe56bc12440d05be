package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the serializable projection of the aggregate, used by the
// store, the remote gateway wire format and deep cloning. All fields are
// exported; the aggregate itself keeps its fields private.
type Snapshot struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	Status     Status             `json:"status"`
	Hotel      *HotelBooking      `json:"hotel,omitempty"`
	Transports []TransportBooking `json:"transports"`
	Activities []ActivityBooking  `json:"activities"`
	TotalPrice Money              `json:"total_price"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (r *Reservation) Snapshot() Snapshot {
	return Snapshot{
		ID:         r.id,
		UserID:     r.userID,
		Status:     r.status,
		Hotel:      r.Hotel(),
		Transports: r.Transports(),
		Activities: r.Activities(),
		TotalPrice: r.totalPrice,
		CreatedAt:  r.createdAt,
		UpdatedAt:  r.updatedAt,
	}
}

func FromSnapshot(s Snapshot) (*Reservation, error) {
	if !s.Status.IsValid() {
		return nil, ErrInvalidTransition
	}
	r := &Reservation{
		id:         s.ID,
		userID:     s.UserID,
		status:     s.Status,
		hotel:      s.Hotel,
		transports: s.Transports,
		activities: s.Activities,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
	}
	r.recalcTotal()
	return r, nil
}

// Clone returns a deep copy with fresh sub-item containers and fresh price /
// confirmation cells, so a modification session can mutate the copy without
// touching the confirmed original.
func (r *Reservation) Clone() (*Reservation, error) {
	s := r.Snapshot()
	if s.Hotel != nil {
		h := *s.Hotel
		h.Price = cloneMoney(h.Price)
		h.ConfirmationNumber = cloneString(h.ConfirmationNumber)
		s.Hotel = &h
	}
	for i := range s.Transports {
		s.Transports[i].Price = cloneMoney(s.Transports[i].Price)
		s.Transports[i].ConfirmationNumber = cloneString(s.Transports[i].ConfirmationNumber)
	}
	for i := range s.Activities {
		s.Activities[i].Price = cloneMoney(s.Activities[i].Price)
		s.Activities[i].ConfirmationNumber = cloneString(s.Activities[i].ConfirmationNumber)
	}
	return FromSnapshot(s)
}

func cloneMoney(m *Money) *Money {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
