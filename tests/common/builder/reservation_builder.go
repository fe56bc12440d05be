package builder

import (
	"time"

	"tripbook-reservations/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationBuilder assembles a coherent aggregate for tests: a two-night
// hotel stay with a flight and an activity inside the stay. Mutators let each
// case break exactly one thing.
type ReservationBuilder struct {
	userID     uuid.UUID
	now        time.Time
	hotel      *reservation.HotelBooking
	transports []reservation.TransportBooking
	activities []reservation.ActivityBooking
}

func NewReservationBuilder() *ReservationBuilder {
	checkIn := reservation.NewDate(2026, time.July, 10)
	checkOut := reservation.NewDate(2026, time.July, 12)

	hotel := reservation.HotelBooking{
		HotelID:      "HTL-001",
		RoomID:       "deluxe",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Price:        MoneyPtr(24100),
	}
	flight := reservation.TransportBooking{
		TransportID:   "FL-123",
		Type:          "FLIGHT",
		DepartureDate: checkIn,
		ArrivalDate:   checkIn,
		Price:         MoneyPtr(25000),
	}
	activity := reservation.ActivityBooking{
		ActivityID:   "ACT-TOUR",
		Date:         reservation.NewDate(2026, time.July, 11),
		Participants: 2,
		Price:        MoneyPtr(15050),
	}

	return &ReservationBuilder{
		userID:     uuid.New(),
		now:        time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC),
		hotel:      &hotel,
		transports: []reservation.TransportBooking{flight},
		activities: []reservation.ActivityBooking{activity},
	}
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.userID = id
	return b
}

func (b *ReservationBuilder) WithNow(now time.Time) *ReservationBuilder {
	b.now = now
	return b
}

func (b *ReservationBuilder) WithHotel(h reservation.HotelBooking) *ReservationBuilder {
	b.hotel = &h
	return b
}

func (b *ReservationBuilder) WithoutHotel() *ReservationBuilder {
	b.hotel = nil
	return b
}

func (b *ReservationBuilder) WithTransports(ts ...reservation.TransportBooking) *ReservationBuilder {
	b.transports = ts
	return b
}

func (b *ReservationBuilder) WithActivities(as ...reservation.ActivityBooking) *ReservationBuilder {
	b.activities = as
	return b
}

func (b *ReservationBuilder) Empty() *ReservationBuilder {
	b.hotel = nil
	b.transports = nil
	b.activities = nil
	return b
}

func (b *ReservationBuilder) Build() *reservation.Reservation {
	res := reservation.NewReservation(b.userID, b.now)
	if b.hotel != nil {
		res.SetHotel(*b.hotel, b.now)
	}
	for _, t := range b.transports {
		res.AddTransport(t, b.now)
	}
	for _, a := range b.activities {
		res.AddActivity(a, b.now)
	}
	return res
}

// BuildConfirmed returns the aggregate in CONFIRMED state with every sub-item
// carrying a confirmation number.
func (b *ReservationBuilder) BuildConfirmed() *reservation.Reservation {
	res := b.Build()
	if res.Hotel() != nil {
		_ = res.ConfirmHotel("HOTEL-TEST", b.now)
	}
	for i := range res.Transports() {
		_ = res.ConfirmTransport(i, "TRANS-TEST", b.now)
	}
	for i := range res.Activities() {
		_ = res.ConfirmActivity(i, "ACT-TEST", b.now)
	}
	_ = res.BeginConfirmation(b.now)
	_ = res.MarkConfirmed(b.now)
	return res
}

func MoneyPtr(cents int64) *reservation.Money {
	m := reservation.NewMoney(cents)
	return &m
}

func StringPtr(s string) *string {
	return &s
}
