package usecase

import (
	"context"

	"tripbook-reservations/internal/domain/reservation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports_mock.go -package=usecasemock

// Provider quotes. A quote with Available=false or a nil Price means the item
// cannot be added; the orchestrator never books sight-unseen.

type HotelQuote struct {
	Available bool
	Price     *reservation.Money
}

type TransportQuote struct {
	Available bool
	Price     *reservation.Money
	// Departure and arrival as reported by the provider for the requested
	// travel date.
	DepartureDate reservation.Date
	ArrivalDate   reservation.Date
}

type ActivityQuote struct {
	Available bool
	Price     *reservation.Money
}

// HotelProvider is the capability contract for hotel inventory systems.
// CheckAvailabilityAndPrice must not mutate provider state. Book is not
// retried automatically; idempotency is the provider's responsibility.
type HotelProvider interface {
	CheckAvailabilityAndPrice(ctx context.Context, hotelID, roomID string, checkIn, checkOut reservation.Date) (HotelQuote, error)
	Book(ctx context.Context, details reservation.HotelBooking) (string, error)
	Cancel(ctx context.Context, confirmationNumber string) (bool, error)
}

type TransportProvider interface {
	CheckAvailabilityAndPrice(ctx context.Context, transportID, transportType string, date reservation.Date) (TransportQuote, error)
	Book(ctx context.Context, details reservation.TransportBooking) (string, error)
	Cancel(ctx context.Context, confirmationNumber string) (bool, error)
}

type ActivityProvider interface {
	CheckAvailabilityAndPrice(ctx context.Context, activityID string, date reservation.Date, participants int) (ActivityQuote, error)
	Book(ctx context.Context, details reservation.ActivityBooking) (string, error)
	Cancel(ctx context.Context, confirmationNumber string) (bool, error)
}

// ReservationGateway is the authoritative backend system of record; the
// local store is a cache/working copy. Submit and Update return the server's
// canonical copy of the aggregate.
type ReservationGateway interface {
	SubmitReservation(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	UpdateReservation(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	CancelRemoteReservation(ctx context.Context, id uuid.UUID) (bool, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

// ReservationStore persists aggregates in two partitions: mutable drafts and
// finalized confirmed records. Writes are last-write-wins; the
// one-session-per-aggregate invariant makes optimistic concurrency
// unnecessary here.
type ReservationStore interface {
	SaveDraft(ctx context.Context, res *reservation.Reservation) error
	GetDraft(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
	SaveConfirmed(ctx context.Context, res *reservation.Reservation) error
	GetConfirmed(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateConfirmed(ctx context.Context, res *reservation.Reservation) error
	// ListByUser returns the union of both partitions, drafts first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*reservation.Reservation, error)
}

// ProgressTracker records flow/step transitions for diagnostics and progress
// UIs. It is fire-and-forget: implementations must never fail the
// orchestration.
type ProgressTracker interface {
	StartFlow(name string)
	UpdateStep(name string, completed bool)
	CompleteFlow(name string)
	ResetFlow(name string)
}
