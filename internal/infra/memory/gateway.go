package memory

import (
	"context"
	"sync"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/internal/infra"
	"tripbook-reservations/internal/usecase"

	"github.com/google/uuid"
)

// ReservationGateway simulates the authoritative backend booking service for
// local development and tests. Submitted aggregates come back as the
// canonical confirmed copy, mirroring the real gateway contract.
type ReservationGateway struct {
	mu     sync.RWMutex
	remote map[uuid.UUID]reservation.Snapshot
}

var _ usecase.ReservationGateway = (*ReservationGateway)(nil)

func NewReservationGateway() *ReservationGateway {
	return &ReservationGateway{
		remote: make(map[uuid.UUID]reservation.Snapshot),
	}
}

func (g *ReservationGateway) SubmitReservation(_ context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := res.Snapshot()
	snap.Status = reservation.StatusConfirmed
	g.remote[snap.ID] = snap
	return reservation.FromSnapshot(snap)
}

func (g *ReservationGateway) UpdateReservation(_ context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.remote[res.ID()]; !ok {
		return nil, infra.NewError(infra.KindNotFound, "remote reservation not found")
	}
	snap := res.Snapshot()
	snap.Status = reservation.StatusConfirmed
	g.remote[snap.ID] = snap
	return reservation.FromSnapshot(snap)
}

func (g *ReservationGateway) CancelRemoteReservation(_ context.Context, id uuid.UUID) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap, ok := g.remote[id]
	if !ok {
		return false, nil
	}
	snap.Status = reservation.StatusCancelled
	g.remote[id] = snap
	return true, nil
}

func (g *ReservationGateway) GetReservation(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap, ok := g.remote[id]
	if !ok {
		return nil, infra.NewError(infra.KindNotFound, "remote reservation not found")
	}
	return reservation.FromSnapshot(snap)
}
