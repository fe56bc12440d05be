package memory

import (
	"context"
	"sort"
	"sync"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/internal/infra"
	"tripbook-reservations/internal/usecase"

	"github.com/google/uuid"
)

// ReservationStore keeps the draft and confirmed partitions in process
// memory. It backs local development and the test suites; production wiring
// uses the postgres adapter behind the same interface.
type ReservationStore struct {
	mu        sync.RWMutex
	drafts    map[uuid.UUID]reservation.Snapshot
	confirmed map[uuid.UUID]reservation.Snapshot
}

var _ usecase.ReservationStore = (*ReservationStore)(nil)

func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		drafts:    make(map[uuid.UUID]reservation.Snapshot),
		confirmed: make(map[uuid.UUID]reservation.Snapshot),
	}
}

func (s *ReservationStore) SaveDraft(_ context.Context, res *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[res.ID()] = res.Snapshot()
	return nil
}

func (s *ReservationStore) GetDraft(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.drafts[id]
	if !ok {
		return nil, infra.NewError(infra.KindNotFound, "draft reservation not found")
	}
	return reservation.FromSnapshot(snap)
}

func (s *ReservationStore) DeleteDraft(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[id]; !ok {
		return infra.NewError(infra.KindNotFound, "draft reservation not found")
	}
	delete(s.drafts, id)
	return nil
}

func (s *ReservationStore) SaveConfirmed(_ context.Context, res *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmed[res.ID()] = res.Snapshot()
	return nil
}

func (s *ReservationStore) GetConfirmed(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.confirmed[id]
	if !ok {
		return nil, infra.NewError(infra.KindNotFound, "confirmed reservation not found")
	}
	return reservation.FromSnapshot(snap)
}

func (s *ReservationStore) UpdateConfirmed(_ context.Context, res *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.confirmed[res.ID()]; !ok {
		return infra.NewError(infra.KindNotFound, "confirmed reservation not found")
	}
	s.confirmed[res.ID()] = res.Snapshot()
	return nil
}

func (s *ReservationStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collect := func(partition map[uuid.UUID]reservation.Snapshot) ([]*reservation.Reservation, error) {
		var out []*reservation.Reservation
		for _, snap := range partition {
			if snap.UserID != userID {
				continue
			}
			res, err := reservation.FromSnapshot(snap)
			if err != nil {
				return nil, err
			}
			out = append(out, res)
		}
		sort.Slice(out, func(i, j int) bool {
			return out[i].CreatedAt().Before(out[j].CreatedAt())
		})
		return out, nil
	}

	drafts, err := collect(s.drafts)
	if err != nil {
		return nil, err
	}
	confirmed, err := collect(s.confirmed)
	if err != nil {
		return nil, err
	}
	return append(drafts, confirmed...), nil
}
