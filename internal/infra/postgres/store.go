package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/internal/infra"
	"tripbook-reservations/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reservation_drafts (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	doc JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS reservation_confirmed (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	doc JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_reservation_drafts_user ON reservation_drafts(user_id);
CREATE INDEX IF NOT EXISTS idx_reservation_confirmed_user ON reservation_confirmed(user_id);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}

// ReservationStore persists aggregate snapshots as JSONB documents, one table
// per partition. Writes are last-write-wins by design.
type ReservationStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

var _ usecase.ReservationStore = (*ReservationStore)(nil)

func NewReservationStore(pool *pgxpool.Pool, logger *slog.Logger) *ReservationStore {
	return &ReservationStore{pool: pool, logger: logger}
}

func (s *ReservationStore) SaveDraft(ctx context.Context, res *reservation.Reservation) error {
	return s.upsert(ctx, "reservation_drafts", res)
}

func (s *ReservationStore) GetDraft(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return s.get(ctx, "reservation_drafts", id)
}

func (s *ReservationStore) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM reservation_drafts WHERE id = $1`, id)
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindStoreFailure, "failed to delete draft", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewError(infra.KindNotFound, "draft reservation not found")
	}
	return nil
}

func (s *ReservationStore) SaveConfirmed(ctx context.Context, res *reservation.Reservation) error {
	return s.upsert(ctx, "reservation_confirmed", res)
}

func (s *ReservationStore) GetConfirmed(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return s.get(ctx, "reservation_confirmed", id)
}

func (s *ReservationStore) UpdateConfirmed(ctx context.Context, res *reservation.Reservation) error {
	doc, err := json.Marshal(res.Snapshot())
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindStoreFailure, "failed to encode reservation", err)
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE reservation_confirmed SET doc = $2, updated_at = now() WHERE id = $1`,
		res.ID(), doc)
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindStoreFailure, "failed to update confirmed reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewError(infra.KindNotFound, "confirmed reservation not found")
	}
	return nil
}

func (s *ReservationStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*reservation.Reservation, error) {
	// Drafts first, then confirmed, oldest first within each partition.
	rows, err := s.pool.Query(ctx, `
		SELECT doc FROM (
			SELECT doc, 0 AS part, updated_at FROM reservation_drafts WHERE user_id = $1
			UNION ALL
			SELECT doc, 1 AS part, updated_at FROM reservation_confirmed WHERE user_id = $1
		) r ORDER BY part, updated_at`, userID)
	if err != nil {
		return nil, infra.WrapErr(s.logger, infra.KindStoreFailure, "failed to list reservations", err)
	}
	defer rows.Close()

	var out []*reservation.Reservation
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, infra.WrapErr(s.logger, infra.KindStoreFailure, "failed to scan reservation row", err)
		}
		res, err := decode(doc)
		if err != nil {
			return nil, infra.WrapErr(s.logger, infra.KindStoreFailure, "failed to decode reservation", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapErr(s.logger, infra.KindStoreFailure, "failed to read reservation rows", err)
	}
	return out, nil
}

func (s *ReservationStore) upsert(ctx context.Context, table string, res *reservation.Reservation) error {
	doc, err := json.Marshal(res.Snapshot())
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindStoreFailure, "failed to encode reservation", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO `+table+` (id, user_id, doc, updated_at) VALUES ($1, $2, $3, now())
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		res.ID(), res.UserID(), doc)
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindStoreFailure, "failed to save reservation", err)
	}
	return nil
}

func (s *ReservationStore) get(ctx context.Context, table string, id uuid.UUID) (*reservation.Reservation, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM `+table+` WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.NewError(infra.KindNotFound, "reservation not found")
	}
	if err != nil {
		return nil, infra.WrapErr(s.logger, infra.KindStoreFailure, "failed to load reservation", err)
	}
	return decode(doc)
}

func decode(doc []byte) (*reservation.Reservation, error) {
	var snap reservation.Snapshot
	if err := json.Unmarshal(doc, &snap); err != nil {
		return nil, err
	}
	return reservation.FromSnapshot(snap)
}
