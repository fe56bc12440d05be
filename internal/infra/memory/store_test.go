//go:build unit

package memory_test

import (
	"context"
	"testing"
	"time"

	"tripbook-reservations/internal/infra"
	"tripbook-reservations/internal/infra/memory"
	"tripbook-reservations/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationStore(t *testing.T) {
	ctx := context.Background()

	t.Run("draft partition round trip", func(t *testing.T) {
		store := memory.NewReservationStore()
		draft := builder.NewReservationBuilder().Build()

		require.NoError(t, store.SaveDraft(ctx, draft))

		loaded, err := store.GetDraft(ctx, draft.ID())
		require.NoError(t, err)
		assert.Equal(t, draft.ID(), loaded.ID())
		assert.Equal(t, draft.TotalPrice(), loaded.TotalPrice())

		// Loads are snapshots: mutating the loaded copy never leaks back.
		loaded.ClearHotelConfirmation(time.Now())
		again, err := store.GetDraft(ctx, draft.ID())
		require.NoError(t, err)
		assert.Equal(t, draft.Hotel(), again.Hotel())

		require.NoError(t, store.DeleteDraft(ctx, draft.ID()))
		_, err = store.GetDraft(ctx, draft.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("partitions are independent", func(t *testing.T) {
		store := memory.NewReservationStore()
		res := builder.NewReservationBuilder().BuildConfirmed()

		require.NoError(t, store.SaveConfirmed(ctx, res))

		_, err := store.GetDraft(ctx, res.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		loaded, err := store.GetConfirmed(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, res.Status(), loaded.Status())
	})

	t.Run("update requires an existing confirmed record", func(t *testing.T) {
		store := memory.NewReservationStore()
		res := builder.NewReservationBuilder().BuildConfirmed()

		err := store.UpdateConfirmed(ctx, res)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		require.NoError(t, store.SaveConfirmed(ctx, res))
		require.NoError(t, store.UpdateConfirmed(ctx, res))
	})

	t.Run("delete of missing draft reports not found", func(t *testing.T) {
		store := memory.NewReservationStore()
		err := store.DeleteDraft(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("list by user returns drafts before confirmed", func(t *testing.T) {
		store := memory.NewReservationStore()
		userID := uuid.New()

		confirmed := builder.NewReservationBuilder().WithUserID(userID).
			WithNow(time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)).BuildConfirmed()
		draft := builder.NewReservationBuilder().WithUserID(userID).
			WithNow(time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC)).Build()
		other := builder.NewReservationBuilder().Build()

		require.NoError(t, store.SaveConfirmed(ctx, confirmed))
		require.NoError(t, store.SaveDraft(ctx, draft))
		require.NoError(t, store.SaveDraft(ctx, other))

		list, err := store.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, draft.ID(), list[0].ID())
		assert.Equal(t, confirmed.ID(), list[1].ID())
	})
}
