//go:build unit

package reservation_test

import (
	"encoding/json"
	"testing"
	"time"

	"tripbook-reservations/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("exact cent arithmetic", func(t *testing.T) {
		nights := reservation.NewMoney(12050).MulInt(3)
		assert.Equal(t, int64(36150), nights.Cents())

		total := nights.Add(reservation.NewMoney(25000)).Add(reservation.NewMoney(7525))
		assert.Equal(t, int64(68675), total.Cents())
	})

	t.Run("string rendering", func(t *testing.T) {
		assert.Equal(t, "120.50", reservation.NewMoney(12050).String())
		assert.Equal(t, "0.05", reservation.NewMoney(5).String())
		assert.Equal(t, "250.00", reservation.NewMoney(25000).String())
	})

	t.Run("negative amounts rejected", func(t *testing.T) {
		_, err := reservation.NewMoneyFromCents(-1)
		assert.Error(t, err)

		m, err := reservation.NewMoneyFromCents(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("json is integer cents", func(t *testing.T) {
		raw, err := json.Marshal(reservation.NewMoney(12050))
		require.NoError(t, err)
		assert.Equal(t, "12050", string(raw))

		var m reservation.Money
		require.NoError(t, json.Unmarshal([]byte("7525"), &m))
		assert.Equal(t, int64(7525), m.Cents())
	})
}

func TestDate(t *testing.T) {
	t.Run("parse and format", func(t *testing.T) {
		d, err := reservation.ParseDate("2026-07-10")
		require.NoError(t, err)
		assert.Equal(t, "2026-07-10", d.String())
		assert.True(t, d.Equal(reservation.NewDate(2026, time.July, 10)))

		_, err = reservation.ParseDate("10/07/2026")
		assert.Error(t, err)
	})

	t.Run("ordering and arithmetic", func(t *testing.T) {
		checkIn := reservation.NewDate(2026, time.July, 10)
		checkOut := reservation.NewDate(2026, time.July, 12)

		assert.True(t, checkIn.Before(checkOut))
		assert.True(t, checkOut.After(checkIn))
		assert.Equal(t, 2, checkIn.DaysUntil(checkOut))
		assert.True(t, checkIn.AddDays(2).Equal(checkOut))
		assert.False(t, checkIn.IsZero())
		assert.True(t, reservation.Date{}.IsZero())
	})

	t.Run("time component is dropped", func(t *testing.T) {
		late := time.Date(2026, time.July, 10, 23, 59, 59, 0, time.UTC)
		assert.True(t, reservation.DateOf(late).Equal(reservation.NewDate(2026, time.July, 10)))
	})

	t.Run("json round trip", func(t *testing.T) {
		d := reservation.NewDate(2026, time.July, 10)
		raw, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2026-07-10"`, string(raw))

		var parsed reservation.Date
		require.NoError(t, json.Unmarshal(raw, &parsed))
		assert.True(t, parsed.Equal(d))

		assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &parsed))
	})
}

func TestStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		for _, s := range []reservation.Status{
			reservation.StatusInProgress,
			reservation.StatusPendingConfirmation,
			reservation.StatusConfirmed,
			reservation.StatusModified,
			reservation.StatusCancelled,
		} {
			assert.True(t, s.IsValid(), string(s))
		}
		assert.False(t, reservation.Status("unknown").IsValid())
	})

	t.Run("terminal state", func(t *testing.T) {
		assert.True(t, reservation.StatusCancelled.IsTerminal())
		assert.False(t, reservation.StatusConfirmed.IsTerminal())
	})
}
