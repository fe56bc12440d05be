//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validateCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual := builder.NewReservationBuilder().Build()
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusInProgress, actual.Status())
		assert.NotNil(t, actual.Hotel())
		assert.Len(t, actual.Transports(), 1)
		assert.Len(t, actual.Activities(), 1)
		assert.Equal(t, int64(24100+25000+15050), actual.TotalPrice().Cents())
		assert.False(t, actual.CreatedAt().IsZero())
	})

	t.Run("validation", func(t *testing.T) {
		runValidateCases(t, []validateCase{
			{
				name: "valid aggregate",
			},
			{
				name:   "empty reservation",
				mutate: func(b *builder.ReservationBuilder) { b.Empty() },
				errIs:  reservation.ErrEmptyReservation,
			},
			{
				name: "hotel only is valid",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithTransports().WithActivities()
				},
			},
			{
				name: "checkout equal to checkin",
				mutate: func(b *builder.ReservationBuilder) {
					day := reservation.NewDate(2026, time.July, 10)
					b.WithHotel(reservation.HotelBooking{
						HotelID: "HTL-001", RoomID: "deluxe",
						CheckInDate: day, CheckOutDate: day,
					}).WithActivities()
				},
				errIs: reservation.ErrInvalidDateRange,
			},
			{
				name: "transport arrives before departure",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithTransports(reservation.TransportBooking{
						TransportID:   "TR-9",
						Type:          "TRAIN",
						DepartureDate: reservation.NewDate(2026, time.July, 10),
						ArrivalDate:   reservation.NewDate(2026, time.July, 9),
					})
				},
				errIs: reservation.ErrInvalidDateRange,
			},
			{
				name: "activity without participants",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithActivities(reservation.ActivityBooking{
						ActivityID:   "ACT-0",
						Date:         reservation.NewDate(2026, time.July, 11),
						Participants: 0,
					})
				},
				errIs: reservation.ErrNoParticipants,
			},
			{
				name: "activity before the hotel stay",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithActivities(reservation.ActivityBooking{
						ActivityID:   "ACT-EARLY",
						Date:         reservation.NewDate(2026, time.July, 9),
						Participants: 1,
					})
				},
				errIs: reservation.ErrIncoherentItinerary,
			},
			{
				name: "activity on checkout day",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithActivities(reservation.ActivityBooking{
						ActivityID:   "ACT-LATE",
						Date:         reservation.NewDate(2026, time.July, 12),
						Participants: 1,
					})
				},
				errIs: reservation.ErrIncoherentItinerary,
			},
			{
				name: "activity without hotel has no stay constraint",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithoutHotel().WithActivities(reservation.ActivityBooking{
						ActivityID:   "ACT-FREE",
						Date:         reservation.NewDate(2026, time.December, 24),
						Participants: 1,
					})
				},
			},
		})
	})

	t.Run("total price recomputed on every mutation", func(t *testing.T) {
		now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
		res := builder.NewReservationBuilder().Empty().WithNow(now).Build()
		assert.True(t, res.TotalPrice().IsZero())

		hotel := reservation.HotelBooking{
			HotelID: "HTL-001", RoomID: "std",
			CheckInDate:  reservation.NewDate(2026, time.July, 10),
			CheckOutDate: reservation.NewDate(2026, time.July, 12),
			Price:        builder.MoneyPtr(24100),
		}
		res.SetHotel(hotel, now)
		assert.Equal(t, int64(24100), res.TotalPrice().Cents())

		// Replacing the single hotel slot must not double-count.
		hotel.Price = builder.MoneyPtr(30000)
		res.SetHotel(hotel, now)
		assert.Equal(t, int64(30000), res.TotalPrice().Cents())

		res.AddTransport(reservation.TransportBooking{
			TransportID:   "FL-1",
			Type:          "FLIGHT",
			DepartureDate: reservation.NewDate(2026, time.July, 10),
			ArrivalDate:   reservation.NewDate(2026, time.July, 10),
			Price:         builder.MoneyPtr(25000),
		}, now)
		assert.Equal(t, int64(55000), res.TotalPrice().Cents())

		// Unpriced items contribute nothing.
		res.AddActivity(reservation.ActivityBooking{
			ActivityID: "ACT-X", Date: reservation.NewDate(2026, time.July, 11), Participants: 1,
		}, now)
		assert.Equal(t, int64(55000), res.TotalPrice().Cents())
	})

	t.Run("updatedAt is strictly monotonic under a frozen clock", func(t *testing.T) {
		now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
		res := reservation.NewReservation(uuid.New(), now)

		prev := res.UpdatedAt()
		for i := 0; i < 5; i++ {
			res.AddTransport(reservation.TransportBooking{
				TransportID:   "FL-1",
				Type:          "FLIGHT",
				DepartureDate: reservation.NewDate(2026, time.July, 10),
				ArrivalDate:   reservation.NewDate(2026, time.July, 10),
			}, now)
			assert.True(t, res.UpdatedAt().After(prev))
			prev = res.UpdatedAt()
		}
	})

	t.Run("confirmation numbers", func(t *testing.T) {
		now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
		res := builder.NewReservationBuilder().WithNow(now).Build()

		require.NoError(t, res.ConfirmHotel("HOTEL-ABC", now))
		require.NoError(t, res.ConfirmTransport(0, "TRANS-DEF", now))
		require.NoError(t, res.ConfirmActivity(0, "ACT-GHI", now))

		require.NotNil(t, res.Hotel().ConfirmationNumber)
		assert.Equal(t, "HOTEL-ABC", *res.Hotel().ConfirmationNumber)
		assert.Equal(t, "TRANS-DEF", *res.Transports()[0].ConfirmationNumber)
		assert.Equal(t, "ACT-GHI", *res.Activities()[0].ConfirmationNumber)

		res.ClearHotelConfirmation(now)
		assert.Nil(t, res.Hotel().ConfirmationNumber)

		assert.ErrorIs(t, res.ConfirmTransport(5, "X", now), reservation.ErrNoSuchItem)
		assert.ErrorIs(t, res.ConfirmActivity(-1, "X", now), reservation.ErrNoSuchItem)

		bare := builder.NewReservationBuilder().WithoutHotel().Build()
		assert.ErrorIs(t, bare.ConfirmHotel("X", now), reservation.ErrNoHotelItem)
	})

	t.Run("status transitions", func(t *testing.T) {
		now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

		t.Run("full lifecycle", func(t *testing.T) {
			res := builder.NewReservationBuilder().WithNow(now).Build()

			require.NoError(t, res.BeginConfirmation(now))
			assert.Equal(t, reservation.StatusPendingConfirmation, res.Status())

			require.NoError(t, res.MarkConfirmed(now))
			assert.Equal(t, reservation.StatusConfirmed, res.Status())

			require.NoError(t, res.ReopenForModification(now))
			assert.Equal(t, reservation.StatusInProgress, res.Status())

			require.NoError(t, res.MarkModified(now))
			require.NoError(t, res.MarkConfirmed(now))
			require.NoError(t, res.MarkCancelled(now))
		})

		t.Run("cancelled is terminal", func(t *testing.T) {
			res := builder.NewReservationBuilder().WithNow(now).Build()
			require.NoError(t, res.MarkCancelled(now))

			assert.ErrorIs(t, res.BeginConfirmation(now), reservation.ErrInvalidTransition)
			assert.ErrorIs(t, res.MarkConfirmed(now), reservation.ErrInvalidTransition)
			assert.ErrorIs(t, res.ReopenForModification(now), reservation.ErrInvalidTransition)
			assert.ErrorIs(t, res.MarkCancelled(now), reservation.ErrInvalidTransition)
		})

		t.Run("illegal shortcuts", func(t *testing.T) {
			res := builder.NewReservationBuilder().WithNow(now).Build()

			// in_progress cannot jump straight to confirmed
			assert.ErrorIs(t, res.MarkConfirmed(now), reservation.ErrInvalidTransition)

			require.NoError(t, res.BeginConfirmation(now))
			assert.ErrorIs(t, res.MarkModified(now), reservation.ErrInvalidTransition)
		})
	})

	t.Run("clone isolation", func(t *testing.T) {
		now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
		original := builder.NewReservationBuilder().WithNow(now).BuildConfirmed()

		clone, err := original.Clone()
		require.NoError(t, err)
		require.NoError(t, clone.ReopenForModification(now))

		clone.AddTransport(reservation.TransportBooking{
			TransportID:   "TR-NEW",
			Type:          "TRAIN",
			DepartureDate: reservation.NewDate(2026, time.July, 11),
			ArrivalDate:   reservation.NewDate(2026, time.July, 12),
			Price:         builder.MoneyPtr(9900),
		}, now)
		clone.ClearHotelConfirmation(now)

		assert.Equal(t, reservation.StatusConfirmed, original.Status())
		assert.Len(t, original.Transports(), 1)
		assert.NotNil(t, original.Hotel().ConfirmationNumber)
		assert.Len(t, clone.Transports(), 2)
		assert.Nil(t, clone.Hotel().ConfirmationNumber)
		assert.NotEqual(t, original.TotalPrice().Cents(), clone.TotalPrice().Cents())
	})

	t.Run("snapshot round trip", func(t *testing.T) {
		original := builder.NewReservationBuilder().BuildConfirmed()

		restored, err := reservation.FromSnapshot(original.Snapshot())
		require.NoError(t, err)

		assert.Equal(t, original.ID(), restored.ID())
		assert.Equal(t, original.UserID(), restored.UserID())
		assert.Equal(t, original.Status(), restored.Status())
		assert.Equal(t, original.TotalPrice(), restored.TotalPrice())
		assert.Equal(t, original.Transports(), restored.Transports())
		assert.Equal(t, original.Activities(), restored.Activities())
	})

	t.Run("snapshot with unknown status is rejected", func(t *testing.T) {
		s := builder.NewReservationBuilder().Build().Snapshot()
		s.Status = "teleported"

		_, err := reservation.FromSnapshot(s)
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})
}

func runValidateCases(t *testing.T, cases []validateCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			err := b.Build().Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
