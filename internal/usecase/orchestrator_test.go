//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/internal/infra"
	"tripbook-reservations/internal/pkg/clock"
	"tripbook-reservations/internal/pkg/config"
	"tripbook-reservations/internal/usecase"
	"tripbook-reservations/tests/common/builder"
	usecasemock "tripbook-reservations/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	hotels     *usecasemock.MockHotelProvider
	transports *usecasemock.MockTransportProvider
	activities *usecasemock.MockActivityProvider
	gateway    *usecasemock.MockReservationGateway
	store      *usecasemock.MockReservationStore
	tracker    *usecasemock.MockProgressTracker
	clk        *clock.MockClock
	cfg        config.BookingConfig

	orch usecase.Orchestrator
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.hotels = usecasemock.NewMockHotelProvider(s.ctrl)
	s.transports = usecasemock.NewMockTransportProvider(s.ctrl)
	s.activities = usecasemock.NewMockActivityProvider(s.ctrl)
	s.gateway = usecasemock.NewMockReservationGateway(s.ctrl)
	s.store = usecasemock.NewMockReservationStore(s.ctrl)
	s.tracker = usecasemock.NewMockProgressTracker(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC))
	s.cfg = config.BookingConfig{CallTimeout: time.Second, Compensate: true}

	// Progress tracking is side-effect only; individual tests don't pin it.
	s.tracker.EXPECT().StartFlow(gomock.Any()).AnyTimes()
	s.tracker.EXPECT().UpdateStep(gomock.Any(), gomock.Any()).AnyTimes()
	s.tracker.EXPECT().CompleteFlow(gomock.Any()).AnyTimes()
	s.tracker.EXPECT().ResetFlow(gomock.Any()).AnyTimes()

	s.rebuild()
}

func (s *OrchestratorTestSuite) rebuild() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.orch = usecase.NewOrchestrator(
		s.hotels, s.transports, s.activities,
		s.gateway, s.store, s.tracker,
		s.clk, logger, s.cfg,
	)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

var (
	checkIn  = reservation.NewDate(2026, time.July, 10)
	checkOut = reservation.NewDate(2026, time.July, 12)
	tourDate = reservation.NewDate(2026, time.July, 11)
)

// buildFullSession starts a session and adds hotel + flight + activity with
// accepting quotes, leaving the aggregate ready for confirmation.
func (s *OrchestratorTestSuite) buildFullSession(ctx context.Context) *reservation.Reservation {
	s.store.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	s.hotels.EXPECT().
		CheckAvailabilityAndPrice(gomock.Any(), "HTL-1", "std", checkIn, checkOut).
		Return(usecase.HotelQuote{Available: true, Price: builder.MoneyPtr(24100)}, nil)
	s.transports.EXPECT().
		CheckAvailabilityAndPrice(gomock.Any(), "FL-9", "FLIGHT", checkIn).
		Return(usecase.TransportQuote{
			Available: true, Price: builder.MoneyPtr(25000),
			DepartureDate: checkIn, ArrivalDate: checkIn,
		}, nil)
	s.activities.EXPECT().
		CheckAvailabilityAndPrice(gomock.Any(), "ACT-7", tourDate, 2).
		Return(usecase.ActivityQuote{Available: true, Price: builder.MoneyPtr(15050)}, nil)

	res, err := s.orch.StartSession(ctx, uuid.New())
	s.Require().NoError(err)

	_, err = s.orch.AddHotel(ctx, usecase.AddHotelParams{
		HotelID: "HTL-1", RoomID: "std", CheckInDate: checkIn, CheckOutDate: checkOut,
	})
	s.Require().NoError(err)
	_, err = s.orch.AddTransport(ctx, usecase.AddTransportParams{
		TransportID: "FL-9", Type: "FLIGHT", DepartureDate: checkIn,
	})
	s.Require().NoError(err)
	_, err = s.orch.AddActivity(ctx, usecase.AddActivityParams{
		ActivityID: "ACT-7", Date: tourDate, Participants: 2,
	})
	s.Require().NoError(err)

	return res
}

func (s *OrchestratorTestSuite) TestSuccessfulBookingFlow() {
	ctx := context.Background()
	res := s.buildFullSession(ctx)
	s.Equal(int64(64150), res.TotalPrice().Cents())

	// proceed + post-booking persist
	s.store.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	s.hotels.EXPECT().Book(gomock.Any(), gomock.Any()).Return("HOTEL-123", nil)
	s.transports.EXPECT().Book(gomock.Any(), gomock.Any()).Return("TRANS-456", nil)
	s.activities.EXPECT().Book(gomock.Any(), gomock.Any()).Return("ACT-789", nil)

	s.gateway.EXPECT().SubmitReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *reservation.Reservation) (*reservation.Reservation, error) {
			return r, nil
		})
	s.store.EXPECT().SaveConfirmed(gomock.Any(), gomock.Any()).Return(nil)
	s.store.EXPECT().DeleteDraft(gomock.Any(), res.ID()).Return(nil)

	confirmed, err := s.orch.ConfirmAndBook(ctx)
	s.Require().NoError(err)

	s.Equal(reservation.StatusConfirmed, confirmed.Status())
	s.Equal("HOTEL-123", *confirmed.Hotel().ConfirmationNumber)
	s.Equal("TRANS-456", *confirmed.Transports()[0].ConfirmationNumber)
	s.Equal("ACT-789", *confirmed.Activities()[0].ConfirmationNumber)
	s.Nil(s.orch.CurrentReservation())
}

func (s *OrchestratorTestSuite) TestBookingFailureCompensatesInReverseOrder() {
	ctx := context.Background()
	s.buildFullSession(ctx)

	// proceed persist + post-failure persist
	s.store.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	bookHotel := s.hotels.EXPECT().Book(gomock.Any(), gomock.Any()).Return("HOTEL-123", nil)
	bookLeg := s.transports.EXPECT().Book(gomock.Any(), gomock.Any()).Return("TRANS-456", nil)
	bookAct := s.activities.EXPECT().Book(gomock.Any(), gomock.Any()).
		Return("", usecase.ErrItemUnavailable)

	// Undo runs newest-first: transport before hotel.
	cancelLeg := s.transports.EXPECT().Cancel(gomock.Any(), "TRANS-456").Return(true, nil)
	cancelHotel := s.hotels.EXPECT().Cancel(gomock.Any(), "HOTEL-123").Return(true, nil)
	gomock.InOrder(bookHotel, bookLeg, bookAct, cancelLeg, cancelHotel)

	_, err := s.orch.ConfirmAndBook(ctx)
	s.Require().ErrorIs(err, usecase.ErrBookingFailed)

	// Compensation cleared the confirmation numbers, so a later retry
	// re-books from scratch.
	current := s.orch.CurrentReservation()
	s.Require().NotNil(current)
	s.Equal(reservation.StatusPendingConfirmation, current.Status())
	s.Nil(current.Hotel().ConfirmationNumber)
	s.Nil(current.Transports()[0].ConfirmationNumber)
}

func (s *OrchestratorTestSuite) TestBookingFailureWithoutCompensationKeepsConfirmations() {
	s.cfg.Compensate = false
	s.rebuild()

	ctx := context.Background()
	s.buildFullSession(ctx)

	s.store.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.hotels.EXPECT().Book(gomock.Any(), gomock.Any()).Return("HOTEL-123", nil)
	s.transports.EXPECT().Book(gomock.Any(), gomock.Any()).Return("TRANS-456", nil)
	s.activities.EXPECT().Book(gomock.Any(), gomock.Any()).
		Return("", usecase.ErrItemUnavailable)

	_, err := s.orch.ConfirmAndBook(ctx)
	s.Require().ErrorIs(err, usecase.ErrBookingFailed)

	current := s.orch.CurrentReservation()
	s.Equal("HOTEL-123", *current.Hotel().ConfirmationNumber)
	s.Equal("TRANS-456", *current.Transports()[0].ConfirmationNumber)

	// Retry books only the missing activity.
	s.store.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(nil)
	s.activities.EXPECT().Book(gomock.Any(), gomock.Any()).Return("ACT-789", nil)
	s.gateway.EXPECT().SubmitReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *reservation.Reservation) (*reservation.Reservation, error) {
			return r, nil
		})
	s.store.EXPECT().SaveConfirmed(gomock.Any(), gomock.Any()).Return(nil)
	s.store.EXPECT().DeleteDraft(gomock.Any(), gomock.Any()).Return(nil)

	confirmed, err := s.orch.ConfirmAndBook(ctx)
	s.Require().NoError(err)
	s.Equal("HOTEL-123", *confirmed.Hotel().ConfirmationNumber)
	s.Equal("ACT-789", *confirmed.Activities()[0].ConfirmationNumber)
}

func (s *OrchestratorTestSuite) TestGatewayFailureLeavesRetriableDraft() {
	ctx := context.Background()
	s.buildFullSession(ctx)

	s.store.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.hotels.EXPECT().Book(gomock.Any(), gomock.Any()).Return("HOTEL-123", nil)
	s.transports.EXPECT().Book(gomock.Any(), gomock.Any()).Return("TRANS-456", nil)
	s.activities.EXPECT().Book(gomock.Any(), gomock.Any()).Return("ACT-789", nil)
	s.gateway.EXPECT().SubmitReservation(gomock.Any(), gomock.Any()).
		Return(nil, infra.NewError(infra.KindRemoteFailure, "backend down"))

	_, err := s.orch.ConfirmAndBook(ctx)
	s.Require().ErrorIs(err, usecase.ErrGatewaySubmitFailed)

	// Every confirmation number survives; the retry goes straight to the
	// gateway without touching the providers again.
	current := s.orch.CurrentReservation()
	s.Equal(reservation.StatusPendingConfirmation, current.Status())
	s.Equal("HOTEL-123", *current.Hotel().ConfirmationNumber)

	s.store.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(nil)
	s.gateway.EXPECT().SubmitReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *reservation.Reservation) (*reservation.Reservation, error) {
			return r, nil
		})
	s.store.EXPECT().SaveConfirmed(gomock.Any(), gomock.Any()).Return(nil)
	s.store.EXPECT().DeleteDraft(gomock.Any(), gomock.Any()).Return(nil)

	confirmed, err := s.orch.ConfirmAndBook(ctx)
	s.Require().NoError(err)
	s.Equal(reservation.StatusConfirmed, confirmed.Status())
}

func (s *OrchestratorTestSuite) TestSessionPreconditions() {
	ctx := context.Background()

	_, err := s.orch.AddHotel(ctx, usecase.AddHotelParams{
		HotelID: "HTL-1", RoomID: "std", CheckInDate: checkIn, CheckOutDate: checkOut,
	})
	s.ErrorIs(err, usecase.ErrNoActiveSession)

	_, err = s.orch.ConfirmAndBook(ctx)
	s.ErrorIs(err, usecase.ErrNoActiveSession)

	_, err = s.orch.StartSession(ctx, uuid.New())
	s.Require().NoError(err)

	_, err = s.orch.StartSession(ctx, uuid.New())
	s.ErrorIs(err, usecase.ErrSessionConflict)

	_, err = s.orch.StartModificationSession(ctx, uuid.New())
	s.ErrorIs(err, usecase.ErrSessionConflict)
}

func (s *OrchestratorTestSuite) TestAddHotelRejectsInvalidDates() {
	ctx := context.Background()
	_, err := s.orch.StartSession(ctx, uuid.New())
	s.Require().NoError(err)

	// Same-day checkout never reaches the provider.
	_, err = s.orch.AddHotel(ctx, usecase.AddHotelParams{
		HotelID: "HTL-1", RoomID: "std", CheckInDate: checkIn, CheckOutDate: checkIn,
	})
	s.ErrorIs(err, usecase.ErrInvalidDateRange)
}

func (s *OrchestratorTestSuite) TestUnavailableItemLeavesAggregateUnchanged() {
	ctx := context.Background()
	res, err := s.orch.StartSession(ctx, uuid.New())
	s.Require().NoError(err)

	s.hotels.EXPECT().
		CheckAvailabilityAndPrice(gomock.Any(), "HTL-FULL", "std", checkIn, checkOut).
		Return(usecase.HotelQuote{Available: false}, nil)

	_, err = s.orch.AddHotel(ctx, usecase.AddHotelParams{
		HotelID: "HTL-FULL", RoomID: "std", CheckInDate: checkIn, CheckOutDate: checkOut,
	})
	s.ErrorIs(err, usecase.ErrItemUnavailable)
	s.Nil(res.Hotel())
	s.True(res.TotalPrice().IsZero())

	// A quote with no price is treated the same as unavailable.
	s.activities.EXPECT().
		CheckAvailabilityAndPrice(gomock.Any(), "ACT-7", tourDate, 2).
		Return(usecase.ActivityQuote{Available: true, Price: nil}, nil)

	_, err = s.orch.AddActivity(ctx, usecase.AddActivityParams{
		ActivityID: "ACT-7", Date: tourDate, Participants: 2,
	})
	s.ErrorIs(err, usecase.ErrItemUnavailable)
	s.Empty(res.Activities())
}

func (s *OrchestratorTestSuite) TestCancelInProgressSessionMakesNoProviderCalls() {
	ctx := context.Background()
	res := s.buildFullSession(ctx)

	// Only the draft is deleted; no provider or gateway expectations exist,
	// so any call would fail the test.
	s.store.EXPECT().DeleteDraft(gomock.Any(), res.ID()).Return(nil)

	s.Require().NoError(s.orch.CancelReservation(ctx, res.ID()))
	s.Nil(s.orch.CurrentReservation())
}

func (s *OrchestratorTestSuite) TestCancelConfirmedReservation() {
	ctx := context.Background()
	confirmed := builder.NewReservationBuilder().BuildConfirmed()

	s.store.EXPECT().GetConfirmed(gomock.Any(), confirmed.ID()).Return(confirmed, nil)

	// All booked sub-items are cancelled with the providers before the
	// gateway is asked to cancel the composite.
	cancelHotel := s.hotels.EXPECT().Cancel(gomock.Any(), "HOTEL-TEST").Return(true, nil)
	cancelLeg := s.transports.EXPECT().Cancel(gomock.Any(), "TRANS-TEST").Return(true, nil)
	cancelAct := s.activities.EXPECT().Cancel(gomock.Any(), "ACT-TEST").Return(true, nil)
	gatewayCancel := s.gateway.EXPECT().CancelRemoteReservation(gomock.Any(), confirmed.ID()).Return(true, nil)
	gomock.InOrder(cancelHotel, cancelLeg, cancelAct, gatewayCancel)

	s.store.EXPECT().UpdateConfirmed(gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.orch.CancelReservation(ctx, confirmed.ID()))
	s.Equal(reservation.StatusCancelled, confirmed.Status())
}

func (s *OrchestratorTestSuite) TestCancelToleratesProviderFailures() {
	ctx := context.Background()
	confirmed := builder.NewReservationBuilder().BuildConfirmed()

	s.store.EXPECT().GetConfirmed(gomock.Any(), confirmed.ID()).Return(confirmed, nil)

	s.hotels.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(false, infra.NewError(infra.KindRemoteFailure, "timeout"))
	s.transports.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(false, nil)
	s.activities.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(true, nil)
	s.gateway.EXPECT().CancelRemoteReservation(gomock.Any(), confirmed.ID()).Return(true, nil)
	s.store.EXPECT().UpdateConfirmed(gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.orch.CancelReservation(ctx, confirmed.ID()))
	s.Equal(reservation.StatusCancelled, confirmed.Status())
}

func (s *OrchestratorTestSuite) TestCancelRequiresGatewayAcknowledgment() {
	ctx := context.Background()
	confirmed := builder.NewReservationBuilder().BuildConfirmed()

	s.store.EXPECT().GetConfirmed(gomock.Any(), confirmed.ID()).Return(confirmed, nil)
	s.hotels.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(true, nil)
	s.transports.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(true, nil)
	s.activities.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(true, nil)
	s.gateway.EXPECT().CancelRemoteReservation(gomock.Any(), confirmed.ID()).Return(false, nil)

	err := s.orch.CancelReservation(ctx, confirmed.ID())
	s.ErrorIs(err, usecase.ErrGatewayCancelFailed)
	s.Equal(reservation.StatusConfirmed, confirmed.Status())
}

func (s *OrchestratorTestSuite) TestCancelAlreadyCancelledIsNoOp() {
	ctx := context.Background()
	confirmed := builder.NewReservationBuilder().BuildConfirmed()
	s.Require().NoError(confirmed.MarkCancelled(s.clk.Now()))

	s.store.EXPECT().GetConfirmed(gomock.Any(), confirmed.ID()).Return(confirmed, nil)

	s.Require().NoError(s.orch.CancelReservation(ctx, confirmed.ID()))
}

func (s *OrchestratorTestSuite) TestModificationFlow() {
	ctx := context.Background()
	confirmed := builder.NewReservationBuilder().BuildConfirmed()

	s.store.EXPECT().GetConfirmed(gomock.Any(), confirmed.ID()).Return(confirmed, nil)

	draft, err := s.orch.StartModificationSession(ctx, confirmed.ID())
	s.Require().NoError(err)
	s.Equal(reservation.StatusInProgress, draft.Status())
	s.Equal(confirmed.ID(), draft.ID())

	// The confirmed original is untouched while the copy changes.
	s.activities.EXPECT().
		CheckAvailabilityAndPrice(gomock.Any(), "ACT-NEW", tourDate, 1).
		Return(usecase.ActivityQuote{Available: true, Price: builder.MoneyPtr(7525)}, nil)
	s.store.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(nil)

	_, err = s.orch.AddActivity(ctx, usecase.AddActivityParams{
		ActivityID: "ACT-NEW", Date: tourDate, Participants: 1,
	})
	s.Require().NoError(err)
	s.Len(confirmed.Activities(), 1)
	s.Len(draft.Activities(), 2)

	s.gateway.EXPECT().UpdateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *reservation.Reservation) (*reservation.Reservation, error) {
			return r, nil
		})
	s.store.EXPECT().SaveConfirmed(gomock.Any(), gomock.Any()).Return(nil)
	s.store.EXPECT().DeleteDraft(gomock.Any(), draft.ID()).Return(nil)

	updated, err := s.orch.ConfirmModification(ctx)
	s.Require().NoError(err)
	s.Equal(reservation.StatusConfirmed, updated.Status())
	s.Len(updated.Activities(), 2)
	s.Nil(s.orch.CurrentReservation())
}

func (s *OrchestratorTestSuite) TestModifyCancelledReservationIsRejected() {
	ctx := context.Background()
	cancelled := builder.NewReservationBuilder().BuildConfirmed()
	s.Require().NoError(cancelled.MarkCancelled(s.clk.Now()))

	s.store.EXPECT().GetConfirmed(gomock.Any(), cancelled.ID()).Return(cancelled, nil)

	_, err := s.orch.StartModificationSession(ctx, cancelled.ID())
	s.ErrorIs(err, usecase.ErrReservationCancelled)
}

func (s *OrchestratorTestSuite) TestResumeSessionReloadsDraft() {
	ctx := context.Background()
	draft := builder.NewReservationBuilder().Build()

	s.store.EXPECT().GetDraft(gomock.Any(), draft.ID()).Return(draft, nil)

	res, err := s.orch.ResumeSession(ctx, draft.ID())
	s.Require().NoError(err)
	s.Equal(draft.ID(), res.ID())
	s.Same(res, s.orch.CurrentReservation())
}

func (s *OrchestratorTestSuite) TestResumeUnknownDraft() {
	ctx := context.Background()
	id := uuid.New()

	s.store.EXPECT().GetDraft(gomock.Any(), id).
		Return(nil, infra.NewError(infra.KindNotFound, "missing"))

	_, err := s.orch.ResumeSession(ctx, id)
	s.ErrorIs(err, usecase.ErrReservationNotFound)
}

func (s *OrchestratorTestSuite) TestGetReservationDetailsReadThrough() {
	ctx := context.Background()
	confirmed := builder.NewReservationBuilder().BuildConfirmed()

	s.Run("confirmed store hit", func() {
		s.store.EXPECT().GetConfirmed(gomock.Any(), confirmed.ID()).Return(confirmed, nil)

		res, err := s.orch.GetReservationDetails(ctx, confirmed.ID())
		s.Require().NoError(err)
		s.Equal(confirmed.ID(), res.ID())
	})

	s.Run("gateway fallback", func() {
		s.store.EXPECT().GetConfirmed(gomock.Any(), confirmed.ID()).
			Return(nil, infra.NewError(infra.KindNotFound, "missing"))
		s.gateway.EXPECT().GetReservation(gomock.Any(), confirmed.ID()).Return(confirmed, nil)

		res, err := s.orch.GetReservationDetails(ctx, confirmed.ID())
		s.Require().NoError(err)
		s.Equal(confirmed.ID(), res.ID())
	})

	s.Run("draft fallback", func() {
		draft := builder.NewReservationBuilder().Build()
		s.store.EXPECT().GetConfirmed(gomock.Any(), draft.ID()).
			Return(nil, infra.NewError(infra.KindNotFound, "missing"))
		s.gateway.EXPECT().GetReservation(gomock.Any(), draft.ID()).
			Return(nil, infra.NewError(infra.KindNotFound, "missing"))
		s.store.EXPECT().GetDraft(gomock.Any(), draft.ID()).Return(draft, nil)

		res, err := s.orch.GetReservationDetails(ctx, draft.ID())
		s.Require().NoError(err)
		s.Equal(draft.ID(), res.ID())
	})

	s.Run("not found anywhere", func() {
		id := uuid.New()
		s.store.EXPECT().GetConfirmed(gomock.Any(), id).
			Return(nil, infra.NewError(infra.KindNotFound, "missing"))
		s.gateway.EXPECT().GetReservation(gomock.Any(), id).
			Return(nil, infra.NewError(infra.KindNotFound, "missing"))
		s.store.EXPECT().GetDraft(gomock.Any(), id).
			Return(nil, infra.NewError(infra.KindNotFound, "missing"))

		_, err := s.orch.GetReservationDetails(ctx, id)
		s.ErrorIs(err, usecase.ErrReservationNotFound)
	})
}

func (s *OrchestratorTestSuite) TestListUserReservations() {
	ctx := context.Background()
	userID := uuid.New()
	draft := builder.NewReservationBuilder().WithUserID(userID).Build()
	confirmed := builder.NewReservationBuilder().WithUserID(userID).BuildConfirmed()

	s.store.EXPECT().ListByUser(gomock.Any(), userID).
		Return([]*reservation.Reservation{draft, confirmed}, nil)

	list, err := s.orch.ListUserReservations(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(draft.ID(), list[0].ID())
	s.Equal(confirmed.ID(), list[1].ID())
}
