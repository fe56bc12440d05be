package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/internal/infra"
	"tripbook-reservations/internal/pkg/clock"
	"tripbook-reservations/internal/pkg/config"
	"tripbook-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=orchestrator.go -destination=../../tests/mock/usecase/orchestrator_mock.go -package=usecasemock

var (
	// Precondition failures, distinct from any provider error.
	ErrSessionConflict = errors.New("a reservation session is already active")
	ErrNoActiveSession = errors.New("no reservation session in progress")

	// Validation errors: detected before any I/O, aggregate unchanged.
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrValidationFailed = errors.New("reservation validation failed")

	// Recoverable per-item condition: caller may retry with other parameters.
	ErrItemUnavailable = errors.New("item unavailable or price could not be fetched")

	// Fatal to the current confirmation attempt.
	ErrBookingFailed = errors.New("provider booking failed")

	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationCancelled = errors.New("reservation is already cancelled")

	// Error markers for categorization
	ErrGatewaySubmitFailed = errors.New("reservation gateway rejected the submission")
	ErrGatewayCancelFailed = errors.New("reservation gateway rejected the cancellation")
	ErrStoreFailed         = errors.New("reservation store operation failed")
)

const (
	reservationFlow  = "reservation"
	modificationFlow = "reservation_modification"

	stepSessionStarted      = "session_started"
	stepSessionResumed      = "session_resumed"
	stepHotelAdded          = "hotel_added"
	stepTransportAdded      = "transport_added"
	stepActivityAdded       = "activity_added"
	stepValidationPassed    = "validation_passed"
	stepItemsBooked         = "items_booked"
	stepGatewaySubmitted    = "gateway_submitted"
	stepModificationStarted = "modification_started"
)

type AddHotelParams struct {
	HotelID      string
	RoomID       string
	CheckInDate  reservation.Date
	CheckOutDate reservation.Date
}

type AddTransportParams struct {
	TransportID   string
	Type          string
	DepartureDate reservation.Date
}

type AddActivityParams struct {
	ActivityID   string
	Date         reservation.Date
	Participants int
}

// Orchestrator drives the add-item -> validate -> confirm -> modify/cancel
// state machine for the single in-progress aggregate of a session. It is safe
// for concurrent callers of one logical session; distinct sessions need
// distinct orchestrator instances.
type Orchestrator interface {
	StartSession(ctx context.Context, userID uuid.UUID) (*reservation.Reservation, error)
	ResumeSession(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	CurrentReservation() *reservation.Reservation
	ClearSession()
	AddHotel(ctx context.Context, params AddHotelParams) (*reservation.Reservation, error)
	AddTransport(ctx context.Context, params AddTransportParams) (*reservation.Reservation, error)
	AddActivity(ctx context.Context, params AddActivityParams) (*reservation.Reservation, error)
	ProceedToConfirmation(ctx context.Context) (*reservation.Reservation, error)
	ConfirmAndBook(ctx context.Context) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, id uuid.UUID) error
	StartModificationSession(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ConfirmModification(ctx context.Context) (*reservation.Reservation, error)
	GetReservationDetails(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ListUserReservations(ctx context.Context, userID uuid.UUID) ([]*reservation.Reservation, error)
}

type orchestratorImpl struct {
	hotels     HotelProvider
	transports TransportProvider
	activities ActivityProvider
	gateway    ReservationGateway
	store      ReservationStore
	tracker    ProgressTracker
	clock      clock.Clock
	logger     *slog.Logger
	cfg        config.BookingConfig

	mu           sync.Mutex
	current      *reservation.Reservation
	modification bool
}

func NewOrchestrator(
	hotels HotelProvider,
	transports TransportProvider,
	activities ActivityProvider,
	gateway ReservationGateway,
	store ReservationStore,
	tracker ProgressTracker,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.BookingConfig,
) Orchestrator {
	return &orchestratorImpl{
		hotels:     hotels,
		transports: transports,
		activities: activities,
		gateway:    gateway,
		store:      store,
		tracker:    tracker,
		clock:      clk,
		logger:     logger,
		cfg:        cfg,
	}
}

// callCtx bounds a single provider/gateway call so a stuck dependency cannot
// hang the whole flow.
func (o *orchestratorImpl) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.cfg.CallTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, o.cfg.CallTimeout)
}

func (o *orchestratorImpl) flowName() string {
	if o.modification {
		return modificationFlow
	}
	return reservationFlow
}

// StartSession rejects with ErrSessionConflict when a session is already
// active: silently discarding an in-progress aggregate would lose work.
func (o *orchestratorImpl) StartSession(ctx context.Context, userID uuid.UUID) (*reservation.Reservation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current != nil {
		return nil, ErrSessionConflict
	}

	res := reservation.NewReservation(userID, o.clock.Now())
	o.current = res
	o.modification = false
	o.tracker.StartFlow(reservationFlow)
	o.tracker.UpdateStep(stepSessionStarted, true)
	return res, nil
}

// ResumeSession reloads a persisted draft (e.g. after a failed confirmation
// attempt in an earlier process) and makes it the current session.
func (o *orchestratorImpl) ResumeSession(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current != nil {
		return nil, ErrSessionConflict
	}

	cctx, cancel := o.callCtx(ctx)
	defer cancel()
	res, err := o.store.GetDraft(cctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	o.current = res
	o.modification = false
	o.tracker.StartFlow(reservationFlow)
	o.tracker.UpdateStep(stepSessionResumed, true)
	return res, nil
}

func (o *orchestratorImpl) CurrentReservation() *reservation.Reservation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

func (o *orchestratorImpl) ClearSession() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tracker.ResetFlow(o.flowName())
	o.current = nil
	o.modification = false
}

func (o *orchestratorImpl) AddHotel(ctx context.Context, params AddHotelParams) (*reservation.Reservation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	res := o.current
	if res == nil {
		return nil, ErrNoActiveSession
	}

	// Date sanity comes before any provider contact.
	booking, err := reservation.NewHotelBooking(params.HotelID, params.RoomID, params.CheckInDate, params.CheckOutDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	cctx, cancel := o.callCtx(ctx)
	defer cancel()
	quote, err := o.hotels.CheckAvailabilityAndPrice(cctx, params.HotelID, params.RoomID, params.CheckInDate, params.CheckOutDate)
	if err != nil {
		o.tracker.UpdateStep(stepHotelAdded, false)
		return nil, errs.Mark(err, ErrItemUnavailable)
	}
	if !quote.Available || quote.Price == nil {
		o.tracker.UpdateStep(stepHotelAdded, false)
		return nil, ErrItemUnavailable
	}

	booking.Price = quote.Price
	res.SetHotel(booking, o.clock.Now())
	if err := o.saveDraft(ctx, res); err != nil {
		return nil, err
	}
	o.tracker.UpdateStep(stepHotelAdded, true)
	return res, nil
}

func (o *orchestratorImpl) AddTransport(ctx context.Context, params AddTransportParams) (*reservation.Reservation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	res := o.current
	if res == nil {
		return nil, ErrNoActiveSession
	}

	cctx, cancel := o.callCtx(ctx)
	defer cancel()
	quote, err := o.transports.CheckAvailabilityAndPrice(cctx, params.TransportID, params.Type, params.DepartureDate)
	if err != nil {
		o.tracker.UpdateStep(stepTransportAdded, false)
		return nil, errs.Mark(err, ErrItemUnavailable)
	}
	if !quote.Available || quote.Price == nil {
		o.tracker.UpdateStep(stepTransportAdded, false)
		return nil, ErrItemUnavailable
	}

	// Both timestamps come from the provider's quote; the requested travel
	// date is only the lookup key.
	departure := quote.DepartureDate
	if departure.IsZero() {
		departure = params.DepartureDate
	}
	arrival := quote.ArrivalDate
	if arrival.IsZero() {
		arrival = departure
	}
	booking, err := reservation.NewTransportBooking(params.TransportID, params.Type, departure, arrival)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	booking.Price = quote.Price
	res.AddTransport(booking, o.clock.Now())
	if err := o.saveDraft(ctx, res); err != nil {
		return nil, err
	}
	o.tracker.UpdateStep(stepTransportAdded, true)
	return res, nil
}

func (o *orchestratorImpl) AddActivity(ctx context.Context, params AddActivityParams) (*reservation.Reservation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	res := o.current
	if res == nil {
		return nil, ErrNoActiveSession
	}

	booking, err := reservation.NewActivityBooking(params.ActivityID, params.Date, params.Participants)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	cctx, cancel := o.callCtx(ctx)
	defer cancel()
	quote, err := o.activities.CheckAvailabilityAndPrice(cctx, params.ActivityID, params.Date, params.Participants)
	if err != nil {
		o.tracker.UpdateStep(stepActivityAdded, false)
		return nil, errs.Mark(err, ErrItemUnavailable)
	}
	if !quote.Available || quote.Price == nil {
		o.tracker.UpdateStep(stepActivityAdded, false)
		return nil, ErrItemUnavailable
	}

	booking.Price = quote.Price
	res.AddActivity(booking, o.clock.Now())
	if err := o.saveDraft(ctx, res); err != nil {
		return nil, err
	}
	o.tracker.UpdateStep(stepActivityAdded, true)
	return res, nil
}

func (o *orchestratorImpl) ProceedToConfirmation(ctx context.Context) (*reservation.Reservation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.proceedToConfirmationLocked(ctx)
}

func (o *orchestratorImpl) proceedToConfirmationLocked(ctx context.Context) (*reservation.Reservation, error) {
	res := o.current
	if res == nil {
		return nil, ErrNoActiveSession
	}

	if err := res.Validate(); err != nil {
		o.tracker.UpdateStep(stepValidationPassed, false)
		return nil, errs.Mark(err, ErrValidationFailed)
	}
	if err := res.BeginConfirmation(o.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}
	if err := o.saveDraft(ctx, res); err != nil {
		return nil, err
	}
	o.tracker.UpdateStep(stepValidationPassed, true)
	return res, nil
}

// ConfirmAndBook books every sub-item sequentially, then submits the
// aggregate to the gateway. Sub-items that already carry a confirmation
// number (from a previous attempt) are never booked again. Booking calls stay
// strictly sequential so the compensation order is well defined.
func (o *orchestratorImpl) ConfirmAndBook(ctx context.Context) (*reservation.Reservation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	res := o.current
	if res == nil {
		return nil, ErrNoActiveSession
	}
	if res.Status() != reservation.StatusPendingConfirmation {
		if _, err := o.proceedToConfirmationLocked(ctx); err != nil {
			return nil, err
		}
	}

	if err := o.bookItems(ctx, res); err != nil {
		return nil, err
	}
	o.tracker.UpdateStep(stepItemsBooked, true)

	// All provider bookings hold; persist the confirmation numbers before
	// talking to the gateway so a crash cannot lose them.
	if err := o.saveDraft(ctx, res); err != nil {
		return nil, err
	}

	cctx, cancel := o.callCtx(ctx)
	defer cancel()
	confirmed, err := o.gateway.SubmitReservation(cctx, res)
	if err != nil || confirmed == nil {
		// The draft keeps PENDING_CONFIRMATION with every confirmation
		// number intact; a retry skips the already-booked sub-items.
		o.tracker.UpdateStep(stepGatewaySubmitted, false)
		return nil, errs.Mark(err, ErrGatewaySubmitFailed)
	}

	now := o.clock.Now()
	if confirmed.Status() != reservation.StatusConfirmed {
		if err := confirmed.MarkConfirmed(now); err != nil {
			return nil, errs.Mark(err, ErrGatewaySubmitFailed)
		}
	}
	if err := o.store.SaveConfirmed(ctx, confirmed); err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}
	if err := o.store.DeleteDraft(ctx, res.ID()); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		o.logger.Warn("failed to delete draft after confirmation", "reservation_id", res.ID(), "error", err)
	}

	o.tracker.UpdateStep(stepGatewaySubmitted, true)
	o.tracker.CompleteFlow(o.flowName())
	o.current = nil
	o.modification = false
	return confirmed, nil
}

// bookItems runs the booking saga: hotel first, then each transport, then
// each activity. Every success pushes an undo action; on failure the stack
// unwinds in reverse order (unless compensation is disabled, in which case
// booked items keep their confirmation numbers for an idempotent retry).
func (o *orchestratorImpl) bookItems(ctx context.Context, res *reservation.Reservation) error {
	var comp compensationStack

	if hotel := res.Hotel(); hotel != nil && !hotel.IsConfirmed() {
		conf, err := o.bookOne(ctx, func(cctx context.Context) (string, error) {
			return o.hotels.Book(cctx, *hotel)
		})
		if err != nil {
			return o.abortBooking(ctx, res, &comp, fmt.Sprintf("hotel %s", hotel.HotelID), err)
		}
		if cerr := res.ConfirmHotel(conf, o.clock.Now()); cerr != nil {
			return errs.Mark(cerr, ErrBookingFailed)
		}
		comp.push(fmt.Sprintf("hotel %s", hotel.HotelID), func(cctx context.Context) (bool, error) {
			ok, err := o.hotels.Cancel(cctx, conf)
			if err == nil && ok {
				res.ClearHotelConfirmation(o.clock.Now())
			}
			return ok, err
		})
	}

	for i, leg := range res.Transports() {
		if leg.IsConfirmed() {
			continue
		}
		conf, err := o.bookOne(ctx, func(cctx context.Context) (string, error) {
			return o.transports.Book(cctx, leg)
		})
		if err != nil {
			return o.abortBooking(ctx, res, &comp, fmt.Sprintf("transport %s", leg.TransportID), err)
		}
		if cerr := res.ConfirmTransport(i, conf, o.clock.Now()); cerr != nil {
			return errs.Mark(cerr, ErrBookingFailed)
		}
		comp.push(fmt.Sprintf("transport %s", leg.TransportID), func(cctx context.Context) (bool, error) {
			ok, err := o.transports.Cancel(cctx, conf)
			if err == nil && ok {
				res.ClearTransportConfirmation(i, o.clock.Now())
			}
			return ok, err
		})
	}

	for i, act := range res.Activities() {
		if act.IsConfirmed() {
			continue
		}
		conf, err := o.bookOne(ctx, func(cctx context.Context) (string, error) {
			return o.activities.Book(cctx, act)
		})
		if err != nil {
			return o.abortBooking(ctx, res, &comp, fmt.Sprintf("activity %s", act.ActivityID), err)
		}
		if cerr := res.ConfirmActivity(i, conf, o.clock.Now()); cerr != nil {
			return errs.Mark(cerr, ErrBookingFailed)
		}
		comp.push(fmt.Sprintf("activity %s", act.ActivityID), func(cctx context.Context) (bool, error) {
			ok, err := o.activities.Cancel(cctx, conf)
			if err == nil && ok {
				res.ClearActivityConfirmation(i, o.clock.Now())
			}
			return ok, err
		})
	}

	return nil
}

func (o *orchestratorImpl) bookOne(ctx context.Context, book func(ctx context.Context) (string, error)) (string, error) {
	cctx, cancel := o.callCtx(ctx)
	defer cancel()
	conf, err := book(cctx)
	if err != nil {
		return "", err
	}
	if conf == "" {
		return "", errs.New("provider returned no confirmation number")
	}
	return conf, nil
}

func (o *orchestratorImpl) abortBooking(ctx context.Context, res *reservation.Reservation, comp *compensationStack, item string, cause error) error {
	o.tracker.UpdateStep(stepItemsBooked, false)
	o.logger.Warn("booking failed, aborting confirmation attempt", "reservation_id", res.ID(), "item", item, "error", cause)

	if o.cfg.Compensate {
		cctx, cancel := o.callCtx(ctx)
		defer cancel()
		comp.unwind(cctx, o.logger)
	}

	// Keep whatever state we ended up in durable: with compensation on this
	// is a clean slate, without it the surviving confirmation numbers let a
	// retry skip re-booking.
	if err := o.saveDraft(ctx, res); err != nil {
		o.logger.Warn("failed to persist draft after booking failure", "reservation_id", res.ID(), "error", err)
	}
	return errs.Mark(errs.Wrapf(cause, "failed to book %s", item), ErrBookingFailed)
}

// CancelReservation aborts the current session locally when id matches it
// (nothing is booked yet), otherwise runs the full cancellation of a
// confirmed reservation: best-effort provider cancellations first, then the
// gateway, and only a gateway acknowledgment marks the aggregate cancelled.
func (o *orchestratorImpl) CancelReservation(ctx context.Context, id uuid.UUID) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current != nil && o.current.ID() == id {
		if err := o.store.DeleteDraft(ctx, id); err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrStoreFailed)
		}
		o.tracker.ResetFlow(o.flowName())
		o.current = nil
		o.modification = false
		return nil
	}

	res, err := o.loadConfirmed(ctx, id)
	if err != nil {
		return err
	}
	if res.IsCancelled() {
		return nil
	}

	o.cancelBookedItems(ctx, res)

	cctx, cancel := o.callCtx(ctx)
	defer cancel()
	ok, err := o.gateway.CancelRemoteReservation(cctx, id)
	if err != nil {
		return errs.Mark(err, ErrGatewayCancelFailed)
	}
	if !ok {
		return ErrGatewayCancelFailed
	}

	if err := res.MarkCancelled(o.clock.Now()); err != nil {
		return errs.Mark(err, ErrGatewayCancelFailed)
	}
	if err := o.store.UpdateConfirmed(ctx, res); err != nil {
		return errs.Mark(err, ErrStoreFailed)
	}
	return nil
}

// cancelBookedItems is lenient by design: individual provider failures are
// logged and do not block the overall cancellation.
func (o *orchestratorImpl) cancelBookedItems(ctx context.Context, res *reservation.Reservation) {
	cancelOne := func(label, conf string, cancelFn func(ctx context.Context, conf string) (bool, error)) {
		cctx, cancel := o.callCtx(ctx)
		defer cancel()
		ok, err := cancelFn(cctx, conf)
		if err != nil || !ok {
			o.logger.Warn("provider-side cancellation failed",
				"reservation_id", res.ID(), "item", label, "confirmation", conf, "error", err)
		}
	}

	if hotel := res.Hotel(); hotel != nil && hotel.ConfirmationNumber != nil {
		cancelOne("hotel "+hotel.HotelID, *hotel.ConfirmationNumber, o.hotels.Cancel)
	}
	for _, leg := range res.Transports() {
		if leg.ConfirmationNumber != nil {
			cancelOne("transport "+leg.TransportID, *leg.ConfirmationNumber, o.transports.Cancel)
		}
	}
	for _, act := range res.Activities() {
		if act.ConfirmationNumber != nil {
			cancelOne("activity "+act.ActivityID, *act.ConfirmationNumber, o.activities.Cancel)
		}
	}
}

// StartModificationSession deep-copies a confirmed aggregate into a new
// in-progress session. The confirmed original stays untouched until
// ConfirmModification succeeds.
func (o *orchestratorImpl) StartModificationSession(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current != nil {
		return nil, ErrSessionConflict
	}

	res, err := o.loadConfirmed(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.IsCancelled() {
		return nil, ErrReservationCancelled
	}

	draft, err := res.Clone()
	if err != nil {
		return nil, err
	}
	if err := draft.ReopenForModification(o.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	o.current = draft
	o.modification = true
	o.tracker.StartFlow(modificationFlow)
	o.tracker.UpdateStep(stepModificationStarted, true)
	return draft, nil
}

func (o *orchestratorImpl) ConfirmModification(ctx context.Context) (*reservation.Reservation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	res := o.current
	if res == nil {
		return nil, ErrNoActiveSession
	}

	if err := res.Validate(); err != nil {
		o.tracker.UpdateStep(stepValidationPassed, false)
		return nil, errs.Mark(err, ErrValidationFailed)
	}
	// A previous failed attempt already moved the copy to MODIFIED.
	if res.Status() != reservation.StatusModified {
		if err := res.MarkModified(o.clock.Now()); err != nil {
			return nil, errs.Mark(err, ErrValidationFailed)
		}
	}

	cctx, cancel := o.callCtx(ctx)
	defer cancel()
	updated, err := o.gateway.UpdateReservation(cctx, res)
	if err != nil || updated == nil {
		o.tracker.UpdateStep(stepGatewaySubmitted, false)
		return nil, errs.Mark(err, ErrGatewaySubmitFailed)
	}

	now := o.clock.Now()
	if updated.Status() != reservation.StatusConfirmed {
		if err := updated.MarkConfirmed(now); err != nil {
			return nil, errs.Mark(err, ErrGatewaySubmitFailed)
		}
	}
	if err := o.store.SaveConfirmed(ctx, updated); err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}
	if err := o.store.DeleteDraft(ctx, updated.ID()); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		o.logger.Warn("failed to delete draft after modification", "reservation_id", updated.ID(), "error", err)
	}

	o.tracker.UpdateStep(stepGatewaySubmitted, true)
	o.tracker.CompleteFlow(modificationFlow)
	o.current = nil
	o.modification = false
	return updated, nil
}

// GetReservationDetails reads through confirmed store -> gateway -> draft
// store; it never contacts providers.
func (o *orchestratorImpl) GetReservationDetails(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := o.store.GetConfirmed(ctx, id)
	if err == nil {
		return res, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	cctx, cancel := o.callCtx(ctx)
	defer cancel()
	if res, err := o.gateway.GetReservation(cctx, id); err == nil && res != nil {
		return res, nil
	}

	res, err = o.store.GetDraft(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailed)
	}
	return res, nil
}

func (o *orchestratorImpl) ListUserReservations(ctx context.Context, userID uuid.UUID) ([]*reservation.Reservation, error) {
	list, err := o.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}
	return list, nil
}

func (o *orchestratorImpl) loadConfirmed(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := o.store.GetConfirmed(ctx, id)
	if err == nil {
		return res, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	cctx, cancel := o.callCtx(ctx)
	defer cancel()
	res, gerr := o.gateway.GetReservation(cctx, id)
	if gerr != nil || res == nil {
		return nil, ErrReservationNotFound
	}
	return res, nil
}

func (o *orchestratorImpl) saveDraft(ctx context.Context, res *reservation.Reservation) error {
	if err := o.store.SaveDraft(ctx, res); err != nil {
		return errs.Mark(err, ErrStoreFailed)
	}
	return nil
}
