package bootstrap

import (
	"log/slog"

	"tripbook-reservations/internal/infra/tracker"
	"tripbook-reservations/internal/pkg/clock"
	"tripbook-reservations/internal/pkg/config"
	"tripbook-reservations/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			tracker.NewSlogTracker,
			fx.As(new(usecase.ProgressTracker)),
		),
		NewOrchestrator,
	),
)

func NewOrchestrator(
	hotels usecase.HotelProvider,
	transports usecase.TransportProvider,
	activities usecase.ActivityProvider,
	gateway usecase.ReservationGateway,
	store usecase.ReservationStore,
	progress usecase.ProgressTracker,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) usecase.Orchestrator {
	return usecase.NewOrchestrator(hotels, transports, activities, gateway, store, progress, clk, logger, cfg.Booking)
}
