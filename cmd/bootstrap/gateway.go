package bootstrap

import (
	"log/slog"

	"tripbook-reservations/internal/infra/httpgateway"
	"tripbook-reservations/internal/infra/memory"
	"tripbook-reservations/internal/pkg/config"
	"tripbook-reservations/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewReservationGateway,
	),
)

// NewReservationGateway selects the backend system of record: "http" for the
// JSON client against a remote booking service, anything else for the
// in-memory gateway.
func NewReservationGateway(cfg config.Config, logger *slog.Logger) usecase.ReservationGateway {
	if cfg.Gateway.Kind == "http" {
		logger.Info("using http reservation gateway", "base_url", cfg.Gateway.BaseURL)
		return httpgateway.New(cfg.Gateway.BaseURL, cfg.Gateway.Timeout)
	}
	logger.Info("using in-memory reservation gateway")
	return memory.NewReservationGateway()
}
