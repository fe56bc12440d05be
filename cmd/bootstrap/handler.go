package bootstrap

import (
	"tripbook-reservations/internal/handler"
	"tripbook-reservations/internal/handler/api"
	"tripbook-reservations/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSessionHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
