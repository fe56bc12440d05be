package bootstrap

import (
	"tripbook-reservations/internal/infra/providers"
	"tripbook-reservations/internal/usecase"

	"go.uber.org/fx"
)

var ProvidersModule = fx.Module("providers",
	fx.Provide(
		fx.Annotate(
			providers.NewStubHotelProvider,
			fx.As(new(usecase.HotelProvider)),
		),
		fx.Annotate(
			providers.NewStubTransportProvider,
			fx.As(new(usecase.TransportProvider)),
		),
		fx.Annotate(
			providers.NewStubActivityProvider,
			fx.As(new(usecase.ActivityProvider)),
		),
	),
)
