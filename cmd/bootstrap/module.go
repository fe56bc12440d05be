package bootstrap

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	PersistenceModule,
	GatewayModule,
	ProvidersModule,
	UseCaseModule,
	HandlerModule,
)
