package bootstrap

import (
	"travel-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	GatewayModule,
	NotificationModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
