package bootstrap

import (
	"travel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections exposes the parts of config.Config that constructors take directly.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
	func(cfg config.Config) config.NotificationConfig { return cfg.Notification },
	func(cfg config.Config) config.BreakerConfig { return cfg.Breaker },
	func(cfg config.Config) config.TracingConfig { return cfg.Tracing },
)
