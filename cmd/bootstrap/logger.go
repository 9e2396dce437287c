package bootstrap

import (
	"log/slog"

	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also becomes the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewSlogLogger(cfg.Log)
}
