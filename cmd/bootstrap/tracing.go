package bootstrap

import (
	"context"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/obs"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(initTracing),
)

func initTracing(lc fx.Lifecycle, cfg config.TracingConfig) error {
	shutdown, err := obs.InitTracer(context.Background(), cfg)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
