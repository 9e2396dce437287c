package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB pings before returning. The pool closes on app stop.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		slog.String("host", cfg.DB.Host),
		slog.String("database", cfg.DB.DBName),
		slog.Int("max_conns", int(pool.Config().MaxConns)),
	)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("draining database pool", slog.Int("acquired", int(stat.AcquiredConns())))
			cleanup()
			return nil
		},
	})

	return pool, nil
}
