package bootstrap

import (
	"context"

	"travel-booking/internal/infra/notify"
	"travel-booking/internal/infra/worker"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		fx.Annotate(
			notify.NewOutboxNotifier,
			fx.As(new(commands.ConfirmationNotifier)),
		),
		NewSender,
		worker.NewNotificationDispatcher,
	),
	fx.Invoke(startDispatcher),
)

func NewSender(lc fx.Lifecycle, cfg config.Config) (notify.Sender, error) {
	sender, cleanup, err := notify.NewSender(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return sender, nil
}

func startDispatcher(lc fx.Lifecycle, d *worker.NotificationDispatcher, cfg config.NotificationConfig) {
	if cfg.Disabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: d.Start,
		OnStop:  d.Stop,
	})
}
