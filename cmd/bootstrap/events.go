package bootstrap

import (
	"context"
	"log/slog"

	"tickit/internal/infra/broker"
	"tickit/internal/pkg/config"
	"tickit/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(NewEventPublisher),
)

// NewEventPublisher connects lazily, so a broker that is down at boot does not block startup.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.BookingEventPublisher {
	if !cfg.Events.Enabled {
		return broker.NewLogPublisher()
	}

	p := broker.NewPublisher(cfg.Events.AMQPURL, cfg.Events.Queue)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	slog.Info("Booking events enabled", "queue", cfg.Events.Queue)
	return p
}
