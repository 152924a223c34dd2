package bootstrap

import (
	"context"
	"log/slog"

	"tickit/cmd/bootstrap/components"
	"tickit/internal/infra/cache"
	"tickit/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			WithCache,
			fx.ParamTags(``, ``, `name:"raw"`),
		),
	),
)

// WithCache wraps the catalog in the Redis read cache when enabled.
// An unreachable Redis only disables caching.
func WithCache(lc fx.Lifecycle, cfg config.Config, s components.Storage) components.Storage {
	if !cfg.Cache.Enabled {
		return s
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		slog.Warn("Catalog cache disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		return s
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("Catalog cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Cache.TTL)
	s.Catalog = cache.NewCatalog(s.Catalog, client, cfg.Cache.TTL, cfg.Cache.Prefix)
	return s
}
