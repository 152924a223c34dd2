package bootstrap

import (
	"context"
	"log/slog"

	"tickit/cmd/bootstrap/components"
	"tickit/internal/infra/db"
	"tickit/internal/infra/memstore"
	"tickit/internal/infra/pgstore"
	"tickit/internal/infra/seed"
	"tickit/internal/pkg/clock"
	"tickit/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			NewStorage,
			fx.ResultTags(`name:"raw"`),
		),
	),
)

// NewStorage picks the in-memory or PostgreSQL driver from STORAGE_DRIVER.
// The result is tagged "raw"; CacheModule provides the Storage everything else sees.
func NewStorage(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (components.Storage, error) {
	ctx := context.Background()

	if cfg.Storage.Driver != config.StoragePostgres {
		catalog := memstore.NewCatalog()
		if cfg.Storage.Seed {
			if err := catalog.Seed(ctx, seed.Sites()); err != nil {
				return components.Storage{}, err
			}
		}
		slog.Info("Using in-memory storage", "seeded", cfg.Storage.Seed)
		return components.Storage{Catalog: catalog, Bookings: memstore.NewBookings(clk)}, nil
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return components.Storage{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	if err := pgstore.Migrate(ctx, pool); err != nil {
		cleanup()
		return components.Storage{}, err
	}
	catalog := pgstore.NewCatalog(pool)
	if cfg.Storage.Seed {
		seeded, err := catalog.SeedIfEmpty(ctx, seed.Sites())
		if err != nil {
			cleanup()
			return components.Storage{}, err
		}
		slog.Info("Using PostgreSQL storage", "seeded", seeded)
	}
	return components.Storage{Catalog: catalog, Bookings: pgstore.NewBookings(pool)}, nil
}
