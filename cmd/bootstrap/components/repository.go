package components

import (
	"context"

	"tickit/internal/domain/site"
	"tickit/internal/usecase/commands"
	"tickit/internal/usecase/queries"

	"go.uber.org/fx"
)

// CatalogStore is what every catalog driver (and the cache decorator) implements.
type CatalogStore interface {
	commands.CatalogRepository
	ListActive(ctx context.Context) ([]*site.Site, error)
	ListActiveByCategory(ctx context.Context, category string) ([]*site.Site, error)
}

type BookingStore interface {
	commands.BookingRepository
	queries.BookingReadStore
}

type Storage struct {
	Catalog  CatalogStore
	Bookings BookingStore
}

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(s Storage) commands.CatalogRepository { return s.Catalog },
		func(s Storage) queries.SiteReadStore { return s.Catalog },
		func(s Storage) commands.BookingRepository { return s.Bookings },
		func(s Storage) queries.BookingReadStore { return s.Bookings },
	),
)
