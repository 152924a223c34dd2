// Package memstore keeps the catalog and bookings in process memory. It is the default
// storage driver and loses everything on restart.
package memstore

import (
	"context"
	"sync"

	"tickit/internal/domain/site"
	"tickit/internal/infra"
	"tickit/internal/pkg/errs"
)

type Catalog struct {
	mu     sync.RWMutex
	nextID int64
	sites  map[int64]*site.Site
	order  []int64
}

func NewCatalog() *Catalog {
	return &Catalog{
		nextID: 1,
		sites:  make(map[int64]*site.Site),
	}
}

func (c *Catalog) ListActive(_ context.Context) ([]*site.Site, error) {
	return c.list(func(*site.Site) bool { return true }), nil
}

func (c *Catalog) ListActiveByCategory(_ context.Context, category string) ([]*site.Site, error) {
	return c.list(func(s *site.Site) bool { return s.Category().String() == category }), nil
}

func (c *Catalog) list(keep func(*site.Site) bool) []*site.Site {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*site.Site, 0, len(c.order))
	for _, id := range c.order {
		s := c.sites[id]
		if s.IsActive() && keep(s) {
			out = append(out, s.Clone())
		}
	}
	return out
}

func (c *Catalog) FindByID(_ context.Context, id int64) (*site.Site, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.sites[id]
	if !ok {
		return nil, infra.WrapRepoErr("site not found", nil, infra.KindNotFound)
	}
	return s.Clone(), nil
}

func (c *Catalog) Create(_ context.Context, s *site.Site) (*site.Site, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := s.WithID(c.nextID)
	c.nextID++
	c.sites[stored.ID()] = stored
	c.order = append(c.order, stored.ID())
	return stored.Clone(), nil
}

func (c *Catalog) ReserveSeats(_ context.Context, siteID int64, label string, tickets int) error {
	return c.mutateSlot(siteID, func(s *site.Site) error { return s.ReserveSeats(label, tickets) })
}

func (c *Catalog) ReleaseSeats(_ context.Context, siteID int64, label string, tickets int) error {
	return c.mutateSlot(siteID, func(s *site.Site) error { return s.ReleaseSeats(label, tickets) })
}

func (c *Catalog) mutateSlot(siteID int64, fn func(*site.Site) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sites[siteID]
	if !ok {
		return infra.WrapRepoErr("site not found", nil, infra.KindNotFound)
	}
	if err := fn(s); err != nil {
		switch {
		case errs.Is(err, site.ErrSlotNotFound):
			return infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		case errs.Is(err, site.ErrInsufficientAvailability):
			return infra.WrapRepoErr("not enough seats", err, infra.KindConflict)
		default:
			return infra.WrapRepoErr("failed to update time slot", err)
		}
	}
	return nil
}

// Seed inserts sites in order; ids continue from the current counter.
func (c *Catalog) Seed(ctx context.Context, sites []*site.Site) error {
	for _, s := range sites {
		if _, err := c.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
