//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"tickit/internal/domain/site"
	"tickit/internal/infra"
	"tickit/internal/infra/memstore"
	"tickit/internal/infra/seed"
	"tickit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *memstore.Catalog {
	t.Helper()
	c := memstore.NewCatalog()
	require.NoError(t, c.Seed(context.Background(), seed.Sites()))
	return c
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("seed assigns ids in order", func(t *testing.T) {
		c := seeded(t)
		sites, err := c.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, sites, 6)
		for i, s := range sites {
			assert.Equal(t, int64(i+1), s.ID())
		}
	})

	t.Run("category filter is exact", func(t *testing.T) {
		c := seeded(t)
		museums, err := c.ListActiveByCategory(ctx, "Museum")
		require.NoError(t, err)
		require.Len(t, museums, 1)
		assert.Equal(t, "Egyptian Museum", museums[0].Name())

		none, err := c.ListActiveByCategory(ctx, "museum")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("inactive sites are hidden from lists but not from lookup", func(t *testing.T) {
		c := memstore.NewCatalog()
		hidden := builder.NewSiteBuilder().With(func(b *builder.SiteBuilder) { b.Active = false }).BuildDomain()
		stored, err := c.Create(ctx, hidden)
		require.NoError(t, err)

		sites, err := c.ListActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, sites)

		found, err := c.FindByID(ctx, stored.ID())
		require.NoError(t, err)
		assert.False(t, found.IsActive())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := seeded(t).FindByID(ctx, 99)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("returned sites do not alias the store", func(t *testing.T) {
		c := seeded(t)
		s, err := c.FindByID(ctx, 1)
		require.NoError(t, err)
		require.NoError(t, s.ReserveSeats("9:00 AM - 11:00 AM", 10))

		again, err := c.FindByID(ctx, 1)
		require.NoError(t, err)
		slot, _ := again.SlotByLabel("9:00 AM - 11:00 AM")
		assert.Equal(t, 85, slot.Available())
	})
}

func TestCatalogReserveSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve and release", func(t *testing.T) {
		c := seeded(t)
		require.NoError(t, c.ReserveSeats(ctx, 1, "9:00 AM - 11:00 AM", 5))
		s, _ := c.FindByID(ctx, 1)
		slot, _ := s.SlotByLabel("9:00 AM - 11:00 AM")
		assert.Equal(t, 80, slot.Available())

		require.NoError(t, c.ReleaseSeats(ctx, 1, "9:00 AM - 11:00 AM", 5))
		s, _ = c.FindByID(ctx, 1)
		slot, _ = s.SlotByLabel("9:00 AM - 11:00 AM")
		assert.Equal(t, 85, slot.Available())
	})

	t.Run("error kinds", func(t *testing.T) {
		c := seeded(t)
		assert.True(t, infra.IsKind(c.ReserveSeats(ctx, 1, "4:30 PM - 6:30 PM", 1), infra.KindConflict))
		assert.True(t, infra.IsKind(c.ReserveSeats(ctx, 1, "midnight", 1), infra.KindNotFound))
		assert.True(t, infra.IsKind(c.ReserveSeats(ctx, 42, "midnight", 1), infra.KindNotFound))
	})

	t.Run("concurrent reservations never oversell", func(t *testing.T) {
		c := memstore.NewCatalog()
		stored, err := c.Create(ctx, builder.NewSiteBuilder().WithSlots(
			builder.SlotSpec{Label: "noon", Price: "10", Capacity: 10, Available: 10},
		).BuildDomain())
		require.NoError(t, err)

		var wg sync.WaitGroup
		var ok atomic.Int32
		for range 25 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if c.ReserveSeats(ctx, stored.ID(), "noon", 1) == nil {
					ok.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(10), ok.Load())
		s, _ := c.FindByID(ctx, stored.ID())
		slot, _ := s.SlotByLabel("noon")
		assert.Equal(t, 0, slot.Available())
	})
}

func TestCatalogCreate(t *testing.T) {
	c := seeded(t)
	s, err := builder.NewSiteBuilder().With(func(b *builder.SiteBuilder) { b.Name = "Machu Picchu" }).BuildNew()
	require.NoError(t, err)

	stored, err := c.Create(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stored.ID())
	assert.Equal(t, site.CategoryArchaeological, stored.Category())
}
