// Package cache holds a Redis read-through decorator for the site catalog.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"tickit/internal/domain/money"
	"tickit/internal/domain/site"

	"github.com/redis/go-redis/v9"
)

// KV is the subset of redis.Cmdable the cache needs.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type CatalogStore interface {
	ListActive(ctx context.Context) ([]*site.Site, error)
	ListActiveByCategory(ctx context.Context, category string) ([]*site.Site, error)
	FindByID(ctx context.Context, id int64) (*site.Site, error)
	Create(ctx context.Context, s *site.Site) (*site.Site, error)
	ReserveSeats(ctx context.Context, siteID int64, label string, tickets int) error
	ReleaseSeats(ctx context.Context, siteID int64, label string, tickets int) error
}

// Catalog caches reads and drops affected keys on every write.
// Redis failures are logged and the inner store answers instead.
type Catalog struct {
	inner  CatalogStore
	kv     KV
	ttl    time.Duration
	prefix string
}

func NewCatalog(inner CatalogStore, kv KV, ttl time.Duration, prefix string) *Catalog {
	return &Catalog{inner: inner, kv: kv, ttl: ttl, prefix: prefix}
}

func (c *Catalog) ListActive(ctx context.Context) ([]*site.Site, error) {
	return c.list(ctx, c.activeKey(), c.inner.ListActive)
}

func (c *Catalog) ListActiveByCategory(ctx context.Context, category string) ([]*site.Site, error) {
	return c.list(ctx, c.categoryKey(category), func(ctx context.Context) ([]*site.Site, error) {
		return c.inner.ListActiveByCategory(ctx, category)
	})
}

func (c *Catalog) FindByID(ctx context.Context, id int64) (*site.Site, error) {
	key := c.siteKey(id)
	var rec siteRecord
	if c.load(ctx, key, &rec) {
		return rec.toDomain(), nil
	}

	s, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, newSiteRecord(s))
	return s, nil
}

func (c *Catalog) Create(ctx context.Context, s *site.Site) (*site.Site, error) {
	created, err := c.inner.Create(ctx, s)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, c.activeKey(), c.categoryKey(created.Category().String()))
	return created, nil
}

func (c *Catalog) ReserveSeats(ctx context.Context, siteID int64, label string, tickets int) error {
	if err := c.inner.ReserveSeats(ctx, siteID, label, tickets); err != nil {
		return err
	}
	c.invalidateSite(ctx, siteID)
	return nil
}

func (c *Catalog) ReleaseSeats(ctx context.Context, siteID int64, label string, tickets int) error {
	if err := c.inner.ReleaseSeats(ctx, siteID, label, tickets); err != nil {
		return err
	}
	c.invalidateSite(ctx, siteID)
	return nil
}

func (c *Catalog) list(ctx context.Context, key string, fetch func(context.Context) ([]*site.Site, error)) ([]*site.Site, error) {
	var recs []siteRecord
	if c.load(ctx, key, &recs) {
		out := make([]*site.Site, 0, len(recs))
		for _, r := range recs {
			out = append(out, r.toDomain())
		}
		return out, nil
	}

	sites, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	recs = make([]siteRecord, 0, len(sites))
	for _, s := range sites {
		recs = append(recs, newSiteRecord(s))
	}
	c.store(ctx, key, recs)
	return sites, nil
}

func (c *Catalog) load(ctx context.Context, key string, dst any) bool {
	raw, err := c.kv.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Catalog cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("Catalog cache entry is corrupt", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *Catalog) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Catalog cache encode failed", "key", key, "error", err.Error())
		return
	}
	if err := c.kv.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("Catalog cache write failed", "key", key, "error", err.Error())
	}
}

// invalidateSite drops every list as well, since availability shows in all of them.
func (c *Catalog) invalidateSite(ctx context.Context, siteID int64) {
	keys := []string{c.siteKey(siteID), c.activeKey()}
	for _, cat := range site.Categories() {
		keys = append(keys, c.categoryKey(cat.String()))
	}
	c.invalidate(ctx, keys...)
}

func (c *Catalog) invalidate(ctx context.Context, keys ...string) {
	if err := c.kv.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("Catalog cache invalidation failed", "keys", keys, "error", err.Error())
	}
}

func (c *Catalog) activeKey() string { return c.prefix + ":sites:active" }

func (c *Catalog) categoryKey(category string) string {
	return c.prefix + ":sites:category:" + category
}

func (c *Catalog) siteKey(id int64) string {
	return c.prefix + ":site:" + strconv.FormatInt(id, 10)
}

type slotRecord struct {
	Label      string `json:"label"`
	PriceCents int64  `json:"priceCents"`
	Capacity   int    `json:"capacity"`
	Available  int    `json:"available"`
}

type siteRecord struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Location    string       `json:"location"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	PriceCents  int64        `json:"priceCents"`
	Rating      float64      `json:"rating"`
	ImageURL    string       `json:"imageUrl"`
	Features    []string     `json:"features"`
	Slots       []slotRecord `json:"slots"`
	Active      bool         `json:"active"`
}

func newSiteRecord(s *site.Site) siteRecord {
	slots := make([]slotRecord, 0, len(s.TimeSlots()))
	for _, ts := range s.TimeSlots() {
		slots = append(slots, slotRecord{
			Label:      ts.Label(),
			PriceCents: ts.Price().Cents(),
			Capacity:   ts.Capacity(),
			Available:  ts.Available(),
		})
	}
	return siteRecord{
		ID:          s.ID(),
		Name:        s.Name(),
		Location:    s.Location(),
		Description: s.Description(),
		Category:    s.Category().String(),
		PriceCents:  s.Price().Cents(),
		Rating:      s.Rating(),
		ImageURL:    s.ImageURL(),
		Features:    s.Features(),
		Slots:       slots,
		Active:      s.IsActive(),
	}
}

// toDomain drops slots that no longer validate.
func (r siteRecord) toDomain() *site.Site {
	slots := make([]site.TimeSlot, 0, len(r.Slots))
	for _, sr := range r.Slots {
		ts, err := site.NewTimeSlot(sr.Label, money.FromCents(sr.PriceCents), sr.Capacity, sr.Available)
		if err != nil {
			continue
		}
		slots = append(slots, ts)
	}
	return site.ReconstructSite(
		r.ID, r.Name, r.Location, r.Description, site.Category(r.Category),
		money.FromCents(r.PriceCents), r.Rating, r.ImageURL, r.Features, slots, r.Active,
	)
}
