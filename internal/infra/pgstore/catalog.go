package pgstore

import (
	"context"
	"encoding/json"

	"tickit/internal/domain/money"
	"tickit/internal/domain/site"
	"tickit/internal/infra"
	"tickit/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

const selectSites = `
SELECT id, name, location, description, category, price_cents, rating::float8, image_url, features::text, is_active
FROM sites`

const selectSlots = `
SELECT site_id, label, price_cents, capacity, available
FROM site_time_slots
WHERE site_id = ANY($1)
ORDER BY site_id, position`

type Catalog struct {
	db TxBeginner
}

func NewCatalog(db TxBeginner) *Catalog {
	return &Catalog{db: db}
}

func (c *Catalog) ListActive(ctx context.Context) ([]*site.Site, error) {
	return c.load(ctx, selectSites+` WHERE is_active ORDER BY id`)
}

func (c *Catalog) ListActiveByCategory(ctx context.Context, category string) ([]*site.Site, error) {
	return c.load(ctx, selectSites+` WHERE is_active AND category = $1 ORDER BY id`, category)
}

func (c *Catalog) FindByID(ctx context.Context, id int64) (*site.Site, error) {
	sites, err := c.load(ctx, selectSites+` WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		return nil, infra.WrapRepoErr("site not found", nil, infra.KindNotFound)
	}
	return sites[0], nil
}

type siteRow struct {
	id          int64
	name        string
	location    string
	description string
	category    string
	priceCents  int64
	rating      float64
	imageURL    string
	features    string
	active      bool
}

type slotRow struct {
	siteID     int64
	label      string
	priceCents int64
	capacity   int
	available  int
}

func (c *Catalog) load(ctx context.Context, query string, args ...any) ([]*site.Site, error) {
	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query sites", err)
	}
	siteRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (siteRow, error) {
		var r siteRow
		err := row.Scan(&r.id, &r.name, &r.location, &r.description, &r.category,
			&r.priceCents, &r.rating, &r.imageURL, &r.features, &r.active)
		return r, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan sites", err)
	}
	if len(siteRows) == 0 {
		return []*site.Site{}, nil
	}

	ids := make([]int64, 0, len(siteRows))
	for _, r := range siteRows {
		ids = append(ids, r.id)
	}
	rows, err = c.db.Query(ctx, selectSlots, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query time slots", err)
	}
	slotRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (slotRow, error) {
		var r slotRow
		err := row.Scan(&r.siteID, &r.label, &r.priceCents, &r.capacity, &r.available)
		return r, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan time slots", err)
	}

	slotsBySite := make(map[int64][]site.TimeSlot, len(siteRows))
	for _, r := range slotRows {
		ts, err := site.NewTimeSlot(r.label, money.FromCents(r.priceCents), r.capacity, r.available)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid time slot row", err)
		}
		slotsBySite[r.siteID] = append(slotsBySite[r.siteID], ts)
	}

	out := make([]*site.Site, 0, len(siteRows))
	for _, r := range siteRows {
		var features []string
		if err := json.Unmarshal([]byte(r.features), &features); err != nil {
			return nil, infra.WrapRepoErr("invalid features column", err)
		}
		out = append(out, site.ReconstructSite(
			r.id, r.name, r.location, r.description, site.Category(r.category),
			money.FromCents(r.priceCents), r.rating, r.imageURL, features, slotsBySite[r.id], r.active,
		))
	}
	return out, nil
}

func (c *Catalog) Create(ctx context.Context, s *site.Site) (*site.Site, error) {
	features, err := json.Marshal(s.Features())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode features", err)
	}

	var id int64
	err = withTx(ctx, c.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
INSERT INTO sites (name, location, description, category, price_cents, rating, image_url, features, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9)
RETURNING id`,
			s.Name(), s.Location(), s.Description(), s.Category().String(), s.Price().Cents(),
			s.Rating(), s.ImageURL(), string(features), s.IsActive(),
		).Scan(&id)
		if err != nil {
			return infra.WrapRepoErr("failed to insert site", err)
		}

		batch := &pgx.Batch{}
		for i, ts := range s.TimeSlots() {
			batch.Queue(`
INSERT INTO site_time_slots (site_id, position, label, price_cents, capacity, available)
VALUES ($1, $2, $3, $4, $5, $6)`,
				id, i, ts.Label(), ts.Price().Cents(), ts.Capacity(), ts.Available())
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			if pgconv.IsUniqueViolation(err) {
				return infra.WrapRepoErr("duplicate time slot", err, infra.KindConflict)
			}
			return infra.WrapRepoErr("failed to insert time slots", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.WithID(id), nil
}

// ReserveSeats decrements in a single guarded UPDATE so concurrent bookings cannot oversell.
func (c *Catalog) ReserveSeats(ctx context.Context, siteID int64, label string, tickets int) error {
	tag, err := c.db.Exec(ctx, `
UPDATE site_time_slots
SET available = available - $3
WHERE site_id = $1 AND label = $2 AND available >= GREATEST($3, 1)`,
		siteID, label, max(tickets, 0))
	if err != nil {
		return infra.WrapRepoErr("failed to reserve seats", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	return c.missOrConflict(ctx, siteID, label)
}

func (c *Catalog) ReleaseSeats(ctx context.Context, siteID int64, label string, tickets int) error {
	tag, err := c.db.Exec(ctx, `
UPDATE site_time_slots
SET available = LEAST(capacity, available + $3)
WHERE site_id = $1 AND label = $2`,
		siteID, label, max(tickets, 0))
	if err != nil {
		return infra.WrapRepoErr("failed to release seats", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (c *Catalog) missOrConflict(ctx context.Context, siteID int64, label string) error {
	var exists bool
	err := c.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM site_time_slots WHERE site_id = $1 AND label = $2)`,
		siteID, label,
	).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr("failed to check time slot", err)
	}
	if !exists {
		return infra.WrapRepoErr("time slot not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("not enough seats", nil, infra.KindConflict)
}

// SeedIfEmpty inserts sites only into an empty catalog, so restarts keep ids stable.
func (c *Catalog) SeedIfEmpty(ctx context.Context, sites []*site.Site) (bool, error) {
	var count int64
	if err := c.db.QueryRow(ctx, `SELECT count(*) FROM sites`).Scan(&count); err != nil {
		return false, infra.WrapRepoErr("failed to count sites", err)
	}
	if count > 0 {
		return false, nil
	}
	for _, s := range sites {
		if _, err := c.Create(ctx, s); err != nil {
			return false, err
		}
	}
	return true, nil
}
