//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"tickit/internal/infra/pgstore"
	"tickit/internal/infra/seed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const truncateSQL = `TRUNCATE TABLE bookings, site_time_slots, sites RESTART IDENTITY CASCADE`

// SeedReferenceData loads the sample catalog into an empty database.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pgstore.NewCatalog(pool).SeedIfEmpty(ctx, seed.Sites())
	return err
}

// ResetDB truncates every table, restarts the id sequences and reseeds the catalog,
// so seeded sites always get ids 1..6.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, truncateSQL); err != nil {
		return err
	}
	return SeedReferenceData(pool)
}

// SetAvailability forces a slot's open seats, for sold-out and race scenarios.
func SetAvailability(t *testing.T, db DBLike, siteID int64, label string, available int) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		`UPDATE site_time_slots SET available = $3 WHERE site_id = $1 AND label = $2`,
		siteID, label, available)
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected(), "no slot %q at site %d", label, siteID)
}

func Availability(t *testing.T, db DBLike, siteID int64, label string) int {
	t.Helper()

	var available int
	err := db.QueryRow(context.Background(),
		`SELECT available FROM site_time_slots WHERE site_id = $1 AND label = $2`,
		siteID, label).Scan(&available)
	require.NoError(t, err)
	return available
}

func CountBookings(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), `SELECT count(*) FROM bookings`).Scan(&n))
	return n
}
