package pgstore

import (
	"context"
	"encoding/json"

	"tickit/internal/domain/booking"
	"tickit/internal/domain/money"
	"tickit/internal/infra"
	"tickit/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const selectBookings = `
SELECT id, site_id, customer_name, customer_email, customer_phone, visit_date, time_slot,
       adult_tickets, child_tickets, student_tickets, add_ons::text, total_cents, status, created_at
FROM bookings`

type Bookings struct {
	db DBTX
}

func NewBookings(db DBTX) *Bookings {
	return &Bookings{db: db}
}

// Create relies on BIGSERIAL for the id and column defaults for status and created_at.
func (r *Bookings) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	visitDate, err := pgconv.DateFromString(b.VisitDate())
	if err != nil {
		return nil, infra.WrapRepoErr("invalid visit date", err)
	}
	addOns, err := json.Marshal(b.AddOns())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode add-ons", err)
	}

	t := b.Tickets()
	row := r.db.QueryRow(ctx, `
INSERT INTO bookings (site_id, customer_name, customer_email, customer_phone, visit_date, time_slot,
                      adult_tickets, child_tickets, student_tickets, add_ons, total_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11)
RETURNING id, status, created_at`,
		b.SiteID(), b.CustomerName(), b.CustomerEmail(), b.CustomerPhone(), visitDate, b.TimeSlot(),
		t.Adult, t.Child, t.Student, string(addOns), b.TotalAmount().Cents(),
	)

	var (
		id        int64
		status    string
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &status, &createdAt); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("site not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to insert booking", err)
	}

	return booking.ReconstructBooking(
		id, b.SiteID(), b.CustomerName(), b.CustomerEmail(), b.CustomerPhone(),
		b.VisitDate(), b.TimeSlot(), t, b.AddOns(), b.TotalAmount(),
		booking.Status(status), pgconv.TimeFromPgtype(createdAt).UTC(),
	), nil
}

func (r *Bookings) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	rows, err := r.db.Query(ctx, selectBookings+` WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking", err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBooking)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}
	return b, nil
}

func (r *Bookings) ListByEmail(ctx context.Context, email string) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, selectBookings+` WHERE customer_email = $1 ORDER BY id`, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	out, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}
	return out, nil
}

func scanBooking(row pgx.CollectableRow) (*booking.Booking, error) {
	var (
		id, siteID            int64
		name, email, timeSlot string
		phone                 pgtype.Text
		visitDate             pgtype.Date
		adult, child, student int
		addOnsJSON, status    string
		totalCents            int64
		createdAt             pgtype.Timestamptz
	)
	if err := row.Scan(&id, &siteID, &name, &email, &phone, &visitDate, &timeSlot,
		&adult, &child, &student, &addOnsJSON, &totalCents, &status, &createdAt); err != nil {
		return nil, err
	}

	var addOns []string
	if err := json.Unmarshal([]byte(addOnsJSON), &addOns); err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, siteID, name, email, pgconv.StringFromPgtype(phone),
		pgconv.DateToString(visitDate), timeSlot,
		booking.TicketCounts{Adult: adult, Child: child, Student: student},
		addOns, money.FromCents(totalCents), booking.Status(status),
		pgconv.TimeFromPgtype(createdAt).UTC(),
	), nil
}
