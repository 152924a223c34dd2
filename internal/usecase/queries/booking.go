package queries

import (
	"context"
	"strings"

	"tickit/internal/domain/booking"
	"tickit/internal/infra"
	"tickit/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrEmailRequired   = errs.New("email is required")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	ListByEmail(ctx context.Context, email string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return ToBookingView(b), nil
}

// ListByEmail matches the address exactly, case included, in creation order.
func (q *bookingQueriesImpl) ListByEmail(ctx context.Context, email string) ([]*BookingView, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	bookings, err := q.store.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return ToBookingViews(bookings), nil
}
