package memstore

import (
	"context"
	"sync"

	"tickit/internal/domain/booking"
	"tickit/internal/infra"
	"tickit/internal/pkg/clock"
)

// Bookings assigns ids and inserts under one lock, so ids are gap-free and strictly increasing.
type Bookings struct {
	mu     sync.RWMutex
	clock  clock.Clock
	nextID int64
	byID   map[int64]*booking.Booking
	order  []int64
}

func NewBookings(clk clock.Clock) *Bookings {
	return &Bookings{
		clock:  clk,
		nextID: 1,
		byID:   make(map[int64]*booking.Booking),
	}
}

func (r *Bookings) Create(_ context.Context, b *booking.Booking) (*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := b.WithIdentity(r.nextID, r.clock.Now())
	r.nextID++
	r.byID[stored.ID()] = stored
	r.order = append(r.order, stored.ID())
	return stored.Clone(), nil
}

func (r *Bookings) FindByID(_ context.Context, id int64) (*booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b.Clone(), nil
}

func (r *Bookings) ListByEmail(_ context.Context, email string) ([]*booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*booking.Booking, 0)
	for _, id := range r.order {
		if b := r.byID[id]; b.CustomerEmail() == email {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}
