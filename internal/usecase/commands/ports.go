package commands

import (
	"context"
	"time"

	"tickit/internal/domain/booking"
	"tickit/internal/domain/site"

	"github.com/google/uuid"
)

// CatalogRepository is the write side of the site catalog.
// ReserveSeats must check and decrement in one step.
type CatalogRepository interface {
	FindByID(ctx context.Context, id int64) (*site.Site, error)
	Create(ctx context.Context, s *site.Site) (*site.Site, error)
	ReserveSeats(ctx context.Context, siteID int64, label string, tickets int) error
	ReleaseSeats(ctx context.Context, siteID int64, label string, tickets int) error
}

// BookingRepository assigns id, status and creation time on Create.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
}

type BookingEventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, evt BookingConfirmedEvent) error
}

type BookingConfirmedEvent struct {
	EventID       uuid.UUID `json:"eventId"`
	OccurredAt    time.Time `json:"occurredAt"`
	BookingID     int64     `json:"bookingId"`
	SiteID        int64     `json:"siteId"`
	SiteName      string    `json:"siteName"`
	CustomerEmail string    `json:"customerEmail"`
	VisitDate     string    `json:"visitDate"`
	TimeSlot      string    `json:"timeSlot"`
	Tickets       int       `json:"tickets"`
	TotalAmount   string    `json:"totalAmount"`
}

func NewBookingConfirmedEvent(b *booking.Booking, s *site.Site, now time.Time) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		EventID:       uuid.New(),
		OccurredAt:    now,
		BookingID:     b.ID(),
		SiteID:        b.SiteID(),
		SiteName:      s.Name(),
		CustomerEmail: b.CustomerEmail(),
		VisitDate:     b.VisitDate(),
		TimeSlot:      b.TimeSlot(),
		Tickets:       b.Tickets().Total(),
		TotalAmount:   b.TotalAmount().String(),
	}
}
