//go:build unit || e2e

package builder

import (
	"time"

	dombooking "tickit/internal/domain/booking"
	"tickit/internal/domain/money"
	reqdto "tickit/internal/handler/dto/request"
	"tickit/internal/usecase/queries"
)

type BookingBuilder struct {
	ID             int64
	SiteID         int64
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	VisitDate      string
	TimeSlot       string
	AdultTickets   int
	ChildTickets   int
	StudentTickets int
	AddOns         []string
	TotalAmount    string
	Status         dombooking.Status
	CreatedAt      time.Time
}

// NewBookingBuilder defaults to 2 adults, 1 child and VR at a 45.00 site: 90 + 25 + 15 + 5 = 135.00.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:             1,
		SiteID:         1,
		CustomerName:   "Ada Lovelace",
		CustomerEmail:  "ada@example.com",
		CustomerPhone:  "+44 20 7946 0000",
		VisitDate:      "2026-11-20",
		TimeSlot:       "9:00 AM - 11:00 AM",
		AdultTickets:   2,
		ChildTickets:   1,
		StudentTickets: 0,
		AddOns:         []string{dombooking.AddOnVRExperience},
		TotalAmount:    "135.00",
		Status:         dombooking.StatusConfirmed,
		CreatedAt:      time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Tickets() dombooking.TicketCounts {
	return dombooking.TicketCounts{Adult: b.AdultTickets, Child: b.ChildTickets, Student: b.StudentTickets}
}

func (b *BookingBuilder) BuildDraft() dombooking.Draft {
	return dombooking.Draft{
		SiteID:        b.SiteID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		VisitDate:     b.VisitDate,
		TimeSlot:      b.TimeSlot,
		Tickets:       b.Tickets(),
		AddOns:        b.AddOns,
		TotalAmount:   money.MustParse(b.TotalAmount),
	}
}

func (b *BookingBuilder) BuildNew() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.BuildDraft())
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID, b.SiteID,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.VisitDate, b.TimeSlot,
		b.Tickets(), b.AddOns,
		money.MustParse(b.TotalAmount), b.Status, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.ToBookingView(b.BuildDomain())
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SiteID:         b.SiteID,
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		CustomerPhone:  b.CustomerPhone,
		VisitDate:      b.VisitDate,
		TimeSlot:       b.TimeSlot,
		AdultTickets:   b.AdultTickets,
		ChildTickets:   b.ChildTickets,
		StudentTickets: b.StudentTickets,
		AddOns:         b.AddOns,
		TotalAmount:    b.TotalAmount,
	}
}
