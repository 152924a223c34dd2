package request

import (
	"tickit/internal/domain/booking"
	"tickit/internal/domain/money"
	"tickit/internal/usecase/queries"
)

type CreateBookingRequest struct {
	SiteID         int64    `json:"siteId" binding:"required,gt=0"`
	CustomerName   string   `json:"customerName" binding:"required,min=2,max=200"`
	CustomerEmail  string   `json:"customerEmail" binding:"required,email"`
	CustomerPhone  string   `json:"customerPhone" binding:"omitempty,max=50"`
	VisitDate      string   `json:"visitDate" binding:"required,datetime=2006-01-02"`
	TimeSlot       string   `json:"timeSlot" binding:"required,max=100"`
	AdultTickets   int      `json:"adultTickets" binding:"gte=0,lte=1000"`
	ChildTickets   int      `json:"childTickets" binding:"gte=0,lte=1000"`
	StudentTickets int      `json:"studentTickets" binding:"gte=0,lte=1000"`
	AddOns         []string `json:"addOns" binding:"omitempty,max=10,dive,required"`
	TotalAmount    string   `json:"totalAmount" binding:"required"`
}

func (r CreateBookingRequest) Tickets() booking.TicketCounts {
	return booking.TicketCounts{Adult: r.AdultTickets, Child: r.ChildTickets, Student: r.StudentTickets}
}

func (r CreateBookingRequest) ToDomain() (booking.Draft, error) {
	total, err := money.Parse(r.TotalAmount)
	if err != nil {
		verr := &booking.ValidationError{}
		verr.Add("totalAmount", "Must be a non-negative decimal amount with at most two decimals")
		return booking.Draft{}, verr
	}

	return booking.Draft{
		SiteID:        r.SiteID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		VisitDate:     r.VisitDate,
		TimeSlot:      r.TimeSlot,
		Tickets:       r.Tickets(),
		AddOns:        r.AddOns,
		TotalAmount:   total,
	}, nil
}

type QuoteRequest struct {
	SiteID         int64    `json:"siteId" binding:"required,gt=0"`
	AdultTickets   int      `json:"adultTickets" binding:"gte=0,lte=1000"`
	ChildTickets   int      `json:"childTickets" binding:"gte=0,lte=1000"`
	StudentTickets int      `json:"studentTickets" binding:"gte=0,lte=1000"`
	AddOns         []string `json:"addOns" binding:"omitempty,max=10,dive,required"`
}

func (r QuoteRequest) ToInput() queries.QuoteInput {
	return queries.QuoteInput{
		SiteID:  r.SiteID,
		Tickets: booking.TicketCounts{Adult: r.AdultTickets, Child: r.ChildTickets, Student: r.StudentTickets},
		AddOns:  r.AddOns,
	}
}

type ListBookingsRequest struct {
	Email string `form:"email" binding:"required"`
}
