package queries

import (
	"time"

	"tickit/internal/domain/booking"
	"tickit/internal/domain/money"
	"tickit/internal/domain/site"
)

type TimeSlotView struct {
	Time      string
	Price     money.Money
	Capacity  int
	Available int
}

// SiteView is the read shape of a catalog entry.
type SiteView struct {
	ID                 int64
	Name               string
	Location           string
	Description        string
	Category           string
	Price              money.Money
	Rating             float64
	ImageURL           string
	Features           []string
	AvailableTimeSlots []TimeSlotView
	IsActive           bool
}

type BookingView struct {
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
	TotalAmount    money.Money
	Status         string
	CreatedAt      time.Time
}

type AddOnView struct {
	ID          string
	Name        string
	Description string
	Price       money.Money
}

type PricingView struct {
	ChildRate   money.Money
	StudentRate money.Money
	ServiceFee  money.Money
	AddOns      []AddOnView
}

type QuoteLineView struct {
	Kind      string
	Code      string
	Label     string
	Quantity  int
	UnitPrice money.Money
	Amount    money.Money
}

type QuoteView struct {
	SiteID int64
	Lines  []QuoteLineView
	Total  money.Money
}

func ToSiteView(s *site.Site) *SiteView {
	slots := s.TimeSlots()
	sv := make([]TimeSlotView, 0, len(slots))
	for _, ts := range slots {
		sv = append(sv, TimeSlotView{
			Time:      ts.Label(),
			Price:     ts.Price(),
			Capacity:  ts.Capacity(),
			Available: ts.Available(),
		})
	}
	return &SiteView{
		ID:                 s.ID(),
		Name:               s.Name(),
		Location:           s.Location(),
		Description:        s.Description(),
		Category:           s.Category().String(),
		Price:              s.Price(),
		Rating:             s.Rating(),
		ImageURL:           s.ImageURL(),
		Features:           s.Features(),
		AvailableTimeSlots: sv,
		IsActive:           s.IsActive(),
	}
}

func ToSiteViews(sites []*site.Site) []*SiteView {
	out := make([]*SiteView, 0, len(sites))
	for _, s := range sites {
		out = append(out, ToSiteView(s))
	}
	return out
}

func ToBookingView(b *booking.Booking) *BookingView {
	t := b.Tickets()
	return &BookingView{
		ID:             b.ID(),
		SiteID:         b.SiteID(),
		CustomerName:   b.CustomerName(),
		CustomerEmail:  b.CustomerEmail(),
		CustomerPhone:  b.CustomerPhone(),
		VisitDate:      b.VisitDate(),
		TimeSlot:       b.TimeSlot(),
		AdultTickets:   t.Adult,
		ChildTickets:   t.Child,
		StudentTickets: t.Student,
		AddOns:         b.AddOns(),
		TotalAmount:    b.TotalAmount(),
		Status:         b.Status().String(),
		CreatedAt:      b.CreatedAt(),
	}
}

func ToBookingViews(bookings []*booking.Booking) []*BookingView {
	out := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingView(b))
	}
	return out
}
