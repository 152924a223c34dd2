package booking

import (
	"fmt"
	"strings"
	"time"

	"tickit/internal/domain/money"
)

// Draft is a booking that has not been stored: no id, status or creation time.
type Draft struct {
	SiteID        int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	VisitDate     string
	TimeSlot      string
	Tickets       TicketCounts
	AddOns        []string
	TotalAmount   money.Money
}

type Booking struct {
	id            int64
	siteID        int64
	customerName  string
	customerEmail string
	customerPhone string
	visitDate     string
	timeSlot      string
	tickets       TicketCounts
	addOns        []string
	totalAmount   money.Money
	status        Status
	createdAt     time.Time
}

func validateCount(verr *ValidationError, field string, n int) {
	switch {
	case n < 0:
		verr.Add(field, "Must not be negative")
	case n > MaxTicketsPerType:
		verr.Add(field, fmt.Sprintf("Must not exceed %d", MaxTicketsPerType))
	}
}

// NewBooking validates a draft and returns a confirmed booking without identity.
// All field problems are reported together.
func NewBooking(d Draft) (*Booking, error) {
	verr := &ValidationError{}

	if d.SiteID <= 0 {
		verr.Add("siteId", "Site id must be a positive integer")
	}
	Contact{Name: d.CustomerName, Email: d.CustomerEmail}.validateInto(verr)
	if _, err := ParseVisitDate(d.VisitDate); err != nil {
		verr.Add("visitDate", "Visit date must be in YYYY-MM-DD format")
	}
	if strings.TrimSpace(d.TimeSlot) == "" {
		verr.Add("timeSlot", "Time slot is required")
	}
	validateCount(verr, "adultTickets", d.Tickets.Adult)
	validateCount(verr, "childTickets", d.Tickets.Child)
	validateCount(verr, "studentTickets", d.Tickets.Student)
	if d.TotalAmount.IsNegative() {
		verr.Add("totalAmount", "Must not be negative")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &Booking{
		siteID:        d.SiteID,
		customerName:  strings.TrimSpace(d.CustomerName),
		customerEmail: strings.TrimSpace(d.CustomerEmail),
		customerPhone: strings.TrimSpace(d.CustomerPhone),
		visitDate:     strings.TrimSpace(d.VisitDate),
		timeSlot:      strings.TrimSpace(d.TimeSlot),
		tickets:       d.Tickets,
		addOns:        cloneStrings(d.AddOns),
		totalAmount:   d.TotalAmount,
		status:        StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id, siteID int64,
	customerName, customerEmail, customerPhone string,
	visitDate, timeSlot string,
	tickets TicketCounts,
	addOns []string,
	totalAmount money.Money,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		siteID:        siteID,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		visitDate:     visitDate,
		timeSlot:      timeSlot,
		tickets:       tickets,
		addOns:        cloneStrings(addOns),
		totalAmount:   totalAmount,
		status:        status,
		createdAt:     createdAt,
	}
}

func (b *Booking) ID() int64                { return b.id }
func (b *Booking) SiteID() int64            { return b.siteID }
func (b *Booking) CustomerName() string     { return b.customerName }
func (b *Booking) CustomerEmail() string    { return b.customerEmail }
func (b *Booking) CustomerPhone() string    { return b.customerPhone }
func (b *Booking) VisitDate() string        { return b.visitDate }
func (b *Booking) TimeSlot() string         { return b.timeSlot }
func (b *Booking) Tickets() TicketCounts    { return b.tickets }
func (b *Booking) AddOns() []string         { return cloneStrings(b.addOns) }
func (b *Booking) TotalAmount() money.Money { return b.totalAmount }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }

// WithIdentity returns a copy carrying the store-assigned id and creation time.
func (b *Booking) WithIdentity(id int64, createdAt time.Time) *Booking {
	cp := b.Clone()
	cp.id = id
	cp.createdAt = createdAt
	if cp.status == "" {
		cp.status = StatusConfirmed
	}
	return cp
}

func (b *Booking) WithTotal(total money.Money) *Booking {
	cp := b.Clone()
	cp.totalAmount = total
	return cp
}

func (b *Booking) Clone() *Booking {
	cp := *b
	cp.addOns = cloneStrings(b.addOns)
	return &cp
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
