package booking

import (
	"tickit/internal/domain/money"
)

// RateTable holds the fixed prices; adults pay the site's base price.
type RateTable struct {
	ChildRate   money.Money
	StudentRate money.Money
	ServiceFee  money.Money
}

func DefaultRateTable() RateTable {
	return RateTable{
		ChildRate:   money.FromCents(2500),
		StudentRate: money.FromCents(3500),
		ServiceFee:  money.FromCents(500),
	}
}

type LineKind string

const (
	LineTicket     LineKind = "ticket"
	LineAddOn      LineKind = "add-on"
	LineServiceFee LineKind = "service-fee"
)

type QuoteLine struct {
	Kind      LineKind
	Code      string
	Label     string
	Quantity  int
	UnitPrice money.Money
	Amount    money.Money
}

type Quote struct {
	Lines []QuoteLine
	Total money.Money
}

type PriceCalculator interface {
	Quote(basePrice money.Money, tickets TicketCounts, addOns []string) Quote
}

type DefaultPriceCalculator struct {
	Rates  RateTable
	AddOns *AddOnCatalog
}

func NewDefaultPriceCalculator(rates RateTable, addOns *AddOnCatalog) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		Rates:  rates,
		AddOns: addOns,
	}
}

// Quote is pure: the same inputs always give the same lines and total. Ticket lines are
// always present so the summary shows zero rows; add-ons that are unknown to the catalog
// contribute nothing and produce no line. The service fee is charged once.
func (pc *DefaultPriceCalculator) Quote(basePrice money.Money, tickets TicketCounts, addOns []string) Quote {
	tickets = tickets.Clamped()

	lines := []QuoteLine{
		ticketLine(TicketAdult, "Adult tickets", tickets.Adult, basePrice),
		ticketLine(TicketChild, "Child tickets", tickets.Child, pc.Rates.ChildRate),
		ticketLine(TicketStudent, "Student tickets", tickets.Student, pc.Rates.StudentRate),
	}

	for _, id := range normalizeAddOns(addOns) {
		a, ok := pc.AddOns.Lookup(id)
		if !ok {
			continue
		}
		lines = append(lines, QuoteLine{
			Kind:      LineAddOn,
			Code:      a.ID,
			Label:     a.Name,
			Quantity:  1,
			UnitPrice: a.Price,
			Amount:    a.Price,
		})
	}

	lines = append(lines, QuoteLine{
		Kind:      LineServiceFee,
		Code:      "service-fee",
		Label:     "Service fee",
		Quantity:  1,
		UnitPrice: pc.Rates.ServiceFee,
		Amount:    pc.Rates.ServiceFee,
	})

	var total money.Money
	for _, l := range lines {
		total = total.Add(l.Amount)
	}

	return Quote{Lines: lines, Total: total}
}

func (pc *DefaultPriceCalculator) Total(basePrice money.Money, tickets TicketCounts, addOns []string) money.Money {
	return pc.Quote(basePrice, tickets, addOns).Total
}

func ticketLine(t TicketType, label string, qty int, unit money.Money) QuoteLine {
	return QuoteLine{
		Kind:      LineTicket,
		Code:      string(t),
		Label:     label,
		Quantity:  qty,
		UnitPrice: unit,
		Amount:    unit.Mul(qty),
	}
}
