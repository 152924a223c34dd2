package queries

import (
	"context"

	"tickit/internal/domain/booking"
)

type QuoteInput struct {
	SiteID  int64
	Tickets booking.TicketCounts
	AddOns  []string
}

type PricingQueries interface {
	Catalog(ctx context.Context) *PricingView
	Quote(ctx context.Context, in QuoteInput) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	sites SiteReadStore
	calc  *booking.DefaultPriceCalculator
}

func NewPricingQueries(sites SiteReadStore, calc *booking.DefaultPriceCalculator) PricingQueries {
	return &pricingQueriesImpl{sites: sites, calc: calc}
}

func (q *pricingQueriesImpl) Catalog(_ context.Context) *PricingView {
	addOns := q.calc.AddOns.All()
	av := make([]AddOnView, 0, len(addOns))
	for _, a := range addOns {
		av = append(av, AddOnView{ID: a.ID, Name: a.Name, Description: a.Description, Price: a.Price})
	}
	return &PricingView{
		ChildRate:   q.calc.Rates.ChildRate,
		StudentRate: q.calc.Rates.StudentRate,
		ServiceFee:  q.calc.Rates.ServiceFee,
		AddOns:      av,
	}
}

// Quote prices a prospective booking against the site's current base price.
func (q *pricingQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*QuoteView, error) {
	sv, err := NewSiteQueries(q.sites).GetByID(ctx, in.SiteID)
	if err != nil {
		return nil, err
	}

	quote := q.calc.Quote(sv.Price, in.Tickets, in.AddOns)
	lines := make([]QuoteLineView, 0, len(quote.Lines))
	for _, l := range quote.Lines {
		lines = append(lines, QuoteLineView{
			Kind:      string(l.Kind),
			Code:      l.Code,
			Label:     l.Label,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Amount:    l.Amount,
		})
	}
	return &QuoteView{SiteID: in.SiteID, Lines: lines, Total: quote.Total}, nil
}
