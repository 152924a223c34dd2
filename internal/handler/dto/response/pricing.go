package response

import (
	"tickit/internal/domain/booking"
	"tickit/internal/usecase/queries"
)

type TicketTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type AddOnResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type PricingResponse struct {
	TicketTypes []TicketTypeResponse `json:"ticketTypes"`
	AddOns      []AddOnResponse      `json:"addOns"`
	ServiceFee  string               `json:"serviceFee"`
}

// Adult tickets are priced per site, so the catalog carries a placeholder instead of an amount.
const siteBasePrice = "site base price"

func FromPricingView(v *queries.PricingView) *PricingResponse {
	res := &PricingResponse{
		TicketTypes: []TicketTypeResponse{
			{ID: string(booking.TicketAdult), Name: "Adult", Description: "Ages 18+", Price: siteBasePrice},
			{ID: string(booking.TicketChild), Name: "Child", Description: "Ages 5-17", Price: v.ChildRate.String()},
			{ID: string(booking.TicketStudent), Name: "Student", Description: "With valid student ID", Price: v.StudentRate.String()},
		},
		ServiceFee: v.ServiceFee.String(),
	}
	res.AddOns = make([]AddOnResponse, 0, len(v.AddOns))
	for _, a := range v.AddOns {
		var r AddOnResponse
		copyInto(&r, &a)
		res.AddOns = append(res.AddOns, r)
	}
	return res
}

type QuoteLineResponse struct {
	Kind      string `json:"kind"`
	Code      string `json:"code"`
	Label     string `json:"label"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Amount    string `json:"amount"`
}

type QuoteResponse struct {
	SiteID int64               `json:"siteId"`
	Lines  []QuoteLineResponse `json:"lines" copier:"-"`
	Total  string              `json:"total"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	res := &QuoteResponse{}
	copyInto(res, v)
	res.Lines = make([]QuoteLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		var r QuoteLineResponse
		copyInto(&r, &l)
		res.Lines = append(res.Lines, r)
	}
	return res
}
