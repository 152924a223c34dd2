package response

import (
	"time"

	"tickit/internal/usecase/queries"
)

type BookingResponse struct {
	ID             int64     `json:"id"`
	SiteID         int64     `json:"siteId"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	CustomerPhone  string    `json:"customerPhone"`
	VisitDate      string    `json:"visitDate"`
	TimeSlot       string    `json:"timeSlot"`
	AdultTickets   int       `json:"adultTickets"`
	ChildTickets   int       `json:"childTickets"`
	StudentTickets int       `json:"studentTickets"`
	AddOns         []string  `json:"addOns"`
	TotalAmount    string    `json:"totalAmount"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	copyInto(res, v)
	if res.AddOns == nil {
		res.AddOns = []string{}
	}
	return res
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}
