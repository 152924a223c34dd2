package response

import (
	"tickit/internal/usecase/queries"
)

type TimeSlotResponse struct {
	Time      string `json:"time"`
	Price     string `json:"price"`
	Capacity  int    `json:"capacity"`
	Available int    `json:"available"`
}

type SiteResponse struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	Location           string             `json:"location"`
	Description        string             `json:"description"`
	Category           string             `json:"category"`
	Price              string             `json:"price"`
	Rating             float64            `json:"rating"`
	ImageURL           string             `json:"imageUrl"`
	Features           []string           `json:"features"`
	AvailableTimeSlots []TimeSlotResponse `json:"availableTimeSlots" copier:"-"`
	IsActive           bool               `json:"isActive"`
}

func FromSiteView(v *queries.SiteView) *SiteResponse {
	res := &SiteResponse{}
	copyInto(res, v)
	if res.Features == nil {
		res.Features = []string{}
	}
	res.AvailableTimeSlots = make([]TimeSlotResponse, 0, len(v.AvailableTimeSlots))
	for _, ts := range v.AvailableTimeSlots {
		res.AvailableTimeSlots = append(res.AvailableTimeSlots, TimeSlotResponse{
			Time:      ts.Time,
			Price:     ts.Price.String(),
			Capacity:  ts.Capacity,
			Available: ts.Available,
		})
	}
	return res
}

func FromSiteViews(vs []*queries.SiteView) []*SiteResponse {
	res := make([]*SiteResponse, len(vs))
	for i, v := range vs {
		res[i] = FromSiteView(v)
	}
	return res
}
