//go:build unit || e2e

package builder

import (
	"tickit/internal/domain/money"
	domsite "tickit/internal/domain/site"
	reqdto "tickit/internal/handler/dto/request"
	"tickit/internal/usecase/queries"
)

type SlotSpec struct {
	Label     string
	Price     string
	Capacity  int
	Available int
}

type SiteBuilder struct {
	ID          int64
	Name        string
	Location    string
	Description string
	Category    string
	Price       string
	Rating      float64
	ImageURL    string
	Features    []string
	Slots       []SlotSpec
	Active      bool
}

func NewSiteBuilder() *SiteBuilder {
	return &SiteBuilder{
		ID:          1,
		Name:        "Chichen Itza",
		Location:    "Yucatan, Mexico",
		Description: "Ancient Mayan city featuring the iconic El Castillo pyramid.",
		Category:    string(domsite.CategoryArchaeological),
		Price:       "45.00",
		Rating:      4.8,
		ImageURL:    "https://images.example.com/chichen-itza.jpg",
		Features:    []string{"Audio Guide Available", "Guided Tours"},
		Slots: []SlotSpec{
			{Label: "9:00 AM - 11:00 AM", Price: "45.00", Capacity: 100, Available: 85},
			{Label: "4:30 PM - 6:30 PM", Price: "50.00", Capacity: 100, Available: 0},
		},
		Active: true,
	}
}

func (b *SiteBuilder) With(mutate func(*SiteBuilder)) *SiteBuilder {
	mutate(b)
	return b
}

func (b *SiteBuilder) WithSlots(slots ...SlotSpec) *SiteBuilder {
	b.Slots = slots
	return b
}

// BuildNew runs the full constructor, so validation errors surface.
func (b *SiteBuilder) BuildNew() (*domsite.Site, error) {
	slots, err := b.buildSlots()
	if err != nil {
		return nil, err
	}
	price, err := money.Parse(b.Price)
	if err != nil {
		return nil, err
	}
	return domsite.NewSite(b.Name, b.Location, b.Description, domsite.Category(b.Category), price, b.ImageURL, b.Features, slots)
}

// BuildDomain returns a stored site. It panics on bad builder input.
func (b *SiteBuilder) BuildDomain() *domsite.Site {
	slots, err := b.buildSlots()
	if err != nil {
		panic(err)
	}
	return domsite.ReconstructSite(
		b.ID, b.Name, b.Location, b.Description,
		domsite.Category(b.Category), money.MustParse(b.Price), b.Rating,
		b.ImageURL, b.Features, slots, b.Active,
	)
}

func (b *SiteBuilder) buildSlots() ([]domsite.TimeSlot, error) {
	slots := make([]domsite.TimeSlot, 0, len(b.Slots))
	for _, s := range b.Slots {
		price, err := money.Parse(s.Price)
		if err != nil {
			return nil, err
		}
		ts, err := domsite.NewTimeSlot(s.Label, price, s.Capacity, s.Available)
		if err != nil {
			return nil, err
		}
		slots = append(slots, ts)
	}
	return slots, nil
}

func (b *SiteBuilder) BuildView() *queries.SiteView {
	return queries.ToSiteView(b.BuildDomain())
}

func (b *SiteBuilder) BuildCreateRequestDTO() reqdto.CreateSiteRequest {
	slots := make([]reqdto.TimeSlotRequest, 0, len(b.Slots))
	for _, s := range b.Slots {
		slots = append(slots, reqdto.TimeSlotRequest{
			Time:      s.Label,
			Price:     s.Price,
			Capacity:  s.Capacity,
			Available: s.Available,
		})
	}
	return reqdto.CreateSiteRequest{
		Name:               b.Name,
		Location:           b.Location,
		Description:        b.Description,
		Category:           b.Category,
		Price:              b.Price,
		ImageURL:           b.ImageURL,
		Features:           b.Features,
		AvailableTimeSlots: slots,
	}
}
