package request

import (
	"strconv"

	"tickit/internal/domain/booking"
	"tickit/internal/domain/money"
	"tickit/internal/domain/site"
	"tickit/internal/pkg/errs"
)

type TimeSlotRequest struct {
	Time      string `json:"time" binding:"required,max=100"`
	Price     string `json:"price" binding:"required"`
	Capacity  int    `json:"capacity" binding:"gte=0"`
	Available int    `json:"available" binding:"gte=0"`
}

type CreateSiteRequest struct {
	Name               string            `json:"name" binding:"required,max=200"`
	Location           string            `json:"location" binding:"required,max=200"`
	Description        string            `json:"description" binding:"required"`
	Category           string            `json:"category" binding:"required,oneof=Archaeological Museum Monument 'Ancient Ruins'"`
	Price              string            `json:"price" binding:"required"`
	ImageURL           string            `json:"imageUrl" binding:"required,url"`
	Features           []string          `json:"features" binding:"omitempty,dive,required"`
	AvailableTimeSlots []TimeSlotRequest `json:"availableTimeSlots" binding:"omitempty,dive"`
}

// siteFieldErrors maps constructor failures onto request fields.
var siteFieldErrors = []struct {
	err   error
	field string
}{
	{site.ErrEmptyName, "name"},
	{site.ErrEmptyLocation, "location"},
	{site.ErrEmptyDescription, "description"},
	{site.ErrEmptyImageURL, "imageUrl"},
	{site.ErrInvalidCategory, "category"},
	{money.ErrNegativeAmount, "price"},
	{site.ErrDuplicateSlot, "availableTimeSlots"},
}

func (r CreateSiteRequest) ToDomain() (*site.Site, error) {
	verr := &booking.ValidationError{}

	price, err := money.Parse(r.Price)
	if err != nil {
		verr.Add("price", "Must be a non-negative decimal amount with at most two decimals")
	}

	slots := make([]site.TimeSlot, 0, len(r.AvailableTimeSlots))
	for i, sr := range r.AvailableTimeSlots {
		slotPrice, perr := money.Parse(sr.Price)
		if perr != nil {
			verr.Add(slotField(i, "price"), "Must be a non-negative decimal amount with at most two decimals")
			continue
		}
		ts, serr := site.NewTimeSlot(sr.Time, slotPrice, sr.Capacity, sr.Available)
		if serr != nil {
			verr.Add(slotField(i, slotErrorField(serr)), serr.Error())
			continue
		}
		slots = append(slots, ts)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	s, err := site.NewSite(r.Name, r.Location, r.Description, site.Category(r.Category), price, r.ImageURL, r.Features, slots)
	if err != nil {
		for _, m := range siteFieldErrors {
			if errs.Is(err, m.err) {
				verr.Add(m.field, err.Error())
				return nil, verr
			}
		}
		return nil, err
	}
	return s, nil
}

func slotField(i int, name string) string {
	return "availableTimeSlots[" + strconv.Itoa(i) + "]." + name
}

func slotErrorField(err error) string {
	switch {
	case errs.Is(err, site.ErrEmptySlotLabel):
		return "time"
	case errs.Is(err, site.ErrInvalidCapacity):
		return "capacity"
	case errs.Is(err, money.ErrNegativeAmount):
		return "price"
	default:
		return "available"
	}
}

type SearchSitesRequest struct {
	Query        string  `form:"q" binding:"omitempty,max=200"`
	Category     string  `form:"category"`
	MinPrice     string  `form:"minPrice"`
	MaxPrice     string  `form:"maxPrice"`
	MinRating    float64 `form:"minRating" binding:"gte=0,lte=5"`
	Availability string  `form:"availability" binding:"omitempty,oneof=all available soldout"`
	Sort         string  `form:"sort" binding:"omitempty,oneof=name price-low price-high rating availability"`
}

func (r SearchSitesRequest) ToCriteria() (site.SearchCriteria, error) {
	verr := &booking.ValidationError{}

	parseBound := func(field, raw string) *money.Money {
		if raw == "" {
			return nil
		}
		m, err := money.Parse(raw)
		if err != nil {
			verr.Add(field, "Must be a non-negative decimal amount")
			return nil
		}
		return &m
	}
	minPrice := parseBound("minPrice", r.MinPrice)
	maxPrice := parseBound("maxPrice", r.MaxPrice)

	avail, err := site.NewAvailabilityFilter(r.Availability)
	if err != nil {
		verr.Add("availability", err.Error())
	}
	sort, err := site.NewSortKey(r.Sort)
	if err != nil {
		verr.Add("sort", err.Error())
	}
	if err := verr.OrNil(); err != nil {
		return site.SearchCriteria{}, err
	}

	return site.SearchCriteria{
		Query:        r.Query,
		Category:     r.Category,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		MinRating:    r.MinRating,
		Availability: avail,
		Sort:         sort,
	}, nil
}
