package site

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"tickit/internal/domain/money"
)

var (
	ErrInvalidAvailabilityFilter = errors.New("invalid availability filter")
	ErrInvalidSortKey            = errors.New("invalid sort key")
	ErrInvalidPriceRange         = errors.New("minimum price exceeds maximum price")
)

type AvailabilityFilter string

const (
	AvailabilityAll       AvailabilityFilter = "all"
	AvailabilityAvailable AvailabilityFilter = "available"
	AvailabilitySoldOut   AvailabilityFilter = "soldout"
)

func NewAvailabilityFilter(s string) (AvailabilityFilter, error) {
	switch f := AvailabilityFilter(s); f {
	case "":
		return AvailabilityAll, nil
	case AvailabilityAll, AvailabilityAvailable, AvailabilitySoldOut:
		return f, nil
	default:
		return "", ErrInvalidAvailabilityFilter
	}
}

type SortKey string

const (
	SortByName         SortKey = "name"
	SortByPriceLow     SortKey = "price-low"
	SortByPriceHigh    SortKey = "price-high"
	SortByRating       SortKey = "rating"
	SortByAvailability SortKey = "availability"
)

func NewSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "":
		return SortByName, nil
	case SortByName, SortByPriceLow, SortByPriceHigh, SortByRating, SortByAvailability:
		return k, nil
	default:
		return "", ErrInvalidSortKey
	}
}

// anyCategory values match every category in a search; the search page sends "All".
var anyCategory = map[string]struct{}{"": {}, "All": {}, "All Sites": {}}

func IsAnyCategory(c string) bool {
	_, ok := anyCategory[c]
	return ok
}

type SearchCriteria struct {
	Query        string
	Category     string
	MinPrice     *money.Money
	MaxPrice     *money.Money
	MinRating    float64
	Availability AvailabilityFilter
	Sort         SortKey
}

func (c SearchCriteria) Validate() error {
	if c.MinPrice != nil && c.MaxPrice != nil && c.MinPrice.Cents() > c.MaxPrice.Cents() {
		return ErrInvalidPriceRange
	}
	if c.MinRating < 0 || c.MinRating > MaxRating {
		return ErrInvalidRating
	}
	if _, err := NewAvailabilityFilter(string(c.Availability)); err != nil {
		return err
	}
	if _, err := NewSortKey(string(c.Sort)); err != nil {
		return err
	}
	return nil
}

// Search filters active sites and returns them ordered by the criteria's sort key.
// The input slice is not modified; ties keep input order.
func Search(sites []*Site, c SearchCriteria) []*Site {
	q := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]*Site, 0, len(sites))
	for _, s := range sites {
		if s.IsActive() && c.matches(s, q) {
			out = append(out, s)
		}
	}

	slices.SortStableFunc(out, compareBy(c.Sort))
	return out
}

func (c SearchCriteria) matches(s *Site, q string) bool {
	if q != "" &&
		!strings.Contains(strings.ToLower(s.name), q) &&
		!strings.Contains(strings.ToLower(s.location), q) &&
		!strings.Contains(strings.ToLower(s.description), q) {
		return false
	}
	if !IsAnyCategory(c.Category) && string(s.category) != c.Category {
		return false
	}
	if c.MinPrice != nil && s.price.Cents() < c.MinPrice.Cents() {
		return false
	}
	if c.MaxPrice != nil && s.price.Cents() > c.MaxPrice.Cents() {
		return false
	}
	if s.rating < c.MinRating {
		return false
	}
	switch c.Availability {
	case AvailabilityAvailable:
		return s.HasAvailability()
	case AvailabilitySoldOut:
		return !s.HasAvailability()
	}
	return true
}

func compareBy(key SortKey) func(a, b *Site) int {
	switch key {
	case SortByPriceLow:
		return func(a, b *Site) int { return cmp.Compare(a.price.Cents(), b.price.Cents()) }
	case SortByPriceHigh:
		return func(a, b *Site) int { return cmp.Compare(b.price.Cents(), a.price.Cents()) }
	case SortByRating:
		return func(a, b *Site) int { return cmp.Compare(b.rating, a.rating) }
	case SortByAvailability:
		return func(a, b *Site) int { return b.TotalAvailable() - a.TotalAvailable() }
	default:
		return func(a, b *Site) int {
			return strings.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
		}
	}
}
