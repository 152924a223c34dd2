package site

import (
	"errors"
	"strings"

	"tickit/internal/domain/money"
)

var (
	ErrEmptyName        = errors.New("site name is required")
	ErrEmptyLocation    = errors.New("site location is required")
	ErrEmptyDescription = errors.New("site description is required")
	ErrEmptyImageURL    = errors.New("site image url is required")
	ErrInvalidRating    = errors.New("rating must be between 0 and 5")
	ErrDuplicateSlot    = errors.New("duplicate time slot label")
)

const MaxRating = 5.0

type Site struct {
	id          int64
	name        string
	location    string
	description string
	category    Category
	price       money.Money
	rating      float64
	imageURL    string
	features    []string
	slots       []TimeSlot
	active      bool
}

// NewSite builds a site that has not been stored yet: no id, rating 0, active.
func NewSite(
	name, location, description string,
	category Category,
	price money.Money,
	imageURL string,
	features []string,
	slots []TimeSlot,
) (*Site, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	description = strings.TrimSpace(description)
	imageURL = strings.TrimSpace(imageURL)

	switch {
	case name == "":
		return nil, ErrEmptyName
	case location == "":
		return nil, ErrEmptyLocation
	case description == "":
		return nil, ErrEmptyDescription
	case imageURL == "":
		return nil, ErrEmptyImageURL
	case !category.IsValid():
		return nil, ErrInvalidCategory
	case price.IsNegative():
		return nil, money.ErrNegativeAmount
	}

	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if _, dup := seen[s.Label()]; dup {
			return nil, ErrDuplicateSlot
		}
		seen[s.Label()] = struct{}{}
	}

	return &Site{
		name:        name,
		location:    location,
		description: description,
		category:    category,
		price:       price,
		imageURL:    imageURL,
		features:    cloneStrings(features),
		slots:       cloneSlots(slots),
		active:      true,
	}, nil
}

func ReconstructSite(
	id int64,
	name, location, description string,
	category Category,
	price money.Money,
	rating float64,
	imageURL string,
	features []string,
	slots []TimeSlot,
	active bool,
) *Site {
	return &Site{
		id:          id,
		name:        name,
		location:    location,
		description: description,
		category:    category,
		price:       price,
		rating:      rating,
		imageURL:    imageURL,
		features:    cloneStrings(features),
		slots:       cloneSlots(slots),
		active:      active,
	}
}

func (s *Site) ID() int64             { return s.id }
func (s *Site) Name() string          { return s.name }
func (s *Site) Location() string      { return s.location }
func (s *Site) Description() string   { return s.description }
func (s *Site) Category() Category    { return s.category }
func (s *Site) Price() money.Money    { return s.price }
func (s *Site) Rating() float64       { return s.rating }
func (s *Site) ImageURL() string      { return s.imageURL }
func (s *Site) IsActive() bool        { return s.active }
func (s *Site) Features() []string    { return cloneStrings(s.features) }
func (s *Site) TimeSlots() []TimeSlot { return cloneSlots(s.slots) }

// WithID returns a copy carrying the identity assigned by a store.
func (s *Site) WithID(id int64) *Site {
	c := s.Clone()
	c.id = id
	return c
}

func (s *Site) Clone() *Site {
	c := *s
	c.features = cloneStrings(s.features)
	c.slots = cloneSlots(s.slots)
	return &c
}

func (s *Site) SlotByLabel(label string) (TimeSlot, bool) {
	for _, ts := range s.slots {
		if ts.label == label {
			return ts, true
		}
	}
	return TimeSlot{}, false
}

func (s *Site) HasAvailability() bool {
	for _, ts := range s.slots {
		if !ts.IsSoldOut() {
			return true
		}
	}
	return false
}

func (s *Site) TotalAvailable() int {
	total := 0
	for _, ts := range s.slots {
		total += ts.available
	}
	return total
}

// ReserveSeats takes n seats from the named slot. It is the only mutation a stored site allows.
func (s *Site) ReserveSeats(label string, n int) error {
	for i := range s.slots {
		if s.slots[i].label != label {
			continue
		}
		if !s.slots[i].CanReserve(n) {
			return ErrInsufficientAvailability
		}
		if n > 0 {
			s.slots[i].available -= n
		}
		return nil
	}
	return ErrSlotNotFound
}

// ReleaseSeats gives n seats back, never exceeding capacity.
func (s *Site) ReleaseSeats(label string, n int) error {
	for i := range s.slots {
		if s.slots[i].label != label {
			continue
		}
		if n > 0 {
			s.slots[i].available = min(s.slots[i].capacity, s.slots[i].available+n)
		}
		return nil
	}
	return ErrSlotNotFound
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneSlots(in []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, len(in))
	copy(out, in)
	return out
}
