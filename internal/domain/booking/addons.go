package booking

import "tickit/internal/domain/money"

const (
	AddOnAudioGuide   = "audio-guide"
	AddOnVRExperience = "vr-experience"
)

type AddOn struct {
	ID          string
	Name        string
	Description string
	Price       money.Money
}

// AddOnCatalog is the fixed list of optional extras, in display order.
type AddOnCatalog struct {
	items []AddOn
	byID  map[string]AddOn
}

func NewAddOnCatalog(items ...AddOn) *AddOnCatalog {
	c := &AddOnCatalog{
		items: make([]AddOn, 0, len(items)),
		byID:  make(map[string]AddOn, len(items)),
	}
	for _, a := range items {
		if _, dup := c.byID[a.ID]; dup {
			continue
		}
		c.items = append(c.items, a)
		c.byID[a.ID] = a
	}
	return c
}

func DefaultAddOnCatalog() *AddOnCatalog {
	return NewAddOnCatalog(
		AddOn{
			ID:          AddOnAudioGuide,
			Name:        "Audio Guide",
			Description: "Available in 8 languages",
			Price:       money.FromCents(800),
		},
		AddOn{
			ID:          AddOnVRExperience,
			Name:        "Virtual Reality Experience",
			Description: "Immersive historical recreation",
			Price:       money.FromCents(1500),
		},
	)
}

func (c *AddOnCatalog) Lookup(id string) (AddOn, bool) {
	a, ok := c.byID[id]
	return a, ok
}

func (c *AddOnCatalog) All() []AddOn {
	out := make([]AddOn, len(c.items))
	copy(out, c.items)
	return out
}

// normalizeAddOns drops blanks and repeats, keeping first-seen order.
func normalizeAddOns(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
