package site

import "errors"

var ErrInvalidCategory = errors.New("invalid site category")

type Category string

const (
	CategoryArchaeological Category = "Archaeological"
	CategoryMuseum         Category = "Museum"
	CategoryMonument       Category = "Monument"
	CategoryAncientRuins   Category = "Ancient Ruins"
)

var categories = []Category{
	CategoryArchaeological,
	CategoryMuseum,
	CategoryMonument,
	CategoryAncientRuins,
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryArchaeological, CategoryMuseum, CategoryMonument, CategoryAncientRuins:
		return true
	default:
		return false
	}
}
