//go:build unit

package seed_test

import (
	"testing"

	"tickit/internal/infra/seed"

	"github.com/stretchr/testify/assert"
)

func TestSites(t *testing.T) {
	sites := seed.Sites()
	assert.Len(t, sites, 6)

	for _, s := range sites {
		assert.Zero(t, s.ID(), s.Name())
		assert.True(t, s.IsActive(), s.Name())
		assert.True(t, s.Category().IsValid(), s.Name())
		for _, ts := range s.TimeSlots() {
			assert.LessOrEqual(t, ts.Available(), ts.Capacity(), "%s %s", s.Name(), ts.Label())
		}
	}

	assert.Equal(t, "Chichen Itza", sites[0].Name())
	assert.Equal(t, "45.00", sites[0].Price().String())
	assert.Equal(t, "Pompeii", sites[5].Name())
}
