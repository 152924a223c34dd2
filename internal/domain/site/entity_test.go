//go:build unit

package site_test

import (
	"testing"

	"tickit/internal/domain/money"
	"tickit/internal/domain/site"
	"tickit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SiteBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewSiteBuilder().With(tc.mutate).BuildNew()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSite(t *testing.T) {
	t.Run("new site starts active with rating zero", func(t *testing.T) {
		s, err := builder.NewSiteBuilder().BuildNew()
		require.NoError(t, err)

		assert.Zero(t, s.ID())
		assert.Zero(t, s.Rating())
		assert.True(t, s.IsActive())
		assert.Equal(t, "45.00", s.Price().String())
		assert.Len(t, s.TimeSlots(), 2)
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.SiteBuilder) { b.Name = "  " },
				errIs:  site.ErrEmptyName,
			},
			{
				name:   "blank location",
				mutate: func(b *builder.SiteBuilder) { b.Location = "" },
				errIs:  site.ErrEmptyLocation,
			},
			{
				name:   "blank description",
				mutate: func(b *builder.SiteBuilder) { b.Description = "" },
				errIs:  site.ErrEmptyDescription,
			},
			{
				name:   "blank image url",
				mutate: func(b *builder.SiteBuilder) { b.ImageURL = "" },
				errIs:  site.ErrEmptyImageURL,
			},
			{
				name:   "unknown category",
				mutate: func(b *builder.SiteBuilder) { b.Category = "Castle" },
				errIs:  site.ErrInvalidCategory,
			},
			{
				name:   "ancient ruins category",
				mutate: func(b *builder.SiteBuilder) { b.Category = "Ancient Ruins" },
			},
			{
				name:   "no time slots",
				mutate: func(b *builder.SiteBuilder) { b.Slots = nil },
			},
			{
				name: "duplicate slot label",
				mutate: func(b *builder.SiteBuilder) {
					b.Slots = []builder.SlotSpec{
						{Label: "9:00 AM", Price: "10", Capacity: 5, Available: 5},
						{Label: "9:00 AM", Price: "10", Capacity: 5, Available: 1},
					}
				},
				errIs: site.ErrDuplicateSlot,
			},
		})
	})

	t.Run("returned collections are copies", func(t *testing.T) {
		s := builder.NewSiteBuilder().BuildDomain()

		features := s.Features()
		features[0] = "changed"
		assert.NotEqual(t, "changed", s.Features()[0])

		clone := s.Clone()
		require.NoError(t, clone.ReserveSeats("9:00 AM - 11:00 AM", 5))
		slot, _ := s.SlotByLabel("9:00 AM - 11:00 AM")
		assert.Equal(t, 85, slot.Available())
	})

	t.Run("availability helpers", func(t *testing.T) {
		s := builder.NewSiteBuilder().BuildDomain()
		assert.True(t, s.HasAvailability())
		assert.Equal(t, 85, s.TotalAvailable())

		soldOut := builder.NewSiteBuilder().WithSlots(
			builder.SlotSpec{Label: "noon", Price: "10", Capacity: 10, Available: 0},
		).BuildDomain()
		assert.False(t, soldOut.HasAvailability())
	})
}

func TestTimeSlot(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		price     money.Money
		capacity  int
		available int
		errIs     error
	}{
		{name: "valid", label: "9:00 AM", capacity: 10, available: 10},
		{name: "sold out is valid", label: "9:00 AM", capacity: 10, available: 0},
		{name: "blank label", label: " ", capacity: 10, available: 1, errIs: site.ErrEmptySlotLabel},
		{name: "negative price", label: "9:00 AM", price: money.FromCents(-1), capacity: 1, errIs: money.ErrNegativeAmount},
		{name: "negative capacity", label: "9:00 AM", capacity: -1, errIs: site.ErrInvalidCapacity},
		{name: "available above capacity", label: "9:00 AM", capacity: 5, available: 6, errIs: site.ErrInvalidAvailability},
		{name: "negative available", label: "9:00 AM", capacity: 5, available: -1, errIs: site.ErrInvalidAvailability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := site.NewTimeSlot(tt.label, tt.price, tt.capacity, tt.available)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("seats required is at least one", func(t *testing.T) {
		assert.Equal(t, 1, site.SeatsRequired(0))
		assert.Equal(t, 1, site.SeatsRequired(-3))
		assert.Equal(t, 4, site.SeatsRequired(4))
	})
}

func TestReserveSeats(t *testing.T) {
	const label = "9:00 AM"

	newSite := func(available int) *site.Site {
		return builder.NewSiteBuilder().WithSlots(
			builder.SlotSpec{Label: label, Price: "45", Capacity: 10, Available: available},
		).BuildDomain()
	}

	t.Run("decrements by ticket count", func(t *testing.T) {
		s := newSite(5)
		require.NoError(t, s.ReserveSeats(label, 3))
		slot, _ := s.SlotByLabel(label)
		assert.Equal(t, 2, slot.Available())
	})

	t.Run("exact fit", func(t *testing.T) {
		s := newSite(3)
		require.NoError(t, s.ReserveSeats(label, 3))
		slot, _ := s.SlotByLabel(label)
		assert.True(t, slot.IsSoldOut())
	})

	t.Run("zero tickets need an open slot but take nothing", func(t *testing.T) {
		s := newSite(1)
		require.NoError(t, s.ReserveSeats(label, 0))
		slot, _ := s.SlotByLabel(label)
		assert.Equal(t, 1, slot.Available())

		require.ErrorIs(t, newSite(0).ReserveSeats(label, 0), site.ErrInsufficientAvailability)
	})

	t.Run("too many tickets leaves slot untouched", func(t *testing.T) {
		s := newSite(2)
		require.ErrorIs(t, s.ReserveSeats(label, 3), site.ErrInsufficientAvailability)
		slot, _ := s.SlotByLabel(label)
		assert.Equal(t, 2, slot.Available())
	})

	t.Run("unknown slot", func(t *testing.T) {
		require.ErrorIs(t, newSite(5).ReserveSeats("midnight", 1), site.ErrSlotNotFound)
		require.ErrorIs(t, newSite(5).ReleaseSeats("midnight", 1), site.ErrSlotNotFound)
	})

	t.Run("release never exceeds capacity", func(t *testing.T) {
		s := newSite(8)
		require.NoError(t, s.ReleaseSeats(label, 5))
		slot, _ := s.SlotByLabel(label)
		assert.Equal(t, 10, slot.Available())
	})
}
