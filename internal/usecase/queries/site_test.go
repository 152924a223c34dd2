//go:build unit

package queries_test

import (
	"context"
	"testing"

	"tickit/internal/domain/booking"
	"tickit/internal/domain/money"
	"tickit/internal/domain/site"
	"tickit/internal/infra"
	"tickit/internal/pkg/errs"
	"tickit/internal/usecase/queries"
	"tickit/tests/common/builder"
	queriesmock "tickit/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSiteQueries(t *testing.T) {
	ctx := context.Background()
	petra := builder.NewSiteBuilder().With(func(b *builder.SiteBuilder) { b.ID, b.Name, b.Price = 2, "Petra", "65.00" }).BuildDomain()
	chichen := builder.NewSiteBuilder().BuildDomain()

	t.Run("list without category returns every active site", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSiteReadStore(ctrl)
		store.EXPECT().ListActive(gomock.Any()).Return([]*site.Site{chichen, petra}, nil)

		views, err := queries.NewSiteQueries(store).List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("list treats All as an exact category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSiteReadStore(ctrl)
		store.EXPECT().ListActiveByCategory(gomock.Any(), "All").Return([]*site.Site{}, nil)

		views, err := queries.NewSiteQueries(store).List(ctx, "All")
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("list by category delegates the filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSiteReadStore(ctrl)
		store.EXPECT().ListActiveByCategory(gomock.Any(), "Museum").Return([]*site.Site{}, nil)

		views, err := queries.NewSiteQueries(store).List(ctx, "Museum")
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("get maps the entity to a view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSiteReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(chichen, nil)

		view, err := queries.NewSiteQueries(store).GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Chichen Itza", view.Name)
		assert.Equal(t, "Archaeological", view.Category)
		assert.Equal(t, "45.00", view.Price.String())
		require.Len(t, view.AvailableTimeSlots, 2)
		assert.Equal(t, 85, view.AvailableTimeSlots[0].Available)
	})

	t.Run("get unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSiteReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, infra.WrapRepoErr("site not found", nil, infra.KindNotFound))

		_, err := queries.NewSiteQueries(store).GetByID(ctx, 99)
		assert.True(t, errs.Is(err, queries.ErrSiteNotFound))
	})

	t.Run("search sorts and filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSiteReadStore(ctrl)
		store.EXPECT().ListActive(gomock.Any()).Return([]*site.Site{chichen, petra}, nil)

		views, err := queries.NewSiteQueries(store).Search(ctx, site.SearchCriteria{Sort: site.SortByPriceHigh})
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Petra", views[0].Name)
	})

	t.Run("search rejects inverted price range before reading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSiteReadStore(ctrl)
		lo, hi := money.MustParse("50"), money.MustParse("10")

		_, err := queries.NewSiteQueries(store).Search(ctx, site.SearchCriteria{MinPrice: &lo, MaxPrice: &hi})
		assert.True(t, errs.Is(err, queries.ErrInvalidSearch))
		assert.True(t, errs.Is(err, site.ErrInvalidPriceRange))
	})
}

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("get by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(builder.NewBookingBuilder().BuildDomain(), nil)

		view, err := queries.NewBookingQueries(store).GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", view.CustomerEmail)
		assert.Equal(t, 2, view.AdultTickets)
		assert.Equal(t, "confirmed", view.Status)
	})

	t.Run("get unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := queries.NewBookingQueries(store).GetByID(ctx, 5)
		assert.True(t, errs.Is(err, queries.ErrBookingNotFound))
	})

	t.Run("list requires an email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, err := queries.NewBookingQueries(store).ListByEmail(ctx, "  ")
		assert.True(t, errs.Is(err, queries.ErrEmailRequired))
	})

	t.Run("list by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		first := builder.NewBookingBuilder().BuildDomain()
		second := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 2 }).BuildDomain()
		store.EXPECT().ListByEmail(gomock.Any(), "ada@example.com").Return([]*booking.Booking{first, second}, nil)

		views, err := queries.NewBookingQueries(store).ListByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, int64(1), views[0].ID)
		assert.Equal(t, int64(2), views[1].ID)
	})
}

func TestPricingQueries(t *testing.T) {
	ctx := context.Background()
	calc := booking.NewDefaultPriceCalculator(booking.DefaultRateTable(), booking.DefaultAddOnCatalog())

	t.Run("catalog lists rates and add-ons", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		view := queries.NewPricingQueries(queriesmock.NewMockSiteReadStore(ctrl), calc).Catalog(ctx)

		assert.Equal(t, "25.00", view.ChildRate.String())
		assert.Equal(t, "35.00", view.StudentRate.String())
		assert.Equal(t, "5.00", view.ServiceFee.String())
		require.Len(t, view.AddOns, 2)
		assert.Equal(t, "audio-guide", view.AddOns[0].ID)
	})

	t.Run("quote uses the site's base price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSiteReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(builder.NewSiteBuilder().BuildDomain(), nil)

		q, err := queries.NewPricingQueries(store, calc).Quote(ctx, queries.QuoteInput{
			SiteID:  1,
			Tickets: booking.TicketCounts{Adult: 2, Child: 1},
			AddOns:  []string{"vr-experience"},
		})
		require.NoError(t, err)
		assert.Equal(t, "135.00", q.Total.String())
		assert.Len(t, q.Lines, 5)
	})

	t.Run("quote for unknown site", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSiteReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(3)).Return(nil, infra.WrapRepoErr("site not found", nil, infra.KindNotFound))

		_, err := queries.NewPricingQueries(store, calc).Quote(ctx, queries.QuoteInput{SiteID: 3})
		assert.True(t, errs.Is(err, queries.ErrSiteNotFound))
	})
}
