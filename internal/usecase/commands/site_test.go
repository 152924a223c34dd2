//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tickit/internal/domain/booking"
	"tickit/internal/domain/site"
	"tickit/internal/infra"
	"tickit/internal/pkg/errs"
	"tickit/internal/usecase/commands"
	"tickit/tests/common/builder"
	commandsmock "tickit/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateSite(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a new active site", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := commandsmock.NewMockCatalogRepository(ctrl)
		uc := commands.NewSiteCommands(catalog)

		catalog.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *site.Site) (*site.Site, error) {
				return s.WithID(7), nil
			})

		view, err := uc.CreateSite(ctx, builder.NewSiteBuilder().BuildCreateRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, int64(7), view.ID)
		assert.Zero(t, view.Rating)
		assert.True(t, view.IsActive)
		assert.Len(t, view.AvailableTimeSlots, 2)
	})

	t.Run("invalid slot is reported by field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := commands.NewSiteCommands(commandsmock.NewMockCatalogRepository(ctrl))

		req := builder.NewSiteBuilder().WithSlots(
			builder.SlotSpec{Label: "9:00 AM", Price: "10", Capacity: 5, Available: 9},
		).BuildCreateRequestDTO()

		_, err := uc.CreateSite(ctx, req)
		require.True(t, errs.Is(err, commands.ErrSiteValidation))
		var verr *booking.ValidationError
		require.True(t, errs.As(err, &verr))
		assert.True(t, verr.Has("availableTimeSlots[0].available"))
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := commandsmock.NewMockCatalogRepository(ctrl)
		uc := commands.NewSiteCommands(catalog)

		catalog.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("insert failed", assert.AnError))

		_, err := uc.CreateSite(ctx, builder.NewSiteBuilder().BuildCreateRequestDTO())
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}
