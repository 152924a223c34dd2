package commands

import (
	"context"

	reqdto "tickit/internal/handler/dto/request"
	"tickit/internal/pkg/errs"
	"tickit/internal/usecase/queries"
)

var ErrSiteValidation = errs.New("site validation failed")

type SiteCommands interface {
	CreateSite(ctx context.Context, req reqdto.CreateSiteRequest) (*queries.SiteView, error)
}

type siteCommandsImpl struct {
	catalog CatalogRepository
}

func NewSiteCommands(catalog CatalogRepository) SiteCommands {
	return &siteCommandsImpl{catalog: catalog}
}

func (u *siteCommandsImpl) CreateSite(ctx context.Context, req reqdto.CreateSiteRequest) (*queries.SiteView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrSiteValidation)
	}

	stored, err := u.catalog.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return queries.ToSiteView(stored), nil
}
