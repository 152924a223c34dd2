package queries

import (
	"context"

	"tickit/internal/domain/site"
	"tickit/internal/infra"
	"tickit/internal/pkg/errs"
)

var (
	ErrSiteNotFound  = errs.New("site not found")
	ErrInvalidSearch = errs.New("invalid search criteria")
)

type SiteReadStore interface {
	ListActive(ctx context.Context) ([]*site.Site, error)
	ListActiveByCategory(ctx context.Context, category string) ([]*site.Site, error)
	FindByID(ctx context.Context, id int64) (*site.Site, error)
}

type SiteQueries interface {
	List(ctx context.Context, category string) ([]*SiteView, error)
	GetByID(ctx context.Context, id int64) (*SiteView, error)
	Search(ctx context.Context, criteria site.SearchCriteria) ([]*SiteView, error)
}

type siteQueriesImpl struct {
	store SiteReadStore
}

func NewSiteQueries(store SiteReadStore) SiteQueries {
	return &siteQueriesImpl{store: store}
}

// List returns active sites. An empty category means no filter; anything else is matched
// exactly, so "All" is just a category no site has.
func (q *siteQueriesImpl) List(ctx context.Context, category string) ([]*SiteView, error) {
	var (
		sites []*site.Site
		err   error
	)
	if category == "" {
		sites, err = q.store.ListActive(ctx)
	} else {
		sites, err = q.store.ListActiveByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}
	return ToSiteViews(sites), nil
}

func (q *siteQueriesImpl) GetByID(ctx context.Context, id int64) (*SiteView, error) {
	s, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, err
	}
	return ToSiteView(s), nil
}

func (q *siteQueriesImpl) Search(ctx context.Context, criteria site.SearchCriteria) ([]*SiteView, error) {
	if err := criteria.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidSearch)
	}
	sites, err := q.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return ToSiteViews(site.Search(sites, criteria)), nil
}
