//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"tickit/internal/domain/site"
	"tickit/internal/handler/api"
	resdto "tickit/internal/handler/dto/response"
	"tickit/internal/pkg/errs"
	"tickit/internal/usecase/commands"
	"tickit/internal/usecase/queries"
	"tickit/tests/common/builder"
	"tickit/tests/common/httptest"
	"tickit/tests/common/testutil"
	commandsmock "tickit/tests/mock/commands"
	queriesmock "tickit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SiteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSiteCommands
	mockQueries  *queriesmock.MockSiteQueries
	handler      *api.SiteHandler
}

func (s *SiteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSiteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSiteQueries(s.mockCtrl)
	s.handler = api.NewSiteHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/sites", s.handler.List)
	s.router.POST("/api/sites", s.handler.Create)
	s.router.GET("/api/sites/search", s.handler.Search)
	s.router.GET("/api/sites/:id", s.handler.Get)
}

func (s *SiteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSiteHandlerSuite(t *testing.T) {
	suite.Run(t, new(SiteHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *SiteHandlerTestSuite) TestList() {
	s.Run("success: passes the category through", func() {
		views := []*queries.SiteView{builder.NewSiteBuilder().BuildView()}
		s.mockQueries.EXPECT().List(gomock.Any(), "Museum").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites?category=Museum", nil)

		var body []resdto.SiteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Chichen Itza", body[0].Name)
		s.Equal("45.00", body[0].Price)
		s.Require().Len(body[0].AvailableTimeSlots, 2)
		s.Equal("9:00 AM - 11:00 AM", body[0].AvailableTimeSlots[0].Time)
		s.Equal(85, body[0].AvailableTimeSlots[0].Available)
	})

	s.Run("success: no category lists everything", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "").Return([]*queries.SiteView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch sites")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *SiteHandlerTestSuite) TestGet() {
	s.Run("success: returns the site", func() {
		view := builder.NewSiteBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites/1", nil)

		var body resdto.SiteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.ID)
		s.True(body.IsActive)
		s.Equal([]string{"Audio Guide Available", "Guided Tours"}, body.Features)
	})

	s.Run("error: 400 on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites/one", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid site ID")
	})

	s.Run("error: 404 when absent", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, queries.ErrSiteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites/99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Site not found")
	})
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *SiteHandlerTestSuite) TestSearch() {
	s.Run("success: builds criteria from the query string", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, c site.SearchCriteria) ([]*queries.SiteView, error) {
				s.Equal("petra", c.Query)
				s.Equal(site.SortByPriceLow, c.Sort)
				s.Equal(site.AvailabilityAvailable, c.Availability)
				s.Require().NotNil(c.MaxPrice)
				s.Equal("40.00", c.MaxPrice.String())
				s.Nil(c.MinPrice)
				return []*queries.SiteView{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/sites/search?q=petra&maxPrice=40&availability=available&sort=price-low", nil)

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 on bad enum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites/search?sort=random", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid search")
		httptest.AssertFieldErrors(s.T(), rec, "sort")
	})

	s.Run("error: 400 on bad price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites/search?minPrice=cheap", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid search")
		httptest.AssertFieldErrors(s.T(), rec, "minPrice")
	})

	s.Run("error: 400 on rating out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites/search?minRating=6", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid search")
		httptest.AssertFieldErrors(s.T(), rec, "minRating")
	})

	s.Run("error: 400 when the usecase rejects the range", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(site.ErrInvalidPriceRange, queries.ErrInvalidSearch)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites/search?minPrice=50&maxPrice=10", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid search")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SiteHandlerTestSuite) TestCreate() {
	url := "/api/sites"
	reqBody := builder.NewSiteBuilder().BuildCreateRequestDTO()
	view := builder.NewSiteBuilder().With(func(b *builder.SiteBuilder) { b.ID = 7; b.Rating = 0 }).BuildView()

	cases := []struct {
		name        string
		mutate      func(m map[string]any)
		expectField string
	}{
		{name: "missing name", mutate: testutil.Field("name", nil), expectField: "name"},
		{name: "unknown category", mutate: testutil.Field("category", "Castle"), expectField: "category"},
		{name: "image url not a url", mutate: testutil.Field("imageUrl", "chichen.jpg"), expectField: "imageUrl"},
		{name: "missing price", mutate: testutil.Field("price", nil), expectField: "price"},
	}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateSite(gomock.Any(), reqBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.SiteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(7), body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/sites/7"})
	})

	for _, tc := range cases {
		s.Run("error: 400 "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid site data")
			httptest.AssertFieldErrors(s.T(), rec, tc.expectField)
		})
	}

	s.Run("error: 400 on domain validation", func() {
		s.mockCommands.EXPECT().CreateSite(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("duplicate slot"), commands.ErrSiteValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid site data")
	})
}
