//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tickit/internal/domain/booking"
	"tickit/internal/domain/money"
	"tickit/internal/handler/api"
	resdto "tickit/internal/handler/dto/response"
	"tickit/internal/usecase/queries"
	"tickit/tests/common/httptest"
	queriesmock "tickit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPricingQueries
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	h := api.NewPricingHandler(s.mockQueries)

	s.router.GET("/api/pricing", h.Catalog)
	s.router.POST("/api/bookings/quote", h.Quote)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) TestCatalog() {
	s.mockQueries.EXPECT().Catalog(gomock.Any()).Return(&queries.PricingView{
		ChildRate:   money.MustParse("25"),
		StudentRate: money.MustParse("35"),
		ServiceFee:  money.MustParse("5"),
		AddOns: []queries.AddOnView{
			{ID: booking.AddOnAudioGuide, Name: "Audio Guide", Price: money.MustParse("8")},
			{ID: booking.AddOnVRExperience, Name: "VR Experience", Price: money.MustParse("15")},
		},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pricing", nil)

	var body resdto.PricingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("5.00", body.ServiceFee)
	s.Require().Len(body.AddOns, 2)
	s.Equal("15.00", body.AddOns[1].Price)
	s.Require().Len(body.TicketTypes, 3)
	s.Equal("adult", body.TicketTypes[0].ID)
}

func (s *PricingHandlerTestSuite) TestQuote() {
	url := "/api/bookings/quote"

	s.Run("success: passes counts and add-ons to the query", func() {
		want := queries.QuoteInput{
			SiteID:  1,
			Tickets: booking.TicketCounts{Adult: 2, Child: 1},
			AddOns:  []string{booking.AddOnVRExperience},
		}
		s.mockQueries.EXPECT().Quote(gomock.Any(), want).Return(&queries.QuoteView{
			SiteID: 1,
			Total:  money.MustParse("155"),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"siteId":       1,
			"adultTickets": 2,
			"childTickets": 1,
			"addOns":       []string{booking.AddOnVRExperience},
		})

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("155.00", body.Total)
		s.NotNil(body.Lines)
	})

	s.Run("error: 400 on negative count", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"siteId":       1,
			"childTickets": -1,
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid quote request")
		httptest.AssertFieldErrors(s.T(), rec, "childTickets")
	})

	s.Run("error: 400 on a count too large to price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"siteId":       1,
			"adultTickets": 3_000_000_000_000_000,
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid quote request")
		httptest.AssertFieldErrors(s.T(), rec, "adultTickets")
	})

	s.Run("error: 404 on unknown site", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, queries.ErrSiteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"siteId": 404})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Site not found")
	})
}
