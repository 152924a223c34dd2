package api

import (
	"net/http"

	reqdto "tickit/internal/handler/dto/request"
	resdto "tickit/internal/handler/dto/response"
	"tickit/internal/handler/httperr"
	"tickit/internal/pkg/errs"
	"tickit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Pricing catalog
// @Description Ticket rates, add-ons and the service fee
// @Tags pricing
// @Produce json
// @Success 200 {object} resdto.PricingResponse
// @Router /api/pricing [get]
func (h *PricingHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPricingView(h.q.Catalog(c.Request.Context())))
}

// @Summary Quote booking
// @Description Line-item price breakdown for a prospective booking
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithValidation(c, reqdto.BindError(err), "Invalid quote request")
		return
	}
	view, err := h.q.Quote(c.Request.Context(), req.ToInput())
	if err != nil {
		if errs.Is(err, queries.ErrSiteNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Site not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to quote booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
