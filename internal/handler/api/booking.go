package api

import (
	"net/http"
	"strconv"

	reqdto "tickit/internal/handler/dto/request"
	resdto "tickit/internal/handler/dto/response"
	"tickit/internal/handler/httperr"
	"tickit/internal/pkg/errs"
	"tickit/internal/usecase/commands"
	"tickit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book tickets for a time slot. The submitted total must match server pricing.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithValidation(c, reqdto.BindError(err), "Invalid booking data")
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingValidation):
			httperr.AbortWithValidation(c, err, "Invalid booking data")
		case errs.Is(err, commands.ErrSiteNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Site not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create booking", nil)
		}
		return
	}

	c.Header("Location", "/api/bookings/"+strconv.FormatInt(result.Booking.ID, 10))
	c.JSON(http.StatusCreated, resdto.FromBookingView(result.Booking))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking ID")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings by email
// @Description Bookings made with the given email, oldest first
// @Tags bookings
// @Produce json
// @Param email query string true "Customer email"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) ListByEmail(c *gin.Context) {
	var req reqdto.ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithValidation(c, reqdto.BindError(err), "Email is required")
		return
	}
	views, err := h.q.ListByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errs.Is(err, queries.ErrEmailRequired) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email is required", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
