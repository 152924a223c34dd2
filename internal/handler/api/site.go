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

type SiteHandler struct {
	cmds commands.SiteCommands
	q    queries.SiteQueries
}

func NewSiteHandler(cmds commands.SiteCommands, q queries.SiteQueries) *SiteHandler {
	return &SiteHandler{cmds: cmds, q: q}
}

// @Summary List sites
// @Description List active sites, optionally filtered by exact category
// @Tags sites
// @Produce json
// @Param category query string false "Site category"
// @Success 200 {array} resdto.SiteResponse
// @Failure 500 {object} httperr.Response
// @Router /api/sites [get]
func (h *SiteHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch sites", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSiteViews(views))
}

// @Summary Search sites
// @Description Filter and sort active sites
// @Tags sites
// @Produce json
// @Param q query string false "Text matched against name, location and description"
// @Param category query string false "Site category"
// @Param minPrice query string false "Minimum base price"
// @Param maxPrice query string false "Maximum base price"
// @Param minRating query number false "Minimum rating"
// @Param availability query string false "all, available or soldout"
// @Param sort query string false "name, price-low, price-high, rating or availability"
// @Success 200 {array} resdto.SiteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/sites/search [get]
func (h *SiteHandler) Search(c *gin.Context) {
	var req reqdto.SearchSitesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithValidation(c, reqdto.BindError(err), "Invalid search")
		return
	}
	criteria, err := req.ToCriteria()
	if err != nil {
		httperr.AbortWithValidation(c, err, "Invalid search")
		return
	}

	views, err := h.q.Search(c.Request.Context(), criteria)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidSearch) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search sites", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSiteViews(views))
}

// @Summary Get site
// @Description Get a site by ID
// @Tags sites
// @Produce json
// @Param id path int true "Site ID"
// @Success 200 {object} resdto.SiteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sites/{id} [get]
func (h *SiteHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid site ID")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrSiteNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Site not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch site", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSiteView(view))
}

// @Summary Create site
// @Description Add a site to the catalog
// @Tags sites
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSiteRequest true "Site"
// @Success 201 {object} resdto.SiteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/sites [post]
func (h *SiteHandler) Create(c *gin.Context) {
	var req reqdto.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithValidation(c, reqdto.BindError(err), "Invalid site data")
		return
	}
	view, err := h.cmds.CreateSite(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, commands.ErrSiteValidation) {
			httperr.AbortWithValidation(c, err, "Invalid site data")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create site", nil)
		return
	}
	c.Header("Location", "/api/sites/"+strconv.FormatInt(view.ID, 10))
	c.JSON(http.StatusCreated, resdto.FromSiteView(view))
}

// parseID aborts with 400 unless the :id path parameter is a positive integer.
func parseID(c *gin.Context, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.New("id must be positive")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return 0, false
	}
	return id, true
}
