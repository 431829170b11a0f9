package reference

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/labrecon/labrecon/internal/platform/auth"
)

// Handler provides read-only REST endpoints over the knowledge base.
type Handler struct {
	registry *Registry
}

// NewHandler creates a new reference handler.
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes registers analyte lookup routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	group := api.Group("/analytes", auth.RequireRole("admin", "physician", "lab_tech"))
	group.GET("", h.SearchAnalytes)
	group.GET("/:key", h.GetAnalyte)
}

func getLimit(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}

// SearchAnalytes handles GET /api/v1/analytes?q=...
func (h *Handler) SearchAnalytes(c echo.Context) error {
	results := h.registry.Search(c.QueryParam("q"), getLimit(c))
	if results == nil {
		results = []*Analyte{}
	}
	return c.JSON(http.StatusOK, results)
}

// GetAnalyte handles GET /api/v1/analytes/:key
func (h *Handler) GetAnalyte(c echo.Context) error {
	a, ok := h.registry.Get(c.Param("key"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "analyte not found")
	}
	return c.JSON(http.StatusOK, a)
}
