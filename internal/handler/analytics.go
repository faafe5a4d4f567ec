package handler

import (
	"errors"
	"net/http"

	"curtail/internal/analytics"
	"curtail/internal/registry"
	"curtail/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves per-link rollups to the owner's dashboard
type AnalyticsHandler struct {
	registry   registry.RegistryInterface
	aggregator analytics.AggregatorInterface
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(reg registry.RegistryInterface, agg analytics.AggregatorInterface) *AnalyticsHandler {
	return &AnalyticsHandler{registry: reg, aggregator: agg}
}

// Get handles GET /api/v1/links/:code/analytics
// @Summary Get analytics for a link
// @Description Returns click rollups by device, browser, OS, country and day
// @Tags analytics
// @Produce json
// @Param code path string true "Short code"
// @Success 200 {object} Response{data=model.Rollup}
// @Router /api/v1/links/{code}/analytics [get]
func (h *AnalyticsHandler) Get(c *gin.Context) {
	code, ok := h.authorize(c)
	if !ok {
		return
	}

	rollup, err := h.aggregator.Rollup(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get analytics",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: rollup})
}

// Rebuild handles POST /api/v1/links/:code/analytics/rebuild
// @Summary Rebuild analytics counters
// @Description Recomputes the rollup counters from the click event log
// @Tags analytics
// @Produce json
// @Param code path string true "Short code"
// @Success 200 {object} Response{data=model.Rollup}
// @Router /api/v1/links/{code}/analytics/rebuild [post]
func (h *AnalyticsHandler) Rebuild(c *gin.Context) {
	code, ok := h.authorize(c)
	if !ok {
		return
	}

	rollup, err := h.aggregator.Rebuild(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to rebuild analytics",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: rollup})
}

// authorize checks the link exists and belongs to the requester
func (h *AnalyticsHandler) authorize(c *gin.Context) (string, bool) {
	code := c.Param("code")
	requesterID := c.GetString(middleware.OwnerIDKey)

	link, err := h.registry.Lookup(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
		} else {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Code:    http.StatusServiceUnavailable,
				Message: "Service temporarily unavailable",
			})
		}
		return "", false
	}

	if link.OwnerID != requesterID {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Not the link owner",
		})
		return "", false
	}

	return code, true
}
