package handler

import (
	"errors"
	"fmt"
	"net/http"

	"curtail/internal/model"
	"curtail/internal/registry"
	"curtail/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles link creation and dashboard operations
type LinkHandler struct {
	registry registry.RegistryInterface
	baseURL  string
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(reg registry.RegistryInterface, baseURL string) *LinkHandler {
	return &LinkHandler{registry: reg, baseURL: baseURL}
}

// Create handles POST /api/v1/links
// @Summary Create a short link
// @Description Creates a short link for the authenticated owner, with an optional custom alias
// @Tags links
// @Accept json
// @Produce json
// @Param request body model.CreateLinkRequest true "Create request"
// @Success 200 {object} Response{data=model.CreateLinkResponse}
// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	ownerID := c.GetString(middleware.OwnerIDKey)
	link, err := h.registry.Create(c.Request.Context(), ownerID, req.DestinationURL, req.Alias)
	if err != nil {
		status := createErrorStatus(err)
		c.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data: &model.CreateLinkResponse{
			ShortURL:       fmt.Sprintf("%s/%s", h.baseURL, link.Code),
			Code:           link.Code,
			DestinationURL: link.DestinationURL,
			IsCustomAlias:  link.IsCustomAlias,
			QRCodeRef:      link.QRCodeRef,
			CreatedAt:      link.CreatedAt,
		},
	})
}

// List handles GET /api/v1/links
// @Summary List the authenticated owner's links
// @Description Returns all links created by the authenticated owner, newest first
// @Tags links
// @Produce json
// @Success 200 {object} Response{data=[]model.Link}
// @Router /api/v1/links [get]
func (h *LinkHandler) List(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)

	links, err := h.registry.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to list links",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: links})
}

// Delete handles DELETE /api/v1/links/:code
// @Summary Delete a link
// @Description Deletes a link owned by the requester; click history is retained
// @Tags links
// @Param code path string true "Short code"
// @Success 200 {object} Response
// @Router /api/v1/links/{code} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	code := c.Param("code")
	requesterID := c.GetString(middleware.OwnerIDKey)

	if err := h.registry.Delete(c.Request.Context(), code, requesterID); err != nil {
		var status int
		switch {
		case errors.Is(err, registry.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, registry.ErrForbidden):
			status = http.StatusForbidden
		default:
			status = http.StatusInternalServerError
		}
		c.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success"})
}

func createErrorStatus(err error) int {
	switch {
	case errors.Is(err, registry.ErrInvalidDestination), errors.Is(err, registry.ErrInvalidAlias):
		return http.StatusBadRequest
	case errors.Is(err, registry.ErrAliasTaken):
		return http.StatusConflict
	case errors.Is(err, registry.ErrGenerationExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
