package handler

import (
	"errors"
	"net/http"

	"curtail/internal/registry"
	"curtail/internal/resolver"

	"github.com/gin-gonic/gin"
)

// RedirectHandler handles short link redirection
type RedirectHandler struct {
	resolver resolver.ResolverInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(res resolver.ResolverInterface) *RedirectHandler {
	return &RedirectHandler{resolver: res}
}

// Redirect handles GET /:code
// @Summary Redirect to the destination URL
// @Description Resolves a short code and redirects; the click is recorded asynchronously
// @Tags redirect
// @Param code path string true "Short code"
// @Success 302
// @Router /{code} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	req := resolver.ResolveRequest{
		Code:      c.Param("code"),
		UserAgent: c.Request.UserAgent(),
		Referer:   c.Request.Header.Get("Referer"),
		ClientIP:  c.ClientIP(),
	}

	destination, err := h.resolver.Resolve(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{
				"code": req.Code,
			})
			return
		}
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Service temporarily unavailable",
		})
		return
	}

	// 302 Redirect
	c.Redirect(http.StatusFound, destination)
}
