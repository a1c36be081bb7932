package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListDestinations handles GET /api/destinations.
func (h *Handler) ListDestinations(c *gin.Context) {
	list, err := h.destinations(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetDestination handles GET /api/destination/:id.
func (h *Handler) GetDestination(c *gin.Context) {
	d, err := h.destinations(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
