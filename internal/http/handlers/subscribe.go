package handlers

import (
	"net/http"

	"travelapi/internal/services"

	"github.com/gin-gonic/gin"
)

const msgSubscribed = "Subscription successful! Please check your email for confirmation."

// Subscribe handles POST /api/subscribe.
func (h *Handler) Subscribe(c *gin.Context) {
	var in services.SubscribeInput
	if !BindJSONOrError(c, &in) {
		return
	}
	if _, err := h.subscriptions(c).Subscribe(c.Request.Context(), in); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgSubscribed})
}
