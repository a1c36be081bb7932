package handlers

import (
	"net/http"

	"travelapi/internal/http/middleware"
	"travelapi/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck pings the datastore and lists which tables are present.
func (h *Handler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database not connected")
		return
	}
	tables, err := h.health().CheckDB(c.Request.Context())
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "http", "db_check_failed", err.Error())
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dialect": h.Dialect, "tables": tables})
}
