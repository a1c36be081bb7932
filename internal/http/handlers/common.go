package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const msgInvalidInput = "Invalid input"

// BindJSONOrError ensures the body is present and decodes as a JSON object.
// An empty body and a literal null are both treated as missing.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "invalid_input", msgInvalidInput)
		return false
	}
	raw, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", msgInvalidInput)
		return false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		respondError(c, http.StatusBadRequest, "invalid_input", msgInvalidInput)
		return false
	}
	if err := binding.JSON.BindBody(raw, dst); err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusBadRequest, "invalid_input", msgInvalidInput)
		return false
	}
	return true
}
