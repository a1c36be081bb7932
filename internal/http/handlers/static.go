package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticImage serves files below ImagesDir. The request path is cleaned as a
// rooted path first, so ".." segments cannot climb out of the directory.
func (h *Handler) StaticImage(c *gin.Context) {
	rel := strings.TrimPrefix(path.Clean("/"+c.Param("filepath")), "/")
	if rel == "" || strings.ContainsRune(rel, 0) {
		respondError(c, http.StatusNotFound, "not_found", "file not found")
		return
	}

	full := filepath.Join(h.ImagesDir, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		respondError(c, http.StatusNotFound, "not_found", "file not found")
		return
	}
	c.File(full)
}
