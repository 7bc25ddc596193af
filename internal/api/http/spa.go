package http

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SPAHandler serves the built client. Existing files are served as-is and any
// other GET falls back to index.html so client-side routes resolve.
type SPAHandler struct {
	dir   string
	index string
}

// NewSPAHandler fails when dir has no index.html, since the client must be
// built before the server runs in production.
func NewSPAHandler(dir string) (*SPAHandler, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve static dir: %w", err)
	}
	index := filepath.Join(abs, "index.html")
	if fi, err := os.Stat(index); err != nil || fi.IsDir() {
		return nil, fmt.Errorf("could not find the build directory: %s, make sure to build the client first", abs)
	}
	return &SPAHandler{dir: abs, index: index}, nil
}

// Serve is meant for gin's NoRoute.
func (h *SPAHandler) Serve(c *gin.Context) {
	NotFound(c, func(c *gin.Context) {
		clean := path.Clean("/" + c.Request.URL.Path)
		full := filepath.Join(h.dir, filepath.FromSlash(clean))
		if fi, err := os.Stat(full); err == nil && !fi.IsDir() {
			c.File(full)
			return
		}
		c.File(h.index)
	})
}

// NotFound answers unmatched API paths and non-GET requests with JSON 404 and
// hands everything else to fallback. A nil fallback means JSON 404 for all.
func NotFound(c *gin.Context, fallback gin.HandlerFunc) {
	p := c.Request.URL.Path
	isAPI := p == "/api" || strings.HasPrefix(p, "/api/")
	isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead
	if fallback == nil || isAPI || !isRead {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	fallback(c)
}
