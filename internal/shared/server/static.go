package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// registerStatic serves the bundled single-page application: unmatched GET
// routes return the requested asset when it exists, and index.html otherwise
// so client-side routing works on deep links.
func registerStatic(r *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")

	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}

		// URL paths always start with "/", so Clean keeps the result inside dir.
		reqPath := filepath.Clean(c.Request.URL.Path)
		full := filepath.Join(dir, reqPath)
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}
		c.File(index)
	})
}
