package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/freegoat/admin-dashboard/internal/handlers"
)

// NotFoundHandler serves unmatched requests. API paths get the uniform 404
// envelope; non-API GETs fall through to the static dashboard assets under
// webRoot, with the index document at the root path. Content-type detection
// is left to net/http.
func NotFoundHandler(webRoot string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api/") || path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": handlers.MsgEndpointNotFound,
			})
			return
		}

		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}

		file := staticFilePath(webRoot, path)
		if file == "" {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(file)
	}
}

// staticFilePath resolves a request path to a file under webRoot, or ""
// when no servable file exists. Paths escaping the web root are rejected.
func staticFilePath(webRoot, requestPath string) string {
	if requestPath == "/" || requestPath == "" {
		requestPath = "/index.html"
	}

	clean := filepath.Clean("/" + strings.TrimPrefix(requestPath, "/"))
	file := filepath.Join(webRoot, clean)

	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return ""
	}
	return file
}
