package ui

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures recovery, access logging and static files
func (s *Server) setupMiddleware() error {
	s.router.Use(gin.Recovery())
	s.router.Use(s.accessLog())

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to create static filesystem: %w", err)
	}
	s.router.StaticFS("/static", http.FS(staticFS))
	return nil
}

// accessLog writes one line per request through the application logger
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		line := "%s %s -> %d (%s)"
		args := []interface{}{c.Request.Method, c.Request.URL.RequestURI(), status, time.Since(start)}
		switch {
		case status >= http.StatusInternalServerError:
			s.logger.Error(line, args...)
		case status >= http.StatusBadRequest:
			s.logger.Warn(line, args...)
		default:
			s.logger.Info(line, args...)
		}
	}
}
