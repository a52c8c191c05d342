package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"frauddash/app"
	"frauddash/internal"

	"github.com/gin-gonic/gin"
)

// Server serves the dashboard page, its chart images and the JSON API
type Server struct {
	router    *gin.Engine
	service   *app.DashboardService
	api       http.Handler
	templates *template.Template
	intro     template.HTML
	logger    *internal.Logger
}

// Options configures a Server
type Options struct {
	// GinMode is passed to gin.SetMode; empty keeps gin's current mode
	GinMode string
	// API is mounted under /api when set
	API http.Handler
}

// NewServer parses the embedded templates and registers every route
func NewServer(service *app.DashboardService, logger *internal.Logger, opts Options) (*Server, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}

	s := &Server{
		router:  gin.New(),
		service: service,
		api:     opts.API,
		intro:   renderMarkdown(introMarkdown),
		logger:  logger,
	}

	templatesFS, err := fs.Sub(embeddedFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to create templates filesystem: %w", err)
	}
	s.templates, err = template.New("").Funcs(funcMap()).ParseFS(templatesFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	if err := s.setupMiddleware(); err != nil {
		return nil, err
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/charts/density.svg", s.handleDensityChart)
	s.router.GET("/charts/categorical.svg", s.handleCategoricalChart)

	if s.api != nil {
		s.router.Any("/api/*path", gin.WrapH(http.StripPrefix("/api", s.api)))
	}
}

// Handler returns the root http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}
