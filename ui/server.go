package ui

import (
	"html/template"
	"log"
	"net/http"

	"hrdash/app"

	"github.com/gin-gonic/gin"
)

// Server is the interactive dashboard: HTML page plus JSON API on gin
type Server struct {
	router    *gin.Engine
	service   *app.DashboardService
	templates *template.Template
}

// NewServer creates a web server around a loaded dashboard service
func NewServer(service *app.DashboardService) (*Server, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    gin.New(),
		service:   service,
		templates: templates,
	}
	s.setupMiddleware()
	s.setupRoutes()

	log.Printf("[Server] Initialized with %d employees from %s", service.Table().Len(), service.Table().Source)
	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(metricsExporter()))

	api := s.router.Group("/api")
	{
		api.GET("/options", s.handleOptions)
		api.GET("/dashboard", s.handleDashboard)
	}
}

// Handler exposes the router for tests and custom listeners
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server on addr
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
