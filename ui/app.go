package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"hrdash/app"
)

// App is the headless JSON API over the dashboard service
type App struct {
	router  *chi.Mux
	service *app.DashboardService
	config  Config
}

// Config holds JSON API configuration
type Config struct {
	Port        string
	CORSOrigins []string // allowed browser origins; empty allows any
}

// NewApp creates the JSON API application
func NewApp(service *app.DashboardService, config Config) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
		config:  config,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(RequestIDHandler)
	a.router.Use(cors.New(cors.Options{
		AllowedOrigins: a.config.CORSOrigins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID},
	}).Handler)
	a.router.Use(MetricsHandler)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Handle("/metrics", metricsExporter())

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/options", a.handleOptions)
		r.Get("/dashboard", a.handleDashboard)
	})
}

// Handler exposes the router
func (a *App) Handler() http.Handler {
	return a.router
}

// Start starts the API server
func (a *App) Start() error {
	addr := ":" + a.config.Port
	log.Printf("[App] Starting JSON API on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sel, err := ParseSelection(a.service.DefaultSelection(), r.URL.Query())
	if err != nil {
		log.Printf("[App] %s: %v", RequestIDFrom(r.Context()), err)
		writeJSON(w, http.StatusBadRequest, errorBody(err))
		return
	}
	d := a.service.Render(sel)
	observeRender(d)
	writeJSON(w, http.StatusOK, d)
}

func (a *App) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.service.Options(departmentParam(r.URL.Query())))
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	table := a.service.Table()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"source":    table.Source,
		"employees": table.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[App] Error encoding response: %v", err)
	}
}
