package ui

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/semaphore"

	"leadscope/ports"
	"leadscope/ui/compose"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the dashboard UI application
type App struct {
	router    *chi.Mux
	leads     ports.LeadRepository
	builder   *compose.Builder
	templates *template.Template
	exportSem *semaphore.Weighted
}

// Config holds UI application configuration
type Config struct {
	Port string
	// MaxConcurrentExports bounds simultaneous workbook builds.
	MaxConcurrentExports int64
}

// NewApp creates a new UI application
func NewApp(cfg Config, leads ports.LeadRepository, builder *compose.Builder) (*App, error) {
	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}

	maxExports := cfg.MaxConcurrentExports
	if maxExports < 1 {
		maxExports = 1
	}

	app := &App{
		router:    chi.NewRouter(),
		leads:     leads,
		builder:   builder,
		templates: templates,
		exportSem: semaphore.NewWeighted(maxExports),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)

	// HTMX fragment endpoints
	a.router.Get("/leads/table", a.handleLeadsTable)
	a.router.Get("/leads/{id}/modal", a.handleLeadModal)

	// Export
	a.router.Get("/api/leads/export", a.handleLeadsExport)
}

// Router exposes the chi mux for tests and embedding.
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start(port string) error {
	addr := ":" + port
	log.Printf("Starting Leadscope UI server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// renderTemplate executes a page template
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// isHTMX reports whether the request came from an HTMX swap.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
