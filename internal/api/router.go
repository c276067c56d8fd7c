package api

import (
	"net/http"

	"github.com/sadewadee/sheet-report/internal/api/handlers"
)

// Router sets up all API routes
type Router struct {
	mux    *http.ServeMux
	report *handlers.ReportHandler
	tabs   *handlers.TabHandler
	health *handlers.HealthHandler
}

// NewRouter creates a new Router
func NewRouter(
	report *handlers.ReportHandler,
	tabs *handlers.TabHandler,
	health *handlers.HealthHandler,
) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		report: report,
		tabs:   tabs,
		health: health,
	}
}

// Setup configures all routes
func (r *Router) Setup(token string) http.Handler {
	// Aggregate report endpoints
	r.mux.HandleFunc("/api/v1/report", r.report.Get)
	r.mux.HandleFunc("/api/v1/report/refresh", r.report.Refresh)
	r.mux.HandleFunc("/api/v1/report/download", r.report.Download)

	// Per-tab detail endpoints
	r.mux.HandleFunc("/api/v1/tabs", r.tabs.List)
	r.mux.HandleFunc("/api/v1/tabs/{name}", r.tabs.Get)

	// Liveness endpoint
	r.mux.HandleFunc("/api/v1/health", r.health.Get)

	// Apply middleware
	return Chain(r.mux,
		Recovery,
		Logger,
		CORS,
		SecurityHeaders,
		Auth(token),
	)
}
