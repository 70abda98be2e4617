package routes

import (
	"net/http"

	"github.com/zatekoja/nursematch/internal/api/handlers"
	"github.com/zatekoja/nursematch/internal/api/middleware"
	"github.com/zatekoja/nursematch/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	matchHandler  *handlers.MatchHandler
	healthHandler *handlers.HealthHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	matchHandler *handlers.MatchHandler,
	healthHandler *handlers.HealthHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		matchHandler:  matchHandler,
		healthHandler: healthHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", r.healthHandler.Health)

	r.mux.HandleFunc("POST /match", r.matchHandler.Match)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set even on error responses
	handler = middleware.CORSMiddleware(handler)

	return handler
}
