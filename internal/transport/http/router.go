// Package httptransport assembles the HTTP surface: middleware chain,
// screening endpoint, health and metrics. It delegates to domain services
// without embedding business logic so transport concerns remain isolated.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"precheck/internal/ratelimit"
	screeninghandler "precheck/internal/screening/handler"
	"precheck/pkg/platform/httputil"
	"precheck/pkg/platform/middleware/metadata"
	"precheck/pkg/platform/middleware/requestid"
	"precheck/pkg/platform/middleware/requesttime"
)

// HealthChecker reports whether one dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps holds everything the router mounts. Limiter pairs and health
// checkers are optional; nil entries are skipped.
type Deps struct {
	Screening *screeninghandler.Handler
	Logger    *slog.Logger

	// Rate limiting; both must be set to enable the middleware.
	Limiter         ratelimit.Limiter
	FallbackLimiter ratelimit.Limiter

	// Health probes by dependency name, e.g. "redis", "postgres".
	Health map[string]HealthChecker
}

// NewRouter wires all public endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(requestid.Middleware)
	r.Use(chimiddleware.RealIP)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", healthHandler(deps.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if deps.Limiter != nil && deps.FallbackLimiter != nil {
			r.Use(ratelimit.Middleware(deps.Limiter, deps.FallbackLimiter, deps.Logger))
		}
		deps.Screening.Register(r)
	})

	return r
}

// healthHandler reports overall and per-dependency health. A failing
// dependency degrades the response to 503 so orchestrators stop routing.
func healthHandler(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		deps := make(map[string]string, len(checks))
		for name, check := range checks {
			if check == nil {
				continue
			}
			if err := check.Health(ctx); err != nil {
				deps[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "up"
		}

		body := map[string]any{"status": "ok"}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		if len(deps) > 0 {
			body["dependencies"] = deps
		}
		httputil.WriteJSON(w, status, body)
	}
}
