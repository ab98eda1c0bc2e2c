package ratelimit

import (
	"log/slog"
	"net/http"

	dErrors "precheck/pkg/domain-errors"
	"precheck/pkg/platform/httputil"
	"precheck/pkg/requestcontext"
)

// Middleware enforces the per-IP limit. primary is consulted first; when it
// errors (redis down, network blip) the request is judged by fallback so the
// endpoint keeps serving with a local limit instead of surfacing
// infrastructure failures to clients.
func Middleware(primary, fallback Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := requestcontext.ClientIP(ctx)
			if key == "" {
				key = r.RemoteAddr
			}

			allowed, err := primary.Allow(ctx, key)
			if err != nil {
				if logger != nil {
					logger.WarnContext(ctx, "rate limit store failed, using fallback",
						"request_id", requestcontext.RequestID(ctx),
						"error", err,
					)
				}
				allowed, err = fallback.Allow(ctx, key)
				if err != nil {
					// Both limiters down: fail open rather than 429 healthy
					// clients on an infrastructure fault.
					if logger != nil {
						logger.WarnContext(ctx, "fallback rate limiter failed, allowing request",
							"request_id", requestcontext.RequestID(ctx),
							"error", err,
						)
					}
					allowed = true
				}
			}

			if !allowed {
				httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "request rate exceeded, retry later"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
