// Package requestid bridges chi's request ID middleware into the
// HTTP-independent request context, so services log the same correlation ID
// the transport layer responds with.
package requestid

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"precheck/pkg/requestcontext"
)

// Header carries the correlation ID back to the caller.
const Header = "X-Request-Id"

// Middleware copies the chi-assigned request ID into requestcontext and
// echoes it on the response. Mount after chi's RequestID middleware.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if reqID := chimiddleware.GetReqID(ctx); reqID != "" {
			ctx = requestcontext.WithRequestID(ctx, reqID)
			w.Header().Set(Header, reqID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
