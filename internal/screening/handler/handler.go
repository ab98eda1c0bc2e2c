package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"precheck/pkg/platform/httputil"
	"precheck/pkg/requestcontext"
)

// Service defines the interface for screening operations.
type Service interface {
	Screen(ctx context.Context, payload map[string]any) (map[string]any, error)
}

// Handler wires the check endpoint to the screening service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a screening handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts screening endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/applications/check", h.HandleCheck)
}

// HandleCheck handles POST /applications/check requests.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Screen(ctx, req.Payload())
	if err != nil {
		h.logger.ErrorContext(ctx, "screening failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "application screened",
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, result)
}
