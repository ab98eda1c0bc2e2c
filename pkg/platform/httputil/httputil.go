// Package httputil centralizes JSON encoding/decoding and the error envelope
// so every handler speaks the same dialect.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "precheck/pkg/domain-errors"
	"precheck/pkg/platform/sentinel"
)

// Validatable is implemented by request types that validate and prepare
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON encodes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorEnvelope is the wire shape of every error response.
type errorEnvelope struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Field            string `json:"field,omitempty"`
}

// WriteError maps a coded error onto the HTTP error envelope. Internal and
// contract errors omit the description so implementation details never leak.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	if code == dErrors.CodeInternal && errors.Is(err, sentinel.ErrUnavailable) {
		code = dErrors.CodeUnavailable
	}

	env := errorEnvelope{Error: string(code)}
	if code != dErrors.CodeInternal && code != dErrors.CodeContract {
		var de *dErrors.Error
		if errors.As(err, &de) {
			env.ErrorDescription = de.Description
			env.Field = de.Field
		}
	}

	WriteJSON(w, statusFor(code), env)
}

func statusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeValidation:
		return http.StatusUnprocessableEntity
	case dErrors.CodeRateLimited:
		return http.StatusTooManyRequests
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DecodeAndPrepare decodes the request body into T, runs its Validate hook,
// and writes the error envelope on failure. Returns false when the caller
// should stop processing.
func DecodeAndPrepare[T any, P interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (P, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "request body decode failed",
				"request_id", requestID,
				"error", err,
			)
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "request body must be valid JSON"))
		return nil, false
	}

	p := P(&req)
	if err := p.Validate(); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "request validation failed",
				"request_id", requestID,
				"error", err,
			)
		}
		WriteError(w, err)
		return nil, false
	}

	return p, true
}
