package handler

import (
	dErrors "precheck/pkg/domain-errors"
)

// CheckRequest is the HTTP request body for POST /applications/check. The
// sub-documents stay generic: the ingestion layer owns field-level coercion
// and validation, the handler only establishes the envelope shape. Unknown
// top-level fields are dropped by decoding, which keeps old servers
// compatible with newer clients.
type CheckRequest struct {
	Application map[string]any `json:"application"`
	Information map[string]any `json:"information"`
}

// Validate implements httputil.Validatable.
func (r *CheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Application == nil {
		return dErrors.Validation("application", "is required")
	}
	return nil
}

// Payload rebuilds the generic structure consumed by ingestion.
func (r *CheckRequest) Payload() map[string]any {
	payload := map[string]any{"application": r.Application}
	if r.Information != nil {
		payload["information"] = r.Information
	}
	return payload
}
