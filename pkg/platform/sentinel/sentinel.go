package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and infrastructure layers
// return these (optionally wrapped) so callers can translate them into domain
// errors.
//
// These represent factual states about resources, not validation failures.
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	// ErrUnavailable marks a service or resource as temporarily unreachable.
	ErrUnavailable = errors.New("unavailable")
)
