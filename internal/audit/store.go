package audit

import "context"

// Store persists audit events. Implementations must be safe for concurrent
// use; the worker and tests may append while handlers list.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByApplication(ctx context.Context, applicationID string) ([]Event, error)
}
