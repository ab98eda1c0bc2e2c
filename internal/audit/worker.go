package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from the publisher's channel and persists
// them. A failing append is logged and the worker keeps draining so the
// channel never wedges.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run drains the inbox until the context is cancelled or the inbox is
// closed. On close it finishes the buffered events before returning, so a
// graceful shutdown loses nothing that was already queued.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			if err := w.store.Append(ctx, event); err != nil {
				if w.logger != nil {
					w.logger.ErrorContext(ctx, "audit append failed",
						"action", event.Action,
						"application_id", event.ApplicationID,
						"error", err,
					)
				}
			}
		}
	}
}
