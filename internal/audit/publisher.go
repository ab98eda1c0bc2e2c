package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Publisher hands events to the background worker through a buffered
// channel. Emission never blocks the request path; when the buffer is full
// the event is dropped and logged.
type Publisher struct {
	inbox     chan Event
	logger    *slog.Logger
	closeOnce sync.Once
}

// NewPublisher builds a publisher with the given buffer size.
func NewPublisher(buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Inbox exposes the event channel for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}

// Close seals the inbox so the worker can drain the remaining events and
// exit. Call only once no more Emits can happen, i.e. after the HTTP server
// has stopped accepting requests.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() { close(p.inbox) })
}

// Emit queues an event, stamping ID and timestamp when absent.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case p.inbox <- event:
	default:
		if p.logger != nil {
			p.logger.WarnContext(ctx, "audit buffer full, event dropped",
				"action", event.Action,
				"application_id", event.ApplicationID,
			)
		}
	}
}
