package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps events in process memory. The default sink for local
// runs and tests; production deployments configure the postgres store.
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *MemoryStore) ListByApplication(_ context.Context, applicationID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Event
	for _, e := range s.events {
		if e.ApplicationID == applicationID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Len reports how many events have been appended. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
