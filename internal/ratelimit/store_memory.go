package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// MemoryLimiter keeps one token bucket per key in process memory. Used when
// redis is not configured and as the fallback when redis is unreachable.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rps     rate.Limit
	burst   int
}

// NewMemoryLimiter allows rps sustained requests per key with the given burst.
func NewMemoryLimiter(rps float64, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*rate.Limiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = rate.NewLimiter(l.rps, l.burst)
		l.buckets[key] = bucket
	}
	l.mu.Unlock()

	return bucket.Allow(), nil
}
