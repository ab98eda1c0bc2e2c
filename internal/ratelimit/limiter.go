// Package ratelimit keeps abusive clients from monopolizing the check
// endpoint. Limits are per client IP: a shared redis window when redis is
// configured, an in-process token bucket otherwise. When redis fails at
// runtime the middleware falls back to the in-process limiter instead of
// failing open or closed on every request.
package ratelimit

import "context"

// Limiter decides whether one more request from the given key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
