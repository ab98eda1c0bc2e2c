package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"precheck/pkg/platform/sentinel"
)

// RedisLimiter counts requests per key in fixed windows shared across
// replicas. The window index is part of the redis key, so each window gets a
// fresh counter and a denied client regains access when the next window
// starts. One INCR round trip per request.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRedisLimiter allows limit requests per key per window.
func NewRedisLimiter(client *redis.Client, limit int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowIndex := time.Now().UnixNano() / int64(l.window)
	redisKey := fmt.Sprintf("precheck:ratelimit:%s:%d", key, windowIndex)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, redisKey)
	// NX: the TTL is set once when the counter is created, never refreshed,
	// so the key cannot outlive its window by more than one window length.
	pipe.ExpireNX(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("ratelimit incr: %w: %w", sentinel.ErrUnavailable, err)
	}

	return count.Val() <= l.limit, nil
}
