package ratelimit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precheck/pkg/requestcontext"
)

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to burst, then denies", func(t *testing.T) {
		limiter := NewMemoryLimiter(0.0001, 2)

		for i := 0; i < 2; i++ {
			allowed, err := limiter.Allow(ctx, "10.0.0.1")
			require.NoError(t, err)
			assert.True(t, allowed, "request %d within burst", i)
		}

		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter := NewMemoryLimiter(0.0001, 1)

		allowed, _ := limiter.Allow(ctx, "10.0.0.1")
		require.True(t, allowed)
		allowed, _ = limiter.Allow(ctx, "10.0.0.1")
		require.False(t, allowed)

		allowed, _ = limiter.Allow(ctx, "10.0.0.2")
		assert.True(t, allowed, "a second client gets its own bucket")
	})
}

type erroringLimiter struct{}

func (erroringLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis gone")
}

func TestMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	newRequest := func(ip string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/applications/check", nil)
		return req.WithContext(requestcontext.WithClientMetadata(req.Context(), ip, "test"))
	}

	t.Run("denies over-limit clients with 429", func(t *testing.T) {
		handler := Middleware(NewMemoryLimiter(0.0001, 1), NewMemoryLimiter(0.0001, 1), logger)(next)

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, newRequest("10.0.0.1"))
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, newRequest("10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})

	t.Run("fails open when both limiters error", func(t *testing.T) {
		handler := Middleware(erroringLimiter{}, erroringLimiter{}, logger)(next)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest("10.0.0.5"))
		assert.Equal(t, http.StatusOK, rr.Code, "infrastructure faults never deny requests")
	})

	t.Run("falls back when the primary store errors", func(t *testing.T) {
		handler := Middleware(erroringLimiter{}, NewMemoryLimiter(0.0001, 1), logger)(next)

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, newRequest("10.0.0.9"))
		assert.Equal(t, http.StatusOK, first.Code, "fallback admits within its budget")

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, newRequest("10.0.0.9"))
		assert.Equal(t, http.StatusTooManyRequests, second.Code, "fallback still enforces a limit")
	})
}
