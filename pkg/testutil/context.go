package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"precheck/pkg/requestcontext"
)

// ContextWithTime returns a context with a pinned request clock so checks
// against "now" are deterministic.
func ContextWithTime(t *testing.T, iso string) context.Context {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, iso)
	require.NoError(t, err, "bad test timestamp %q", iso)
	return requestcontext.WithTime(context.Background(), ts)
}

// ContextWithRequestID layers a correlation ID onto ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return requestcontext.WithRequestID(ctx, id)
}

// MustParseTime parses an RFC 3339 timestamp, failing the test on error.
func MustParseTime(t *testing.T, iso string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, iso)
	require.NoError(t, err, "bad test timestamp %q", iso)
	return ts
}
