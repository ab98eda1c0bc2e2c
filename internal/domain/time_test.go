package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "precheck/pkg/domain-errors"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "rfc3339 with zone",
			value: "2020-01-01T00:00:00Z",
			want:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with fractional seconds",
			value: "2020-01-01T12:30:45.5Z",
			want:  time.Date(2020, 1, 1, 12, 30, 45, 500000000, time.UTC),
		},
		{
			name:  "date-time without zone",
			value: "2020-01-01T00:00:00",
			want:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			value: "2005-06-01",
			want:  time.Date(2005, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimestamp("f", tc.value)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}

	t.Run("rejects malformed string", func(t *testing.T) {
		_, err := ParseTimestamp("application.applied_at", "not-a-date")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, "application.applied_at", dErrors.FieldOf(err))
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseTimestamp("information.applicant.dob", "")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestParseOptionalTimestamp(t *testing.T) {
	t.Run("empty string means absent", func(t *testing.T) {
		got, err := ParseOptionalTimestamp("application.expiry_deadline", "")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("present value is parsed", func(t *testing.T) {
		got, err := ParseOptionalTimestamp("application.expiry_deadline", "2019-01-01")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 2019, got.Year())
	})

	t.Run("malformed value still fails", func(t *testing.T) {
		_, err := ParseOptionalTimestamp("application.expiry_deadline", "soon")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

// FuzzParseTimestamp checks the parser never panics and only ever returns a
// validation error for rejected input.
func FuzzParseTimestamp(f *testing.F) {
	f.Add("2020-01-01T00:00:00Z")
	f.Add("2005-06-01")
	f.Add("not-a-date")
	f.Add("")

	f.Fuzz(func(t *testing.T, value string) {
		ts, err := ParseTimestamp("f", value)
		if err != nil {
			if !dErrors.HasCode(err, dErrors.CodeValidation) {
				t.Fatalf("non-validation error for %q: %v", value, err)
			}
			return
		}
		if ts.IsZero() {
			t.Fatalf("accepted %q but returned zero time", value)
		}
	})
}
