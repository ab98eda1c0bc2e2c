package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "precheck/pkg/domain-errors"
)

func TestNewApplication(t *testing.T) {
	appliedAt := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := NewApplication("", appliedAt, nil, "")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects zero applied_at", func(t *testing.T) {
		_, err := NewApplication("app-1", time.Time{}, nil, "")
		require.Error(t, err)
		assert.Equal(t, "application.applied_at", dErrors.FieldOf(err))
	})

	t.Run("accepts optional fields absent", func(t *testing.T) {
		app, err := NewApplication("app-1", appliedAt, nil, "")
		require.NoError(t, err)
		assert.Nil(t, app.ExpiryDeadline)
		assert.Empty(t, app.TerminalState)
	})
}

func TestApplicationExpired(t *testing.T) {
	now := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	appliedAt := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	newApp := func(t *testing.T, deadline *time.Time) Application {
		t.Helper()
		app, err := NewApplication("app-1", appliedAt, deadline, "")
		require.NoError(t, err)
		return app
	}

	t.Run("no deadline never expires", func(t *testing.T) {
		assert.False(t, newApp(t, nil).Expired(now))
	})

	t.Run("future deadline is active", func(t *testing.T) {
		future := now.Add(time.Hour)
		assert.False(t, newApp(t, &future).Expired(now))
	})

	t.Run("past deadline is expired", func(t *testing.T) {
		past := now.Add(-time.Hour)
		assert.True(t, newApp(t, &past).Expired(now))
	})

	t.Run("deadline exactly now is expired", func(t *testing.T) {
		// Active only while the deadline is strictly in the future.
		at := now
		assert.True(t, newApp(t, &at).Expired(now))
	})
}

func TestApplicantAgeAtLeast(t *testing.T) {
	t.Run("rejects empty id", func(t *testing.T) {
		_, err := NewApplicant("", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	tests := []struct {
		name string
		dob  string
		at   string
		want bool
	}{
		{"twenty years old", "2000-01-01", "2020-01-01T00:00:00Z", true},
		{"fifteen years old", "2005-06-01", "2020-01-01T00:00:00Z", false},
		{"turns 18 at the exact instant", "2002-01-01", "2020-01-01T00:00:00Z", false},
		{"turned 18 the day before", "2001-12-31", "2020-01-01T00:00:00Z", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dob, err := ParseTimestamp("dob", tc.dob)
			require.NoError(t, err)
			at, err := ParseTimestamp("at", tc.at)
			require.NoError(t, err)

			applicant, err := NewApplicant("applicant-1", dob)
			require.NoError(t, err)
			assert.Equal(t, tc.want, applicant.AgeAtLeast(18, at))
		})
	}
}
