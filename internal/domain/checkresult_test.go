package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "precheck/pkg/domain-errors"
)

func TestNewCheckResult(t *testing.T) {
	ranAt := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("accepts pass and fail", func(t *testing.T) {
		for _, outcome := range []Outcome{OutcomePass, OutcomeFail} {
			result, err := NewCheckResult("application_not_expired", outcome, ranAt)
			require.NoError(t, err)
			assert.Equal(t, outcome, result.Outcome)
			assert.Equal(t, ranAt, result.RanAt)
		}
	})

	t.Run("out-of-enum outcome is a contract violation", func(t *testing.T) {
		// Construction must fail hard, never proceed with an invalid value.
		_, err := NewCheckResult("application_not_expired", Outcome("maybe"), ranAt)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeContract))
	})

	t.Run("empty label is a contract violation", func(t *testing.T) {
		_, err := NewCheckResult("", OutcomePass, ranAt)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeContract))
	})

	t.Run("zero ran_at defaults to now", func(t *testing.T) {
		before := time.Now()
		result, err := NewCheckResult("applicant_is_18_plus", OutcomePass, time.Time{})
		require.NoError(t, err)
		assert.False(t, result.RanAt.Before(before))
		assert.False(t, result.RanAt.After(time.Now()))
	})
}

func TestOutcomeWhen(t *testing.T) {
	assert.Equal(t, OutcomePass, OutcomeWhen(true))
	assert.Equal(t, OutcomeFail, OutcomeWhen(false))
}
