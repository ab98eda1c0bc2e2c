package check

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precheck/internal/domain"
	dErrors "precheck/pkg/domain-errors"
	"precheck/pkg/requestcontext"
)

func noopCheck(name string) Check {
	return Check{
		Name: name,
		Run: func(ctx context.Context, app domain.Application, _ *domain.Applicant) (domain.CheckResult, error) {
			return domain.NewCheckResult(name, domain.OutcomePass, requestcontext.Now(ctx))
		},
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("preserves registration order", func(t *testing.T) {
		reg, err := NewRegistry(noopCheck("a"), noopCheck("b"), noopCheck("c"))
		require.NoError(t, err)

		var names []string
		for _, c := range reg.Checks() {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"a", "b", "c"}, names)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := NewRegistry(noopCheck("a"), noopCheck("a"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeContract))
	})

	t.Run("rejects unnamed checks", func(t *testing.T) {
		_, err := NewRegistry(noopCheck(""))
		require.Error(t, err)
	})

	t.Run("rejects nil run functions", func(t *testing.T) {
		_, err := NewRegistry(Check{Name: "a"})
		require.Error(t, err)
	})
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	require.Equal(t, 2, reg.Len())

	checks := reg.Checks()
	assert.Equal(t, LabelApplicationNotExpired, checks[0].Name)
	assert.Equal(t, LabelApplicantIs18Plus, checks[1].Name)
	assert.True(t, checks[1].NeedsApplicant)
}
