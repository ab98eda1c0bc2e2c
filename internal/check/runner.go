package check

import (
	"context"

	"golang.org/x/sync/errgroup"

	"precheck/internal/domain"
	dErrors "precheck/pkg/domain-errors"
)

// Runner executes every registered check against one entity set. All checks
// always run: no short-circuiting, no dependency between results. Output
// order equals registration order, which keeps serialization deterministic.
type Runner struct {
	registry *Registry
	parallel bool
}

// NewRunner builds a runner over the given registry. Sequential execution
// is the default; parallel mode fans checks out over an errgroup, which is
// safe because checks are pure, and still yields results in registration
// order because each check writes to its own slot.
func NewRunner(registry *Registry, parallel bool) *Runner {
	return &Runner{registry: registry, parallel: parallel}
}

// Run executes the full registry. A check that needs applicant data when
// none was ingested fails the request up front; a check returning an error
// aborts the run with no substitute result.
func (r *Runner) Run(ctx context.Context, app domain.Application, applicant *domain.Applicant) ([]domain.CheckResult, error) {
	checks := r.registry.checks

	for _, c := range checks {
		if c.NeedsApplicant && applicant == nil {
			return nil, dErrors.Validation("information.applicant", "is required by check "+c.Name)
		}
	}

	if r.parallel {
		return r.runParallel(ctx, checks, app, applicant)
	}

	results := make([]domain.CheckResult, 0, len(checks))
	for _, c := range checks {
		result, err := c.Run(ctx, app, applicant)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *Runner) runParallel(ctx context.Context, checks []Check, app domain.Application, applicant *domain.Applicant) ([]domain.CheckResult, error) {
	results := make([]domain.CheckResult, len(checks))

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range checks {
		g.Go(func() error {
			result, err := c.Run(ctx, app, applicant)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
