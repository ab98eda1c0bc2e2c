// Package check defines the preliminary checks run against an application
// and the runner that executes them. Checks are pure functions: no I/O, no
// blocking, no shared state. The registry is built once at process start and
// never mutated, so concurrent requests read it without synchronization.
package check

import (
	"context"

	"precheck/internal/domain"
	dErrors "precheck/pkg/domain-errors"
)

// Func evaluates one check. Every check receives the full entity set and
// ignores what it does not need, so the runner can pass a uniform argument
// set regardless of which fields a check consumes. The current time comes
// from requestcontext.Now(ctx), never from the wall clock directly.
type Func func(ctx context.Context, app domain.Application, applicant *domain.Applicant) (domain.CheckResult, error)

// Check is one registered preliminary check.
type Check struct {
	// Name is the label stamped onto the check's results. Unique within
	// a registry.
	Name string

	// NeedsApplicant marks checks that cannot run without applicant data.
	NeedsApplicant bool

	// Run evaluates the check.
	Run Func
}

// Registry is an ordered, append-only collection of checks, fixed at
// process start. Registration order is the order checks run in and the
// order their results are rendered.
type Registry struct {
	checks []Check
}

// NewRegistry validates and builds a registry from the given checks.
func NewRegistry(checks ...Check) (*Registry, error) {
	seen := make(map[string]struct{}, len(checks))
	for _, c := range checks {
		if c.Name == "" {
			return nil, dErrors.New(dErrors.CodeContract, "check registered without a name")
		}
		if c.Run == nil {
			return nil, dErrors.Newf(dErrors.CodeContract, "check %s registered without a run function", c.Name)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, dErrors.Newf(dErrors.CodeContract, "check %s registered twice", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return &Registry{checks: append([]Check(nil), checks...)}, nil
}

// Default returns the registry mandated by the product: expiry first, then
// the age gate.
func Default() *Registry {
	reg, err := NewRegistry(ApplicationNotExpired(), ApplicantIs18Plus())
	if err != nil {
		// Both checks are defined in this package; a failure here is a
		// programming error caught by the package tests.
		panic(err)
	}
	return reg
}

// Checks returns the registered checks in registration order. The returned
// slice is a copy; the registry itself stays immutable.
func (r *Registry) Checks() []Check {
	return append([]Check(nil), r.checks...)
}

// Len returns the number of registered checks.
func (r *Registry) Len() int {
	return len(r.checks)
}
