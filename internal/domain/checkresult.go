package domain

import (
	"time"

	dErrors "precheck/pkg/domain-errors"
)

// Outcome enumerates the possible results of a single check.
type Outcome string

const (
	OutcomePass Outcome = "pass"
	OutcomeFail Outcome = "fail"
)

// Valid reports whether the outcome is one of the enumerated values.
func (o Outcome) Valid() bool {
	return o == OutcomePass || o == OutcomeFail
}

// OutcomeWhen maps a boolean condition onto the pass/fail enumeration.
func OutcomeWhen(pass bool) Outcome {
	if pass {
		return OutcomePass
	}
	return OutcomeFail
}

// CheckResult is the outcome, label, and timestamp of one check execution.
type CheckResult struct {
	// Label identifies which check produced the result. Unique within a
	// single run, not globally.
	Label string

	// Outcome is exactly "pass" or "fail".
	Outcome Outcome

	// RanAt is the instant the check executed.
	RanAt time.Time
}

// NewCheckResult validates and builds a CheckResult. An out-of-enum outcome
// is a hard contract violation: construction fails, no result with an
// invalid value ever exists. A zero RanAt defaults to the current time.
func NewCheckResult(label string, outcome Outcome, ranAt time.Time) (CheckResult, error) {
	if label == "" {
		return CheckResult{}, dErrors.New(dErrors.CodeContract, "check result requires a label")
	}
	if !outcome.Valid() {
		return CheckResult{}, dErrors.Newf(dErrors.CodeContract, "check %s produced invalid outcome %q", label, outcome)
	}
	if ranAt.IsZero() {
		ranAt = time.Now()
	}
	return CheckResult{Label: label, Outcome: outcome, RanAt: ranAt}, nil
}
