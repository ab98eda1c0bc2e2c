// Package domain holds the typed entities flowing through the check
// pipeline. Entities are immutable value objects: they are built once per
// request by the ingestion layer and never mutated afterwards.
package domain

import (
	"time"

	dErrors "precheck/pkg/domain-errors"
)

// Application is one attempt by a party to obtain a credit product.
type Application struct {
	// ID is an opaque identifier, never empty.
	ID string

	// AppliedAt is the submission instant and the reference clock for age
	// calculations.
	AppliedAt time.Time

	// ExpiryDeadline, when set, bounds how long the application stays
	// active. Nil means the application never expires.
	ExpiryDeadline *time.Time

	// TerminalState records the application's final disposition (e.g.
	// "rejected"). Empty means in progress. The check pipeline reports
	// outcomes but never assigns this field; that linkage belongs to the
	// business owner of the decisioning flow.
	TerminalState string
}

// NewApplication validates and builds an Application.
func NewApplication(id string, appliedAt time.Time, expiryDeadline *time.Time, terminalState string) (Application, error) {
	if id == "" {
		return Application{}, dErrors.Validation("application.application_id", "is required")
	}
	if appliedAt.IsZero() {
		return Application{}, dErrors.Validation("application.applied_at", "is required")
	}
	return Application{
		ID:             id,
		AppliedAt:      appliedAt,
		ExpiryDeadline: expiryDeadline,
		TerminalState:  terminalState,
	}, nil
}

// Expired reports whether the application is past its deadline at the given
// instant. An application with no deadline never expires; one with a
// deadline is still active only while the deadline is strictly in the
// future.
func (a Application) Expired(now time.Time) bool {
	if a.ExpiryDeadline == nil {
		return false
	}
	return !a.ExpiryDeadline.After(now)
}

// Applicant is the party whose information is evaluated.
type Applicant struct {
	// ID is an opaque identifier, never empty.
	ID string

	// DOB is the applicant's date of birth.
	DOB time.Time
}

// NewApplicant validates and builds an Applicant.
func NewApplicant(id string, dob time.Time) (Applicant, error) {
	if id == "" {
		return Applicant{}, dErrors.Validation("information.applicant.applicant_id", "is required")
	}
	if dob.IsZero() {
		return Applicant{}, dErrors.Validation("information.applicant.dob", "is required")
	}
	return Applicant{ID: id, DOB: dob}, nil
}

// AgeAtLeast reports whether the applicant had reached the given age in
// years strictly before the reference instant. An applicant turning exactly
// that age at the instant itself does not qualify.
func (a Applicant) AgeAtLeast(years int, at time.Time) bool {
	return a.DOB.AddDate(years, 0, 0).Before(at)
}
