package check

import (
	"context"

	"precheck/internal/domain"
	"precheck/pkg/requestcontext"
)

// Check labels. These appear verbatim in rendered responses and audit
// events, so treat them as part of the external contract.
const (
	LabelApplicationNotExpired = "application_not_expired"
	LabelApplicantIs18Plus     = "applicant_is_18_plus"
)

// adultAge is the minimum applicant age in years.
const adultAge = 18

// ApplicationNotExpired passes while the application is still active: no
// expiry deadline, or a deadline strictly after the request clock.
func ApplicationNotExpired() Check {
	return Check{
		Name: LabelApplicationNotExpired,
		Run: func(ctx context.Context, app domain.Application, _ *domain.Applicant) (domain.CheckResult, error) {
			now := requestcontext.Now(ctx)
			return domain.NewCheckResult(LabelApplicationNotExpired, domain.OutcomeWhen(!app.Expired(now)), now)
		},
	}
}

// ApplicantIs18Plus passes when the applicant turned 18 strictly before the
// application's submission instant. Turning 18 at the instant itself fails.
func ApplicantIs18Plus() Check {
	return Check{
		Name:           LabelApplicantIs18Plus,
		NeedsApplicant: true,
		Run: func(ctx context.Context, app domain.Application, applicant *domain.Applicant) (domain.CheckResult, error) {
			pass := applicant.AgeAtLeast(adultAge, app.AppliedAt)
			return domain.NewCheckResult(LabelApplicantIs18Plus, domain.OutcomeWhen(pass), requestcontext.Now(ctx))
		},
	}
}
