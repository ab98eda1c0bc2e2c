package ingest

import (
	"github.com/google/uuid"

	"precheck/internal/domain"
)

// Information source names accepted in the payload's information block.
const (
	SourceApplicant = "applicant"
)

// sourceParser turns one information-source object into its typed entity.
type sourceParser func(m map[string]any) (any, error)

// sourceParsers maps source name to parser. Built once at init and read-only
// afterwards, so concurrent requests share it without synchronization.
// Adding a source means adding an entry here; the pipeline stays untouched.
var sourceParsers = map[string]sourceParser{
	SourceApplicant: parseApplicant,
}

func parseApplicant(m map[string]any) (any, error) {
	id, err := optionalString(m, "information.applicant", "applicant_id")
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}

	dobRaw, err := optionalString(m, "information.applicant", "dob")
	if err != nil {
		return nil, err
	}
	dob, err := domain.ParseTimestamp("information.applicant.dob", dobRaw)
	if err != nil {
		return nil, err
	}

	return domain.NewApplicant(id, dob)
}
