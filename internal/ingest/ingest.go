// Package ingest coerces the generic, loosely typed request payload into
// typed domain entities. It is a pure transformation: either a fully built
// entity set comes out, or a validation error naming the offending field.
package ingest

import (
	"github.com/google/uuid"

	"precheck/internal/domain"
	dErrors "precheck/pkg/domain-errors"
)

// UnknownSourcePolicy decides what happens when the information block
// carries a source name with no registered parser.
type UnknownSourcePolicy int

const (
	// IgnoreUnknownSources drops unrecognized sources. This is the default:
	// newer clients may send sources this version does not understand yet.
	IgnoreUnknownSources UnknownSourcePolicy = iota

	// RejectUnknownSources fails ingestion on the first unrecognized source.
	RejectUnknownSources
)

// Entities is the typed output of ingestion: one application plus the
// entities parsed from the information block, keyed by source name.
type Entities struct {
	Application domain.Application
	Sources     map[string]any
}

// Applicant returns the typed applicant when the payload carried one.
func (e Entities) Applicant() (domain.Applicant, bool) {
	applicant, ok := e.Sources[SourceApplicant].(domain.Applicant)
	return applicant, ok
}

// Ingestor converts generic payloads into Entities. Safe for concurrent use;
// it holds only the immutable source table and policy.
type Ingestor struct {
	policy  UnknownSourcePolicy
	sources map[string]sourceParser
}

// New builds an Ingestor with the default source table.
func New(policy UnknownSourcePolicy) *Ingestor {
	return &Ingestor{policy: policy, sources: sourceParsers}
}

// Ingest coerces a payload of the shape
//
//	{"application": {...}, "information": {"applicant": {...}}}
//
// into typed entities. Unknown top-level keys never cause failure; unknown
// information sources follow the configured policy.
func (i *Ingestor) Ingest(payload map[string]any) (Entities, error) {
	appMap, err := nestedMap(payload, "application")
	if err != nil {
		return Entities{}, err
	}
	if appMap == nil {
		return Entities{}, dErrors.Validation("application", "is required")
	}

	app, err := parseApplication(appMap)
	if err != nil {
		return Entities{}, err
	}

	infoMap, err := nestedMap(payload, "information")
	if err != nil {
		return Entities{}, err
	}

	sources := make(map[string]any, len(infoMap))
	for name, raw := range infoMap {
		parser, ok := i.sources[name]
		if !ok {
			if i.policy == RejectUnknownSources {
				return Entities{}, dErrors.Validation("information."+name, "is not a recognized information source")
			}
			continue
		}

		sourceMap, ok := raw.(map[string]any)
		if !ok {
			return Entities{}, dErrors.Validation("information."+name, "must be an object")
		}

		entity, err := parser(sourceMap)
		if err != nil {
			return Entities{}, err
		}
		sources[name] = entity
	}

	return Entities{Application: app, Sources: sources}, nil
}

func parseApplication(m map[string]any) (domain.Application, error) {
	id, err := optionalString(m, "application", "application_id")
	if err != nil {
		return domain.Application{}, err
	}
	if id == "" {
		// The endpoint is the application's front door: payloads without an
		// identifier get a fresh one.
		id = uuid.NewString()
	}

	appliedAtRaw, err := optionalString(m, "application", "applied_at")
	if err != nil {
		return domain.Application{}, err
	}
	if appliedAtRaw == "" {
		// Older clients sent the submission instant as created_at.
		if appliedAtRaw, err = optionalString(m, "application", "created_at"); err != nil {
			return domain.Application{}, err
		}
	}
	appliedAt, err := domain.ParseTimestamp("application.applied_at", appliedAtRaw)
	if err != nil {
		return domain.Application{}, err
	}

	expiryRaw, err := optionalString(m, "application", "expiry_deadline")
	if err != nil {
		return domain.Application{}, err
	}
	expiry, err := domain.ParseOptionalTimestamp("application.expiry_deadline", expiryRaw)
	if err != nil {
		return domain.Application{}, err
	}

	terminal, err := optionalString(m, "application", "terminal_state")
	if err != nil {
		return domain.Application{}, err
	}

	return domain.NewApplication(id, appliedAt, expiry, terminal)
}

// nestedMap extracts a top-level object field. Absent or null is reported as
// nil; any other non-object value is a validation error.
func nestedMap(payload map[string]any, key string) (map[string]any, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, dErrors.Validation(key, "must be an object")
	}
	return m, nil
}

// optionalString extracts a string field, treating absent and null as empty.
func optionalString(m map[string]any, scope, key string) (string, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", dErrors.Validation(scope+"."+key, "must be a string")
	}
	return s, nil
}
