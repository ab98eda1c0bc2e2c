package domain

import (
	"time"

	dErrors "precheck/pkg/domain-errors"
)

// Accepted ISO-8601 layouts, most specific first. RFC3339Nano also covers
// plain RFC 3339. Layouts without a zone are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a strict ISO-8601 date or date-time string.
// The field name is carried into the validation error so callers can point
// at the offending payload key.
func ParseTimestamp(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, dErrors.Validation(field, "is required")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, dErrors.Validation(field, "must be an ISO-8601 date or date-time")
}

// ParseOptionalTimestamp treats empty input as absent rather than invalid.
// A malformed non-empty string is still a validation error.
func ParseOptionalTimestamp(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	ts, err := ParseTimestamp(field, value)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
