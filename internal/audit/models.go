// Package audit records completed check runs for compliance review. Events
// describe decisions, never the applications themselves: the pipeline stays
// stateless and applications are never persisted between requests.
package audit

import "time"

// Actions recorded by the check pipeline.
const (
	ActionChecksCompleted = "checks_completed"
)

// ResultSummary is the audit-facing view of one check result.
type ResultSummary struct {
	Label   string `json:"label"`
	Outcome string `json:"outcome"`
}

// Event is emitted from domain logic to capture one completed check run.
// Keep it transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID            string
	Timestamp     time.Time
	Action        string
	ApplicationID string
	ApplicantID   string
	Results       []ResultSummary
	RequestID     string
	ClientIP      string
	UserAgent     string
}
