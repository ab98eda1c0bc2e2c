// Package screening orchestrates the check pipeline: coerce the generic
// payload into entities, run the registered checks, project the results back
// into a generic structure. The service itself holds no per-request state;
// everything it touches is request-local except the immutable registry.
package screening

import (
	"context"
	"log/slog"
	"time"

	"precheck/internal/audit"
	"precheck/internal/check"
	"precheck/internal/domain"
	"precheck/internal/ingest"
	"precheck/internal/render"
	"precheck/internal/screening/metrics"
	dErrors "precheck/pkg/domain-errors"
	"precheck/pkg/requestcontext"
)

// Auditor records completed check runs. Satisfied by audit.Publisher.
type Auditor interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service runs the ingest, check, render pipeline.
type Service struct {
	ingestor *ingest.Ingestor
	runner   *check.Runner
	auditor  Auditor
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// New constructs the screening service. auditor and metrics may be nil.
func New(ingestor *ingest.Ingestor, runner *check.Runner, auditor Auditor, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		ingestor: ingestor,
		runner:   runner,
		auditor:  auditor,
		logger:   logger,
		metrics:  m,
	}
}

// Screen takes the generic request payload and returns the generic response
// structure. Validation and contract errors propagate to the caller; no
// partial results are ever returned.
func (s *Service) Screen(ctx context.Context, payload map[string]any) (map[string]any, error) {
	start := time.Now()

	entities, err := s.ingestor.Ingest(payload)
	if err != nil {
		s.metrics.IncrementIngestFailure(dErrors.FieldOf(err))
		return nil, err
	}

	var applicant *domain.Applicant
	if a, ok := entities.Applicant(); ok {
		applicant = &a
	}

	results, err := s.runner.Run(ctx, entities.Application, applicant)
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		s.metrics.IncrementOutcome(r.Label, string(r.Outcome))
	}
	s.metrics.ObserveScreenLatency(time.Since(start))

	s.audit(ctx, entities, applicant, results)

	return render.CheckResults(results), nil
}

func (s *Service) audit(ctx context.Context, entities ingest.Entities, applicant *domain.Applicant, results []domain.CheckResult) {
	if s.auditor == nil {
		return
	}

	summaries := make([]audit.ResultSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, audit.ResultSummary{Label: r.Label, Outcome: string(r.Outcome)})
	}

	event := audit.Event{
		Timestamp:     requestcontext.Now(ctx),
		Action:        audit.ActionChecksCompleted,
		ApplicationID: entities.Application.ID,
		Results:       summaries,
		RequestID:     requestcontext.RequestID(ctx),
		ClientIP:      requestcontext.ClientIP(ctx),
		UserAgent:     requestcontext.UserAgent(ctx),
	}
	if applicant != nil {
		event.ApplicantID = applicant.ID
	}

	s.auditor.Emit(ctx, event)
}
