package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	dErrors "precheck/pkg/domain-errors"
)

// PostgresStore persists audit events in the audit_events table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres opens a connection pool against the given URL and verifies it.
func OpenPostgres(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Schema creates the audit_events table when it does not exist yet.
const Schema = `
CREATE TABLE IF NOT EXISTS audit_events (
	id             UUID PRIMARY KEY,
	occurred_at    TIMESTAMPTZ NOT NULL,
	action         TEXT NOT NULL,
	application_id TEXT NOT NULL,
	applicant_id   TEXT NOT NULL DEFAULT '',
	results        JSONB NOT NULL DEFAULT '[]',
	request_id     TEXT NOT NULL DEFAULT '',
	client_ip      TEXT NOT NULL DEFAULT '',
	user_agent     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS audit_events_application_idx ON audit_events (application_id);
`

// EnsureSchema applies the schema. Called once at startup.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, Schema)
	return err
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	results, err := json.Marshal(event.Results)
	if err != nil {
		return fmt.Errorf("marshal audit results: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, occurred_at, action, application_id, applicant_id, results, request_id, client_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		event.ID, event.Timestamp, event.Action, event.ApplicationID,
		event.ApplicantID, results, event.RequestID, event.ClientIP, event.UserAgent,
	)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeUnavailable, "append audit event", err)
	}
	return nil
}

func (s *PostgresStore) ListByApplication(ctx context.Context, applicationID string) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, occurred_at, action, application_id, applicant_id, results, request_id, client_ip, user_agent
		FROM audit_events
		WHERE application_id = $1
		ORDER BY occurred_at`,
		applicationID,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		var results []byte
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Action, &e.ApplicationID,
			&e.ApplicantID, &results, &e.RequestID, &e.ClientIP, &e.UserAgent); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		if err := json.Unmarshal(results, &e.Results); err != nil {
			return nil, fmt.Errorf("unmarshal audit results: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
