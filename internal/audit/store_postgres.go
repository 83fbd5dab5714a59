package audit

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore persists audit events in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgreSQL-backed audit store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the audit_events table if it does not exist. Called
// once at startup.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS audit_events (
			id         UUID PRIMARY KEY,
			run_id     VARCHAR(64) NOT NULL,
			trace_id   VARCHAR(64) NOT NULL DEFAULT '',
			action     VARCHAR(64) NOT NULL,
			project_id VARCHAR(50) NOT NULL DEFAULT '',
			email      VARCHAR(255) NOT NULL DEFAULT '',
			status     INT NOT NULL DEFAULT 0,
			detail     TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create audit_events table: %w", err)
	}
	const index = `CREATE INDEX IF NOT EXISTS idx_audit_events_run_id ON audit_events (run_id)`
	if _, err := s.db.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("create audit_events index: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, run_id, trace_id, action, project_id, email, status, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		event.ID, event.RunID, event.TraceID, event.Action, event.ProjectID,
		event.Email, event.Status, event.Detail, event.Timestamp)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByRun(ctx context.Context, runID string) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, trace_id, action, project_id, email, status, detail, created_at
		FROM audit_events WHERE run_id = $1 ORDER BY created_at`, runID)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.RunID, &event.TraceID, &event.Action,
			&event.ProjectID, &event.Email, &event.Status, &event.Detail, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
