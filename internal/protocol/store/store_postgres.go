package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"gangway/internal/protocol/metrics"
	"gangway/internal/protocol/models"
)

// Postgres persists protocol artifacts in a PostgreSQL table. Construction
// probes connectivity once; if the probe fails the store stays up and every
// call returns a 503 outcome instead of crashing the process. Query-time
// failures are logged and reported as 500 outcomes, never propagated.
type Postgres struct {
	db      *sql.DB
	policy  CreationPolicy
	logger  *slog.Logger
	metrics *metrics.Metrics
	online  bool
}

// NewPostgres constructs the live store, bootstraps the protocols table, and
// idempotently seeds the canonical artifact.
func NewPostgres(db *sql.DB, seed models.ProtocolArtifact, policy CreationPolicy, logger *slog.Logger, m *metrics.Metrics) *Postgres {
	s := &Postgres{
		db:      db,
		policy:  policy,
		logger:  logger,
		metrics: m,
	}

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		logger.ErrorContext(ctx, "protocol database unreachable, store starting offline", "error", err)
		return s
	}
	s.online = true

	if err := s.bootstrap(ctx, seed); err != nil {
		logger.ErrorContext(ctx, "protocol schema bootstrap failed, store starting offline", "error", err)
		s.online = false
		return s
	}

	logger.InfoContext(ctx, "protocol store connected", "seed_project_id", seed.ProjectID)
	return s
}

func (s *Postgres) bootstrap(ctx context.Context, seed models.ProtocolArtifact) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS protocols (
			project_id      VARCHAR(50) PRIMARY KEY,
			principal_email VARCHAR(255) NOT NULL,
			version         VARCHAR(20) NOT NULL,
			required_steps  TEXT NOT NULL,
			spaces          TEXT NOT NULL DEFAULT '[]',
			is_active       BOOLEAN NOT NULL DEFAULT FALSE
		)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return err
	}

	// Existence check by primary key before insert keeps seeding idempotent.
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM protocols WHERE project_id = $1`, seed.ProjectID).Scan(&exists)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	steps, err := json.Marshal(seed.RequiredSteps)
	if err != nil {
		return err
	}
	spaces, err := json.Marshal(seed.Spaces)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO protocols (project_id, principal_email, version, required_steps, spaces, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)`,
		seed.ProjectID, seed.PrincipalEmail, seed.Version, string(steps), string(spaces))
	return err
}

func (s *Postgres) GetProtocol(ctx context.Context, projectID string) models.ProtocolOutcome {
	start := time.Now()
	outcome := s.getProtocol(ctx, projectID)
	s.metrics.RecordLookup("get", outcome.Status, time.Since(start))
	return outcome
}

func (s *Postgres) getProtocol(ctx context.Context, projectID string) models.ProtocolOutcome {
	if !s.online {
		return models.Offline("Protocol store is offline. Cannot perform protocol lookup.")
	}

	var version, rawSteps string
	err := s.db.QueryRowContext(ctx, `
		SELECT version, required_steps FROM protocols
		WHERE project_id = $1 AND is_active = TRUE`, projectID).Scan(&version, &rawSteps)
	if errors.Is(err, sql.ErrNoRows) {
		authorized := s.policy.AuthorizedToCreate(ctx, projectID)
		return models.NotFound(authorized, "Protocol not found in store.")
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "protocol lookup query failed", "project_id", projectID, "error", err)
		return models.QueryFailed("Failed to execute protocol lookup.")
	}

	var steps models.StepSet
	if err := json.Unmarshal([]byte(rawSteps), &steps); err != nil {
		s.logger.ErrorContext(ctx, "protocol row has malformed steps", "project_id", projectID, "error", err)
		return models.QueryFailed("Failed to decode stored protocol steps.")
	}

	flat := steps.Flatten()
	if flat == nil {
		flat = []string{}
	}
	return models.Found(version, flat, "Protocol retrieved successfully.")
}

func (s *Postgres) CreateProtocol(ctx context.Context, projectID, principalEmail string) models.ProtocolOutcome {
	start := time.Now()
	outcome := s.createProtocol(ctx, projectID, principalEmail)
	s.metrics.RecordLookup("create", outcome.Status, time.Since(start))
	return outcome
}

func (s *Postgres) createProtocol(ctx context.Context, projectID, principalEmail string) models.ProtocolOutcome {
	if !s.online {
		return models.Offline("Protocol store is offline. Cannot create artifact.")
	}

	// Insert-or-skip by primary key: concurrent creates for the same project
	// race here, and the second attempt must observe the row and not duplicate it.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO protocols (project_id, principal_email, version, required_steps, spaces, is_active)
		VALUES ($1, $2, 'v1.0 (Draft)', '{"internal":[],"external":[]}', '[]', TRUE)
		ON CONFLICT (project_id) DO NOTHING`, projectID, principalEmail)
	if err != nil {
		s.logger.ErrorContext(ctx, "protocol draft insert failed", "project_id", projectID, "error", err)
		return models.QueryFailed("Failed to persist protocol draft.")
	}

	s.logger.InfoContext(ctx, "protocol draft created",
		"project_id", projectID,
		"principal_email", principalEmail,
	)
	return models.Created("v1.0 (Draft)", "New protocol draft successfully created in the persistent store.")
}

func (s *Postgres) GetSpaces(ctx context.Context, projectID string) models.SpacesOutcome {
	start := time.Now()
	outcome := s.getSpaces(ctx, projectID)
	s.metrics.RecordLookup("spaces", outcome.Status, time.Since(start))
	return outcome
}

func (s *Postgres) getSpaces(ctx context.Context, projectID string) models.SpacesOutcome {
	if !s.online {
		return models.SpacesOutcome{Status: 503, Spaces: []string{}, Message: "Protocol store is offline."}
	}

	var rawSpaces string
	err := s.db.QueryRowContext(ctx, `
		SELECT spaces FROM protocols
		WHERE project_id = $1 AND is_active = TRUE`, projectID).Scan(&rawSpaces)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SpacesOutcome{Status: 404, Spaces: []string{}, Message: "Protocol not found in store."}
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "spaces lookup query failed", "project_id", projectID, "error", err)
		return models.SpacesOutcome{Status: 500, Spaces: []string{}, Message: "Failed to execute spaces lookup."}
	}

	var spaces []string
	if err := json.Unmarshal([]byte(rawSpaces), &spaces); err != nil {
		s.logger.ErrorContext(ctx, "protocol row has malformed spaces", "project_id", projectID, "error", err)
		return models.SpacesOutcome{Status: 500, Spaces: []string{}, Message: "Failed to decode stored spaces."}
	}
	if spaces == nil {
		spaces = []string{}
	}
	return models.SpacesOutcome{Status: 200, Spaces: spaces, Message: "Spaces retrieved successfully."}
}
