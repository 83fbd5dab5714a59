// Package service exposes the domain-facing protocol operations. It is a thin
// pass-through over the store: no branching logic of its own, so the workflow
// coordinator never learns which store variant is active.
package service

import (
	"context"
	"log/slog"

	"gangway/internal/protocol/models"
	"gangway/internal/protocol/store"
	"gangway/pkg/requestcontext"
)

// Service translates "get status" and "create draft" requests into store calls.
type Service struct {
	store  store.Store
	logger *slog.Logger
}

// New constructs the protocol service over any store variant.
func New(st store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// GetProtocolStatus retrieves the protocol outcome for a project.
func (s *Service) GetProtocolStatus(ctx context.Context, projectID string) models.ProtocolOutcome {
	outcome := s.store.GetProtocol(ctx, projectID)
	s.logger.InfoContext(ctx, "protocol status retrieved",
		"request_id", requestcontext.RequestID(ctx),
		"project_id", projectID,
		"status", outcome.Status,
		"protocol_found", outcome.ProtocolFound,
	)
	return outcome
}

// CreateNewProtocolDraft persists a new draft artifact for a project.
func (s *Service) CreateNewProtocolDraft(ctx context.Context, projectID, principalEmail string) models.ProtocolOutcome {
	outcome := s.store.CreateProtocol(ctx, projectID, principalEmail)
	s.logger.InfoContext(ctx, "protocol draft creation attempted",
		"request_id", requestcontext.RequestID(ctx),
		"project_id", projectID,
		"status", outcome.Status,
	)
	return outcome
}

// GetSpaces lists the collaboration spaces a project's protocol provisions.
func (s *Service) GetSpaces(ctx context.Context, projectID string) models.SpacesOutcome {
	return s.store.GetSpaces(ctx, projectID)
}
