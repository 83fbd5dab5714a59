package workflow

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"gangway/internal/assignment"
	"gangway/internal/audit"
	"gangway/internal/protocol/models"
	"gangway/internal/provisioning"
	"gangway/internal/session"
)

// ProtocolService is the protocol lookup/creation collaborator. Outcomes are
// status-coded; the coordinator never receives a raw error from it.
type ProtocolService interface {
	GetProtocolStatus(ctx context.Context, projectID string) models.ProtocolOutcome
	CreateNewProtocolDraft(ctx context.Context, projectID, principalEmail string) models.ProtocolOutcome
	GetSpaces(ctx context.Context, projectID string) models.SpacesOutcome
}

// AssignmentVerifier validates an employee's role against a project roster.
type AssignmentVerifier interface {
	Verify(employeeEmail, projectID string) assignment.Result
}

// StatePersister commits validated assignment facts into session state.
type StatePersister interface {
	Persist(ctx context.Context, metadataJSON []byte) session.PersistResult
}

// Provisioner grants access to one collaboration space, retries included.
type Provisioner interface {
	Provision(ctx context.Context, space, email, serviceAccountID string) provisioning.Outcome
}

// ConfirmationGate decides whether a found protocol proceeds to execution.
// Identity verification fires only after the gate confirms.
type ConfirmationGate interface {
	Confirm(ctx context.Context, req RunRequest, protocol models.ProtocolOutcome) bool
}

// AuditPublisher records run actions. Emission never blocks the run.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// StaticGate confirms execution from the run request's confirmation flag.
// The HTTP API uses it: callers re-submit with the flag set after reviewing
// the protocol summary.
type StaticGate struct{}

func (StaticGate) Confirm(_ context.Context, req RunRequest, _ models.ProtocolOutcome) bool {
	return req.Confirmed
}
