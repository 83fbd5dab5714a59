package workflow

import (
	"fmt"
	"strings"

	"gangway/internal/assignment"
	"gangway/internal/protocol/models"
	"gangway/internal/provisioning"
)

// State is one node of the orchestration state machine.
type State string

const (
	StateStart           State = "START"
	StateProtocolChecked State = "PROTOCOL_CHECKED"
	StateExecuting       State = "EXECUTING"
	StateDrafting        State = "DRAFTING"
	StateBlocked         State = "BLOCKED"
	StateFailed          State = "FAILED"
)

// TerminalStatus summarizes how a run ended.
type TerminalStatus string

const (
	StatusCompleted            TerminalStatus = "completed"
	StatusAwaitingConfirmation TerminalStatus = "awaiting_confirmation"
	StatusDrafting             TerminalStatus = "drafting"
	StatusBlocked              TerminalStatus = "blocked"
	StatusFailed               TerminalStatus = "failed"
)

// RunRequest starts one onboarding run.
type RunRequest struct {
	ProjectID      string `json:"project_id"`
	EmployeeEmail  string `json:"employee_email"`
	PrincipalEmail string `json:"principal_email,omitempty"`
	Confirmed      bool   `json:"confirmed"`
}

// Report is the structured record of one onboarding run.
type Report struct {
	RunID         string                 `json:"run_id"`
	TraceID       string                 `json:"trace_id"`
	ProjectID     string                 `json:"project_id"`
	EmployeeEmail string                 `json:"employee_email"`
	States        []State                `json:"state_trail"`
	Terminal      TerminalStatus         `json:"terminal_status"`
	Protocol      models.ProtocolOutcome `json:"protocol"`
	Assignment    *assignment.Result     `json:"assignment,omitempty"`
	Provisioning  []provisioning.Outcome `json:"provisioning,omitempty"`
	Message       string                 `json:"message"`
}

// summarizeProtocol renders the version-and-steps summary presented when a
// protocol is found.
func summarizeProtocol(outcome models.ProtocolOutcome) string {
	if len(outcome.RequiredSteps) == 0 {
		return fmt.Sprintf("Protocol %s is active with no steps defined yet.", outcome.ProtocolVersion)
	}
	return fmt.Sprintf("Protocol %s is active with %d required steps: %s.",
		outcome.ProtocolVersion, len(outcome.RequiredSteps), strings.Join(outcome.RequiredSteps, ", "))
}
