package audit

import (
	"time"

	"github.com/google/uuid"
)

// Actions emitted by the workflow coordinator.
const (
	ActionRunStarted            = "run_started"
	ActionProtocolChecked       = "protocol_checked"
	ActionDraftCreated          = "draft_created"
	ActionAssignmentVerified    = "assignment_verified"
	ActionFactsPersisted        = "facts_persisted"
	ActionProvisioningCompleted = "provisioning_completed"
	ActionRunFinished           = "run_finished"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID `json:"id"`
	RunID     string    `json:"run_id"`
	TraceID   string    `json:"trace_id,omitempty"`
	Action    string    `json:"action"`
	ProjectID string    `json:"project_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Status    int       `json:"status,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
