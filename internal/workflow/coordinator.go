// Package workflow orchestrates one onboarding run: protocol lookup, routing
// on the outcome, assignment verification, fact persistence, and space
// provisioning. The coordinator consumes only status-coded outcomes from its
// collaborators; no raw error ever crosses into the state machine.
package workflow

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gangway/internal/audit"
	"gangway/internal/protocol/models"
	"gangway/internal/provisioning"
	"gangway/internal/workflow/metrics"
	"gangway/pkg/requestcontext"
)

// Coordinator is the orchestration state machine:
// START -> PROTOCOL_CHECKED -> {EXECUTING | DRAFTING | BLOCKED | FAILED}.
type Coordinator struct {
	protocols        ProtocolService
	verifier         AssignmentVerifier
	persister        StatePersister
	provisioner      Provisioner
	gate             ConfirmationGate
	serviceAccountID string

	auditor AuditPublisher
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures optional coordinator collaborators.
type Option func(*Coordinator)

func WithAuditPublisher(auditor AuditPublisher) Option {
	return func(c *Coordinator) { c.auditor = auditor }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// New constructs the coordinator over its collaborators.
func New(protocols ProtocolService, verifier AssignmentVerifier, persister StatePersister, provisioner Provisioner, gate ConfirmationGate, serviceAccountID string, logger *slog.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		protocols:        protocols,
		verifier:         verifier,
		persister:        persister,
		provisioner:      provisioner,
		gate:             gate,
		serviceAccountID: serviceAccountID,
		logger:           logger,
		tracer:           otel.Tracer("gangway/internal/workflow"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes one onboarding run to a terminal report. Runs for different
// projects are independent; runs for the same project may race on draft
// creation, where the store's insert-by-key check is the safety net.
func (c *Coordinator) Run(ctx context.Context, req RunRequest) Report {
	start := time.Now()

	traceID := requestcontext.TraceID(ctx)
	if traceID == "" {
		traceID = uuid.NewString()
		ctx = requestcontext.WithTraceID(ctx, traceID)
	}

	report := Report{
		RunID:         uuid.NewString(),
		TraceID:       traceID,
		ProjectID:     req.ProjectID,
		EmployeeEmail: req.EmployeeEmail,
		States:        []State{StateStart},
	}

	ctx, span := c.tracer.Start(ctx, "workflow.run",
		trace.WithAttributes(
			attribute.String("run_id", report.RunID),
			attribute.String("project_id", req.ProjectID),
		))
	defer span.End()

	c.emit(ctx, report, audit.ActionRunStarted, 0, "")

	outcome := c.protocols.GetProtocolStatus(ctx, req.ProjectID)
	report.States = append(report.States, StateProtocolChecked)
	report.Protocol = outcome
	c.emit(ctx, report, audit.ActionProtocolChecked, outcome.Status, outcome.Message)

	disposition := Classify(outcome)
	if disposition == DispositionNotFoundAuthorized {
		// The only path permitted to re-enter classification: create a draft
		// and route on its outcome.
		principal := req.PrincipalEmail
		if principal == "" {
			principal = req.EmployeeEmail
		}
		outcome = c.protocols.CreateNewProtocolDraft(ctx, req.ProjectID, principal)
		report.Protocol = outcome
		c.emit(ctx, report, audit.ActionDraftCreated, outcome.Status, outcome.Message)

		disposition = Classify(outcome)
		if disposition == DispositionNotFoundAuthorized {
			// A create call cannot legally report not-found again.
			disposition = DispositionFailure
		}
	}

	switch disposition {
	case DispositionFound:
		report = c.execute(ctx, req, outcome, report)
	case DispositionDraftCreated:
		report.States = append(report.States, StateDrafting)
		report.Terminal = StatusDrafting
		report.Message = "Protocol draft created. Awaiting step definitions before execution can begin."
	case DispositionNotFoundBlocked:
		report.States = append(report.States, StateBlocked)
		report.Terminal = StatusBlocked
		report.Message = "No protocol is available for this project and you are not authorized to create one. Contact the project's Delivery Principal."
	default:
		report.States = append(report.States, StateFailed)
		report.Terminal = StatusFailed
		report.Message = "The protocol store reported a failure. Please try again later or seek support."
	}

	return c.finish(ctx, report, start)
}

// execute runs the EXECUTING sequence: confirmation gate, assignment
// verification, fact persistence, then per-space provisioning. Provisioning
// must not fire unless assignment verification returned 200.
func (c *Coordinator) execute(ctx context.Context, req RunRequest, outcome models.ProtocolOutcome, report Report) Report {
	report.States = append(report.States, StateExecuting)

	if !c.gate.Confirm(ctx, req, outcome) {
		report.Terminal = StatusAwaitingConfirmation
		report.Message = summarizeProtocol(outcome) + " Confirm to begin provisioning."
		return report
	}

	result := c.verifier.Verify(req.EmployeeEmail, req.ProjectID)
	report.Assignment = &result
	c.emit(ctx, report, audit.ActionAssignmentVerified, result.Status, result.Message)

	if result.Status != 200 {
		// A 401 here halts the run regardless of the protocol outcome, with
		// zero provisioning calls attempted.
		report.States = append(report.States, StateBlocked)
		report.Terminal = StatusBlocked
		report.Message = result.Message
		return report
	}

	facts, err := json.Marshal(map[string]string{
		"assigned_project_id": result.AssignedProjectID,
		"employee_mail":       result.EmployeeMail,
		"employee_role":       result.EmployeeRole,
	})
	if err != nil {
		report.States = append(report.States, StateFailed)
		report.Terminal = StatusFailed
		report.Message = "Failed to encode assignment facts."
		return report
	}
	persisted := c.persister.Persist(ctx, facts)
	c.emit(ctx, report, audit.ActionFactsPersisted, persisted.Status, persisted.Message)
	if persisted.Status != 200 {
		report.States = append(report.States, StateFailed)
		report.Terminal = StatusFailed
		report.Message = "Assignment facts could not be persisted."
		return report
	}

	spaces := c.protocols.GetSpaces(ctx, req.ProjectID)
	if spaces.Status != 200 {
		report.States = append(report.States, StateFailed)
		report.Terminal = StatusFailed
		report.Message = "Collaboration spaces could not be retrieved for provisioning."
		return report
	}

	failures := 0
	for _, space := range spaces.Spaces {
		provisioned := c.provisioner.Provision(ctx, space, req.EmployeeEmail, c.serviceAccountID)
		report.Provisioning = append(report.Provisioning, provisioned)
		c.metrics.RecordProvisioningRetries(provisioned.Attempts - 1)

		if provisioned.ErrorType == provisioning.ErrTypeSecurityFailure {
			// Identity mismatch repeats for every space: abort the whole run.
			report.States = append(report.States, StateBlocked)
			report.Terminal = StatusBlocked
			report.Message = "Provisioning was blocked by a security failure. The run has been aborted."
			return report
		}
		if provisioned.IsError {
			failures++
			c.logger.WarnContext(ctx, "space provisioning failed",
				"run_id", report.RunID,
				"space", space,
				"status", provisioned.Status,
				"error_type", provisioned.ErrorType,
				"exhausted", provisioned.Exhausted,
			)
		}
	}
	c.emit(ctx, report, audit.ActionProvisioningCompleted, 200, "")

	if failures > 0 {
		report.States = append(report.States, StateFailed)
		report.Terminal = StatusFailed
		report.Message = "Onboarding finished with provisioning failures. Support has been notified."
		return report
	}

	report.Terminal = StatusCompleted
	report.Message = summarizeProtocol(outcome) + " All spaces provisioned."
	return report
}

func (c *Coordinator) finish(ctx context.Context, report Report, start time.Time) Report {
	c.emit(ctx, report, audit.ActionRunFinished, 0, string(report.Terminal))
	c.metrics.RecordRun(string(report.Terminal), time.Since(start))
	c.logger.InfoContext(ctx, "onboarding run finished",
		"run_id", report.RunID,
		"trace_id", report.TraceID,
		"project_id", report.ProjectID,
		"terminal_status", report.Terminal,
		"states", report.States,
	)
	return report
}

func (c *Coordinator) emit(ctx context.Context, report Report, action string, status int, detail string) {
	if c.auditor == nil {
		return
	}
	c.auditor.Emit(ctx, audit.Event{
		RunID:     report.RunID,
		TraceID:   report.TraceID,
		Action:    action,
		ProjectID: report.ProjectID,
		Email:     report.EmployeeEmail,
		Status:    status,
		Detail:    detail,
	})
}
