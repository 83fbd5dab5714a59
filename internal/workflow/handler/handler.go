// Package handler exposes the onboarding run endpoint over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"gangway/internal/identity"
	"gangway/internal/workflow"
	dErrors "gangway/pkg/domain-errors"
	"gangway/pkg/platform/httputil"
	"gangway/pkg/requestcontext"
)

// Runner executes one onboarding run to a terminal report.
type Runner interface {
	Run(ctx context.Context, req workflow.RunRequest) workflow.Report
}

// Handler serves the onboarding run endpoint.
type Handler struct {
	runner Runner
	logger *slog.Logger
}

// New constructs an onboarding handler with its dependencies.
func New(runner Runner, logger *slog.Logger) *Handler {
	return &Handler{runner: runner, logger: logger}
}

// Register mounts the onboarding endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/onboarding/runs", h.HandleRun)
}

// HandleRun handles POST /onboarding/runs requests.
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[workflow.RunRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := validate(&req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	// Absent an explicit principal, the authenticated caller is the principal
	// on record for any draft this run creates.
	if req.PrincipalEmail == "" {
		req.PrincipalEmail = identity.Resolve(requestcontext.IdentityEmail(ctx)).Email
	}

	report := h.runner.Run(ctx, req)

	h.logger.InfoContext(ctx, "onboarding run handled",
		"request_id", requestID,
		"run_id", report.RunID,
		"project_id", report.ProjectID,
		"terminal_status", report.Terminal,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, statusFor(report.Terminal), report)
}

func validate(req *workflow.RunRequest) error {
	req.ProjectID = strings.TrimSpace(req.ProjectID)
	req.EmployeeEmail = strings.TrimSpace(req.EmployeeEmail)
	req.PrincipalEmail = strings.TrimSpace(req.PrincipalEmail)
	if req.ProjectID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "project_id is required")
	}
	if req.EmployeeEmail == "" {
		return dErrors.New(dErrors.CodeBadRequest, "employee_email is required")
	}
	return nil
}

// statusFor maps a terminal run status to the response status. The report
// body carries the full state trail either way.
func statusFor(terminal workflow.TerminalStatus) int {
	switch terminal {
	case workflow.StatusCompleted:
		return http.StatusOK
	case workflow.StatusDrafting:
		return http.StatusCreated
	case workflow.StatusAwaitingConfirmation:
		return http.StatusAccepted
	case workflow.StatusBlocked:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
