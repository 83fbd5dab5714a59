// Package handler wires protocol endpoints to the protocol service. Outcomes
// are status-coded, so the response status is the outcome status verbatim.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"gangway/internal/protocol/models"
	dErrors "gangway/pkg/domain-errors"
	"gangway/pkg/platform/httputil"
	"gangway/pkg/requestcontext"
)

// Service defines the protocol operations the handler exposes.
type Service interface {
	GetProtocolStatus(ctx context.Context, projectID string) models.ProtocolOutcome
	CreateNewProtocolDraft(ctx context.Context, projectID, principalEmail string) models.ProtocolOutcome
}

// Handler serves the protocol endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a protocol handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts protocol endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/protocols/{projectID}", h.HandleGetProtocol)
	r.Post("/protocols", h.HandleCreateProtocol)
}

// HandleGetProtocol handles GET /protocols/{projectID} requests.
func (h *Handler) HandleGetProtocol(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectID := strings.TrimSpace(chi.URLParam(r, "projectID"))
	if projectID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "project id is required"))
		return
	}

	outcome := h.service.GetProtocolStatus(ctx, projectID)
	httputil.WriteJSON(w, outcome.Status, outcome)
}

// CreateProtocolRequest is the POST /protocols body.
type CreateProtocolRequest struct {
	ProjectID      string `json:"project_id"`
	PrincipalEmail string `json:"principal_email"`
}

// Validate checks required fields.
func (r *CreateProtocolRequest) Validate() error {
	r.ProjectID = strings.TrimSpace(r.ProjectID)
	r.PrincipalEmail = strings.TrimSpace(r.PrincipalEmail)
	if r.ProjectID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "project_id is required")
	}
	if r.PrincipalEmail == "" {
		return dErrors.New(dErrors.CodeBadRequest, "principal_email is required")
	}
	return nil
}

// HandleCreateProtocol handles POST /protocols requests.
func (h *Handler) HandleCreateProtocol(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateProtocolRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	outcome := h.service.CreateNewProtocolDraft(ctx, req.ProjectID, req.PrincipalEmail)
	h.logger.InfoContext(ctx, "protocol draft requested",
		"request_id", requestID,
		"project_id", req.ProjectID,
		"status", outcome.Status,
	)
	httputil.WriteJSON(w, outcome.Status, outcome)
}
