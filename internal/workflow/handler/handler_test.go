package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"gangway/internal/identity"
	"gangway/internal/workflow"
	"gangway/internal/workflow/handler"
	"gangway/pkg/testutil"
)

// stubRunner returns a canned report and records the request it saw.
type stubRunner struct {
	report workflow.Report
	got    workflow.RunRequest
}

func (r *stubRunner) Run(_ context.Context, req workflow.RunRequest) workflow.Report {
	r.got = req
	return r.report
}

type RunHandlerSuite struct {
	suite.Suite
	runner *stubRunner
	router chi.Router
}

func TestRunHandlerSuite(t *testing.T) {
	suite.Run(t, new(RunHandlerSuite))
}

func (s *RunHandlerSuite) SetupTest() {
	s.runner = &stubRunner{}
	h := handler.New(s.runner, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *RunHandlerSuite) TestHandleRun_StatusMapping() {
	tests := []struct {
		terminal workflow.TerminalStatus
		want     int
	}{
		{workflow.StatusCompleted, http.StatusOK},
		{workflow.StatusDrafting, http.StatusCreated},
		{workflow.StatusAwaitingConfirmation, http.StatusAccepted},
		{workflow.StatusBlocked, http.StatusForbidden},
		{workflow.StatusFailed, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		s.Run(string(tt.terminal), func() {
			s.runner.report = workflow.Report{
				RunID:    "run-1",
				Terminal: tt.terminal,
			}
			req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/onboarding/runs", workflow.RunRequest{
				ProjectID:     "PROJ-ALPHA",
				EmployeeEmail: "maria.rosa@enterprise.com",
				Confirmed:     true,
			})
			rr := testutil.DoRequest(s.router, req)

			s.Equal(tt.want, rr.Code)
			var report workflow.Report
			testutil.DecodeJSON(s.T(), rr, &report)
			s.Equal(tt.terminal, report.Terminal)
		})
	}
}

func (s *RunHandlerSuite) TestHandleRun_TrimsAndForwardsRequest() {
	s.runner.report = workflow.Report{Terminal: workflow.StatusCompleted}

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/onboarding/runs", map[string]any{
		"project_id":     "  PROJ-ALPHA  ",
		"employee_email": " maria.rosa@enterprise.com ",
		"confirmed":      true,
	})
	rr := testutil.DoRequest(s.router, req)

	s.Equal(http.StatusOK, rr.Code)
	s.Equal("PROJ-ALPHA", s.runner.got.ProjectID)
	s.Equal("maria.rosa@enterprise.com", s.runner.got.EmployeeEmail)
	s.True(s.runner.got.Confirmed)
}

func (s *RunHandlerSuite) TestHandleRun_PrincipalDefaults() {
	s.runner.report = workflow.Report{Terminal: workflow.StatusCompleted}

	s.Run("authenticated caller becomes principal", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/onboarding/runs", workflow.RunRequest{
			ProjectID:     "PROJ-BETA",
			EmployeeEmail: "maria.rosa@enterprise.com",
		})
		req = testutil.WithIdentity(req, "alice.manfieldr@enterprise.com")
		testutil.DoRequest(s.router, req)

		s.Equal("alice.manfieldr@enterprise.com", s.runner.got.PrincipalEmail)
	})

	s.Run("anonymous caller falls back to anonymous principal", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/onboarding/runs", workflow.RunRequest{
			ProjectID:     "PROJ-BETA",
			EmployeeEmail: "maria.rosa@enterprise.com",
		})
		testutil.DoRequest(s.router, req)

		s.Equal(identity.AnonymousEmail, s.runner.got.PrincipalEmail)
	})

	s.Run("explicit principal preserved", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/onboarding/runs", workflow.RunRequest{
			ProjectID:      "PROJ-BETA",
			EmployeeEmail:  "maria.rosa@enterprise.com",
			PrincipalEmail: "bob.lover@enterprise.com",
		})
		testutil.DoRequest(s.router, req)

		s.Equal("bob.lover@enterprise.com", s.runner.got.PrincipalEmail)
	})
}

func (s *RunHandlerSuite) TestHandleRun_Validation() {
	s.Run("missing project_id", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/onboarding/runs", workflow.RunRequest{
			EmployeeEmail: "maria.rosa@enterprise.com",
		})
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusBadRequest, rr.Code)
	})

	s.Run("missing employee_email", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/onboarding/runs", workflow.RunRequest{
			ProjectID: "PROJ-ALPHA",
		})
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusBadRequest, rr.Code)
	})

	s.Run("malformed body", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/onboarding/runs", "{")
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusBadRequest, rr.Code)
	})
}
