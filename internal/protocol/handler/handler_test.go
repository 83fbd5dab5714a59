package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"gangway/internal/protocol/handler"
	"gangway/internal/protocol/models"
	"gangway/internal/protocol/service"
	"gangway/internal/protocol/store"
	"gangway/pkg/testutil"
)

type ProtocolHandlerSuite struct {
	suite.Suite
	router chi.Router
}

func TestProtocolHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProtocolHandlerSuite))
}

func (s *ProtocolHandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.New(service.New(store.NewDeterministic(nil), logger), logger)
	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *ProtocolHandlerSuite) TestGetProtocol() {
	s.Run("active protocol returns 200 with steps", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/protocols/PROJ-ALPHA")
		rr := testutil.DoRequest(s.router, req)

		s.Equal(http.StatusOK, rr.Code)
		var outcome models.ProtocolOutcome
		testutil.DecodeJSON(s.T(), rr, &outcome)
		s.True(outcome.ProtocolFound)
		s.Equal("v2.1", outcome.ProtocolVersion)
		s.NotEmpty(outcome.RequiredSteps)
	})

	s.Run("missing protocol returns 404 with creation flag", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/protocols/PROJ-BETA")
		rr := testutil.DoRequest(s.router, req)

		s.Equal(http.StatusNotFound, rr.Code)
		var outcome models.ProtocolOutcome
		testutil.DecodeJSON(s.T(), rr, &outcome)
		s.False(outcome.ProtocolFound)
		s.True(outcome.AuthorizedToCreate)
	})

	s.Run("unknown project returns 404 without creation flag", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/protocols/PROJ-UNKNOWN")
		rr := testutil.DoRequest(s.router, req)

		s.Equal(http.StatusNotFound, rr.Code)
		var outcome models.ProtocolOutcome
		testutil.DecodeJSON(s.T(), rr, &outcome)
		s.False(outcome.AuthorizedToCreate)
	})
}

func (s *ProtocolHandlerSuite) TestCreateProtocol() {
	s.Run("valid request returns 201 draft", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/protocols", handler.CreateProtocolRequest{
			ProjectID:      "PROJ-BETA",
			PrincipalEmail: "alice.manfieldr@enterprise.com",
		})
		rr := testutil.DoRequest(s.router, req)

		s.Equal(http.StatusCreated, rr.Code)
		var outcome models.ProtocolOutcome
		testutil.DecodeJSON(s.T(), rr, &outcome)
		s.NotEmpty(outcome.ProtocolVersion)
	})

	s.Run("missing project_id rejected", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/protocols", handler.CreateProtocolRequest{
			PrincipalEmail: "alice.manfieldr@enterprise.com",
		})
		rr := testutil.DoRequest(s.router, req)

		s.Equal(http.StatusBadRequest, rr.Code)
	})

	s.Run("missing principal_email rejected", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/protocols", handler.CreateProtocolRequest{
			ProjectID: "PROJ-BETA",
		})
		rr := testutil.DoRequest(s.router, req)

		s.Equal(http.StatusBadRequest, rr.Code)
	})

	s.Run("malformed body rejected", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/protocols", "{not json")
		rr := testutil.DoRequest(s.router, req)

		s.Equal(http.StatusBadRequest, rr.Code)
	})
}
