package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"gangway/internal/protocol/store"
)

type ProtocolServiceSuite struct {
	suite.Suite
	service *Service
}

func TestProtocolServiceSuite(t *testing.T) {
	suite.Run(t, new(ProtocolServiceSuite))
}

func (s *ProtocolServiceSuite) SetupTest() {
	s.service = New(store.NewDeterministic(nil), slog.Default())
}

func (s *ProtocolServiceSuite) TestGetProtocolStatusPassesThrough() {
	ctx := context.Background()

	outcome := s.service.GetProtocolStatus(ctx, "PROJ-ALPHA")
	s.Equal(200, outcome.Status)
	s.True(outcome.ProtocolFound)

	missing := s.service.GetProtocolStatus(ctx, "PROJ-BETA")
	s.Equal(404, missing.Status)
	s.True(missing.AuthorizedToCreate)
}

func (s *ProtocolServiceSuite) TestCreateNewProtocolDraftPassesThrough() {
	outcome := s.service.CreateNewProtocolDraft(context.Background(), "PROJ-BETA", "maria.rosa@enterprise.com")
	s.Equal(201, outcome.Status)
	s.NotEmpty(outcome.ProtocolVersion)
}

func (s *ProtocolServiceSuite) TestGetSpacesPassesThrough() {
	outcome := s.service.GetSpaces(context.Background(), "PROJ-ALPHA")
	s.Equal(200, outcome.Status)
	s.Len(outcome.Spaces, 2)
}
