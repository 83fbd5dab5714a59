package session

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
)

type AdapterSuite struct {
	suite.Suite
	store   *InMemoryStore
	adapter *Adapter
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterSuite))
}

func (s *AdapterSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.adapter = NewAdapter(s.store, slog.Default())
}

func (s *AdapterSuite) TestPersist() {
	ctx := context.Background()

	s.Run("valid blob overwrites exactly three keys", func() {
		blob := []byte(`{"assigned_project_id":"PROJ-ALPHA","employee_mail":"maria.rosa@enterprise.com","employee_role":"Developer"}`)

		result := s.adapter.Persist(ctx, blob)
		s.Equal(200, result.Status)
		s.Equal(3, s.store.Len())

		projectID, err := s.store.Get(ctx, KeyProjectID)
		s.Require().NoError(err)
		s.Equal("PROJ-ALPHA", projectID)
		email, err := s.store.Get(ctx, KeyUserEmail)
		s.Require().NoError(err)
		s.Equal("maria.rosa@enterprise.com", email)
		role, err := s.store.Get(ctx, KeyUserRole)
		s.Require().NoError(err)
		s.Equal("Developer", role)
	})

	s.Run("malformed blob yields 500 and zero mutations", func() {
		store := NewInMemoryStore()
		adapter := NewAdapter(store, slog.Default())

		result := adapter.Persist(ctx, []byte(`{not json`))
		s.Equal(500, result.Status)
		s.Equal(0, store.Len())
	})

	s.Run("absent optional fields persist as empty values", func() {
		store := NewInMemoryStore()
		adapter := NewAdapter(store, slog.Default())

		result := adapter.Persist(ctx, []byte(`{"assigned_project_id":"PROJ-ALPHA"}`))
		s.Equal(200, result.Status)
		s.Equal(3, store.Len())

		email, err := store.Get(ctx, KeyUserEmail)
		s.Require().NoError(err)
		s.Empty(email)
	})

	s.Run("a later persist overwrites prior state under the same keys", func() {
		first := []byte(`{"assigned_project_id":"PROJ-ALPHA","employee_mail":"maria.rosa@enterprise.com","employee_role":"Developer"}`)
		second := []byte(`{"assigned_project_id":"PROJ-ALPHA","employee_mail":"bob.lover@enterprise.com","employee_role":"UX Designer"}`)

		s.adapter.Persist(ctx, first)
		result := s.adapter.Persist(ctx, second)
		s.Equal(200, result.Status)

		role, err := s.store.Get(ctx, KeyUserRole)
		s.Require().NoError(err)
		s.Equal("UX Designer", role)
	})
}
