//go:build integration

package session_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"gangway/internal/session"
	"gangway/pkg/platform/sentinel"
	"gangway/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestSetAndGet() {
	ctx := context.Background()
	store := session.NewRedisStore(s.redis.Client, "run-1")

	s.Require().NoError(store.Set(ctx, session.KeyUserRole, "Developer"))

	value, err := store.Get(ctx, session.KeyUserRole)
	s.Require().NoError(err)
	s.Equal("Developer", value)
}

func (s *RedisStoreSuite) TestMissingKey() {
	store := session.NewRedisStore(s.redis.Client, "run-1")

	_, err := store.Get(context.Background(), session.KeyProjectID)
	s.True(errors.Is(err, sentinel.ErrNotFound))
}

func (s *RedisStoreSuite) TestNamespacesAreIsolated() {
	ctx := context.Background()
	first := session.NewRedisStore(s.redis.Client, "run-1")
	second := session.NewRedisStore(s.redis.Client, "run-2")

	s.Require().NoError(first.Set(ctx, session.KeyProjectID, "PROJ-ALPHA"))

	_, err := second.Get(ctx, session.KeyProjectID)
	s.True(errors.Is(err, sentinel.ErrNotFound))
}

func (s *RedisStoreSuite) TestAdapterOverRedis() {
	ctx := context.Background()
	store := session.NewRedisStore(s.redis.Client, "run-3")
	adapter := session.NewAdapter(store, slog.Default())

	result := adapter.Persist(ctx, []byte(`{"assigned_project_id":"PROJ-ALPHA","employee_mail":"maria.rosa@enterprise.com","employee_role":"Developer"}`))
	s.Equal(200, result.Status)

	email, err := store.Get(ctx, session.KeyUserEmail)
	s.Require().NoError(err)
	s.Equal("maria.rosa@enterprise.com", email)
}
