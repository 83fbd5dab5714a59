package store

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"gangway/internal/protocol/metrics"
)

type DeterministicStoreSuite struct {
	suite.Suite
	store *Deterministic
}

func TestDeterministicStoreSuite(t *testing.T) {
	suite.Run(t, new(DeterministicStoreSuite))
}

func (s *DeterministicStoreSuite) SetupTest() {
	s.store = NewDeterministic(nil)
}

func (s *DeterministicStoreSuite) TestGetProtocol() {
	ctx := context.Background()

	s.Run("known project returns active protocol", func() {
		outcome := s.store.GetProtocol(ctx, "PROJ-ALPHA")
		s.Equal(200, outcome.Status)
		s.True(outcome.ProtocolFound)
		s.Equal("v2.1", outcome.ProtocolVersion)
		s.NotEmpty(outcome.RequiredSteps)
		s.False(outcome.AuthorizedToCreate)
	})

	s.Run("internal steps precede external steps", func() {
		outcome := s.store.GetProtocol(ctx, "PROJ-ALPHA")
		s.Equal([]string{
			"Gchat Provisioning",
			"Drive Access Setup",
			"Onboarding Checklist Update",
			"Client Azure Account Request",
			"Client Repo Access",
		}, outcome.RequiredSteps)
	})

	s.Run("creatable project returns 404 with creation authorized", func() {
		outcome := s.store.GetProtocol(ctx, "PROJ-BETA")
		s.Equal(404, outcome.Status)
		s.False(outcome.ProtocolFound)
		s.True(outcome.AuthorizedToCreate)
	})

	s.Run("unknown project returns 404 without creation authorization", func() {
		outcome := s.store.GetProtocol(ctx, "PROJ-OMEGA")
		s.Equal(404, outcome.Status)
		s.False(outcome.ProtocolFound)
		s.False(outcome.AuthorizedToCreate)
	})

	s.Run("lookups are idempotent", func() {
		first := s.store.GetProtocol(ctx, "PROJ-ALPHA")
		second := s.store.GetProtocol(ctx, "PROJ-ALPHA")
		s.Equal(first, second)
	})
}

func (s *DeterministicStoreSuite) TestCreateProtocol() {
	ctx := context.Background()

	outcome := s.store.CreateProtocol(ctx, "PROJ-GAMMA", "alice.manfieldr@enterprise.com")
	s.Equal(201, outcome.Status)
	s.Equal("v1.0 (Mock Draft)", outcome.ProtocolVersion)

	// Creation persists nothing in this mode.
	lookup := s.store.GetProtocol(ctx, "PROJ-GAMMA")
	s.Equal(404, lookup.Status)
}

func (s *DeterministicStoreSuite) TestRecordsLookupMetrics() {
	ctx := context.Background()

	// Unregistered collectors so the test does not touch the default registry.
	m := &metrics.Metrics{
		LookupOutcome: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gangway_protocol_lookups_total",
		}, []string{"operation", "status"}),
		LookupLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "gangway_protocol_lookup_duration_seconds",
		}, []string{"operation"}),
	}
	store := NewDeterministic(m)

	store.GetProtocol(ctx, "PROJ-ALPHA")
	store.GetProtocol(ctx, "PROJ-OMEGA")
	store.CreateProtocol(ctx, "PROJ-BETA", "maria.rosa@enterprise.com")
	store.GetSpaces(ctx, "PROJ-ALPHA")

	s.Equal(float64(1), promtestutil.ToFloat64(m.LookupOutcome.WithLabelValues("get", "200")))
	s.Equal(float64(1), promtestutil.ToFloat64(m.LookupOutcome.WithLabelValues("get", "404")))
	s.Equal(float64(1), promtestutil.ToFloat64(m.LookupOutcome.WithLabelValues("create", "201")))
	s.Equal(float64(1), promtestutil.ToFloat64(m.LookupOutcome.WithLabelValues("spaces", "200")))
}

func (s *DeterministicStoreSuite) TestGetSpaces() {
	ctx := context.Background()

	s.Run("known project lists spaces", func() {
		outcome := s.store.GetSpaces(ctx, "PROJ-ALPHA")
		s.Equal(200, outcome.Status)
		s.Equal([]string{"spaces/ALPHA-GENERAL", "spaces/ALPHA-DEV"}, outcome.Spaces)
	})

	s.Run("unknown project returns empty list", func() {
		outcome := s.store.GetSpaces(ctx, "PROJ-OMEGA")
		s.Equal(404, outcome.Status)
		s.Empty(outcome.Spaces)
	})
}
