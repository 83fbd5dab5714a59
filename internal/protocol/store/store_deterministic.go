package store

import (
	"context"
	"sync"
	"time"

	"gangway/internal/protocol/metrics"
	"gangway/internal/protocol/models"
)

// Deterministic serves a fixed response table so runs are reproducible
// without a database. Lookups are pure: repeated calls with the same project
// ID return identical outcomes. Creation returns canned draft data and
// persists nothing.
type Deterministic struct {
	mu       sync.RWMutex
	fixtures map[string]models.ProtocolArtifact
	metrics  *metrics.Metrics

	// Authorized-to-create on a miss is fixture behavior keyed by project ID,
	// mirroring the table this mode replaces. Live mode uses CreationPolicy.
	creatable map[string]bool
}

// NewDeterministic builds the deterministic store with the canonical fixture
// table: PROJ-ALPHA exists, PROJ-BETA is missing but creatable, everything
// else is missing and blocked. m may be nil.
func NewDeterministic(m *metrics.Metrics) *Deterministic {
	alpha := models.ProtocolArtifact{
		ProjectID:      "PROJ-ALPHA",
		PrincipalEmail: "system_admin@enterprise.com",
		Version:        "v2.1",
		RequiredSteps: models.StepSet{
			Internal: []string{"Gchat Provisioning", "Drive Access Setup", "Onboarding Checklist Update"},
			External: []string{"Client Azure Account Request", "Client Repo Access"},
		},
		Spaces:   []string{"spaces/ALPHA-GENERAL", "spaces/ALPHA-DEV"},
		IsActive: true,
	}
	return &Deterministic{
		fixtures:  map[string]models.ProtocolArtifact{alpha.ProjectID: alpha},
		metrics:   m,
		creatable: map[string]bool{"PROJ-BETA": true},
	}
}

func (d *Deterministic) GetProtocol(ctx context.Context, projectID string) models.ProtocolOutcome {
	start := time.Now()
	outcome := d.getProtocol(ctx, projectID)
	d.metrics.RecordLookup("get", outcome.Status, time.Since(start))
	return outcome
}

func (d *Deterministic) getProtocol(_ context.Context, projectID string) models.ProtocolOutcome {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if artifact, ok := d.fixtures[projectID]; ok && artifact.IsActive {
		return models.Found(artifact.Version, artifact.RequiredSteps.Flatten(), "Protocol found and ready for execution.")
	}
	if d.creatable[projectID] {
		return models.NotFound(true, "Protocol not found. User needs to initiate creation workflow.")
	}
	return models.NotFound(false, "Project ID not recognized.")
}

func (d *Deterministic) CreateProtocol(ctx context.Context, projectID, principalEmail string) models.ProtocolOutcome {
	start := time.Now()
	outcome := d.createProtocol(ctx, projectID, principalEmail)
	d.metrics.RecordLookup("create", outcome.Status, time.Since(start))
	return outcome
}

func (d *Deterministic) createProtocol(_ context.Context, projectID, principalEmail string) models.ProtocolOutcome {
	_ = projectID
	_ = principalEmail
	return models.Created("v1.0 (Mock Draft)", "New protocol draft successfully created.")
}

func (d *Deterministic) GetSpaces(ctx context.Context, projectID string) models.SpacesOutcome {
	start := time.Now()
	outcome := d.getSpaces(ctx, projectID)
	d.metrics.RecordLookup("spaces", outcome.Status, time.Since(start))
	return outcome
}

func (d *Deterministic) getSpaces(_ context.Context, projectID string) models.SpacesOutcome {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if artifact, ok := d.fixtures[projectID]; ok && artifact.IsActive {
		spaces := make([]string, len(artifact.Spaces))
		copy(spaces, artifact.Spaces)
		return models.SpacesOutcome{Status: 200, Spaces: spaces, Message: "Protocol found and ready for execution."}
	}
	return models.SpacesOutcome{Status: 404, Spaces: []string{}, Message: "Project ID not recognized."}
}
