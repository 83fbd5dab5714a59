// Package seed holds the canonical protocol artifact the live store is primed
// with, plus optional loading of an operator-supplied YAML override.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gangway/internal/protocol/models"
)

// Default returns the canonical seed artifact for PROJ-ALPHA.
func Default() models.ProtocolArtifact {
	return models.ProtocolArtifact{
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
}

// Load reads a seed artifact from a YAML file. Fields omitted from the file
// keep their Default values, so a partial override stays valid.
func Load(path string) (models.ProtocolArtifact, error) {
	artifact := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return artifact, fmt.Errorf("read seed file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &artifact); err != nil {
		return artifact, fmt.Errorf("parse seed file: %w", err)
	}
	if artifact.ProjectID == "" {
		return artifact, fmt.Errorf("seed file %s: project_id is required", path)
	}
	return artifact, nil
}
