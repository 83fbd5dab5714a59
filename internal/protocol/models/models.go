// Package models defines the protocol artifact and the outcome records the
// store emits. Outcomes are status-coded: the store boundary never lets a raw
// error escape, so callers branch on Status alone.
package models

// StepSet partitions required onboarding steps by audience.
type StepSet struct {
	Internal []string `yaml:"internal" json:"internal"`
	External []string `yaml:"external" json:"external"`
}

// Flatten returns the ordered step list, internal steps first.
func (s StepSet) Flatten() []string {
	if len(s.Internal) == 0 && len(s.External) == 0 {
		return nil
	}
	steps := make([]string, 0, len(s.Internal)+len(s.External))
	steps = append(steps, s.Internal...)
	steps = append(steps, s.External...)
	return steps
}

// ProtocolArtifact is the stored record describing what onboarding steps a
// project requires. At most one active artifact exists per project ID.
type ProtocolArtifact struct {
	ProjectID      string   `yaml:"project_id" json:"project_id"`
	PrincipalEmail string   `yaml:"principal_email" json:"principal_email"`
	Version        string   `yaml:"version" json:"version"`
	RequiredSteps  StepSet  `yaml:"required_steps" json:"required_steps"`
	Spaces         []string `yaml:"spaces" json:"spaces"`
	IsActive       bool     `yaml:"is_active" json:"is_active"`
}

// ProtocolOutcome is the immutable result of a lookup or creation attempt.
//
// Invariants: Status 200 implies ProtocolFound with non-nil RequiredSteps;
// Status 404 with AuthorizedToCreate true is the only path that yields a 201
// on retry-with-creation.
type ProtocolOutcome struct {
	Status             int      `json:"status"`
	ProtocolFound      bool     `json:"protocol_found"`
	ProtocolVersion    string   `json:"protocol_version,omitempty"`
	RequiredSteps      []string `json:"required_steps"`
	AuthorizedToCreate bool     `json:"is_user_authorized_to_create"`
	Message            string   `json:"message"`
}

// SpacesOutcome lists the collaboration spaces a protocol provisions.
type SpacesOutcome struct {
	Status  int      `json:"status"`
	Spaces  []string `json:"spaces_list"`
	Message string   `json:"message"`
}

// Found builds the outcome for a retrieved artifact.
func Found(version string, steps []string, message string) ProtocolOutcome {
	if steps == nil {
		steps = []string{}
	}
	return ProtocolOutcome{
		Status:          200,
		ProtocolFound:   true,
		ProtocolVersion: version,
		RequiredSteps:   steps,
		Message:         message,
	}
}

// NotFound builds the outcome for a missing artifact.
func NotFound(authorizedToCreate bool, message string) ProtocolOutcome {
	return ProtocolOutcome{
		Status:             404,
		AuthorizedToCreate: authorizedToCreate,
		Message:            message,
	}
}

// Created builds the outcome for a freshly persisted draft.
func Created(version, message string) ProtocolOutcome {
	return ProtocolOutcome{
		Status:          201,
		ProtocolFound:   true,
		ProtocolVersion: version,
		Message:         message,
	}
}

// Offline builds the outcome for a store whose backend never came up.
func Offline(message string) ProtocolOutcome {
	return ProtocolOutcome{Status: 503, Message: message}
}

// QueryFailed builds the outcome for a query-time backend failure.
func QueryFailed(message string) ProtocolOutcome {
	return ProtocolOutcome{Status: 500, Message: message}
}
