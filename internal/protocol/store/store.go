// Package store owns the persistent table of protocol artifacts. Two variants
// implement the same capability interface: a deterministic in-memory table
// for reproducible runs and a PostgreSQL table for live operation. The
// variant is selected once at construction; callers never branch on mode.
package store

import (
	"context"
	"strings"

	"gangway/internal/protocol/models"
	"gangway/pkg/requestcontext"
)

// Store is the outcome-coded protocol backend. Implementations catch every
// internal failure and translate it into a status-coded outcome; no method
// returns a Go error.
type Store interface {
	// GetProtocol retrieves the active protocol artifact for a project.
	GetProtocol(ctx context.Context, projectID string) models.ProtocolOutcome
	// CreateProtocol persists a new draft artifact for a project.
	CreateProtocol(ctx context.Context, projectID, principalEmail string) models.ProtocolOutcome
	// GetSpaces lists the collaboration spaces the project's protocol provisions.
	GetSpaces(ctx context.Context, projectID string) models.SpacesOutcome
}

// CreationPolicy decides whether the current caller may create a missing
// protocol artifact. Live mode derives authorization from an explicit policy
// check, never from the project ID's literal value.
type CreationPolicy interface {
	AuthorizedToCreate(ctx context.Context, projectID string) bool
}

// DomainAllowlist authorizes creation when the authenticated caller's email
// belongs to one of the allowed domains.
type DomainAllowlist struct {
	domains []string
}

// NewDomainAllowlist builds a policy over the given email domains.
func NewDomainAllowlist(domains ...string) DomainAllowlist {
	return DomainAllowlist{domains: domains}
}

// DefaultCreationPolicy allows the enterprise domain.
func DefaultCreationPolicy() DomainAllowlist {
	return NewDomainAllowlist("enterprise.com")
}

func (a DomainAllowlist) AuthorizedToCreate(ctx context.Context, _ string) bool {
	email := strings.ToLower(requestcontext.IdentityEmail(ctx))
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := email[at+1:]
	for _, allowed := range a.domains {
		if domain == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
