// Package provisioning grants employees access to collaboration spaces. The
// connector is the transport boundary: mock for deterministic runs, HTTP chat
// API for live operation. The client layers the retry policy on top.
package provisioning

import "context"

// Error types a connector may report. Security failures and missing spaces
// are terminal regardless of the numeric status.
const (
	ErrTypeSecurityFailure    = "SECURITY_FAILURE"
	ErrTypeSpaceNotFound      = "SPACE_NOT_FOUND"
	ErrTypeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrTypePermissionDenied   = "PERMISSION_DENIED"
)

// Outcome is the status-coded result of one provisioning call. Connectors
// never return Go errors; transport failures surface as 503 outcomes.
type Outcome struct {
	Status       int    `json:"status"`
	IsError      bool   `json:"isError"`
	ErrorType    string `json:"error_type,omitempty"`
	Message      string `json:"message"`
	ResourceName string `json:"resource_name,omitempty"`

	// Attempts counts connector calls made before this outcome was final.
	Attempts int `json:"attempts,omitempty"`
	// Exhausted marks an outcome that is only final because the retry budget
	// ran out.
	Exhausted bool `json:"retries_exhausted,omitempty"`
}

// Terminal reports whether the error type forbids further retries regardless
// of the numeric status.
func (o Outcome) Terminal() bool {
	return o.ErrorType == ErrTypeSecurityFailure || o.ErrorType == ErrTypeSpaceNotFound
}

// Connector adds a member to a collaboration space.
type Connector interface {
	AddMember(ctx context.Context, space, email, serviceAccountID string) Outcome
}
