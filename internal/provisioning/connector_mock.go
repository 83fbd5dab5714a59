package provisioning

import (
	"context"
	"fmt"
	"strings"
)

// MockConnector is the deterministic connector for the test profile. Its
// response table exercises every failure class the retry client must handle:
// identity mismatch, transient unavailability, and a missing space.
type MockConnector struct {
	authorizedSAID string
}

// NewMockConnector builds the mock over the expected least-privilege service
// account ID.
func NewMockConnector(authorizedSAID string) *MockConnector {
	return &MockConnector{authorizedSAID: authorizedSAID}
}

func (c *MockConnector) AddMember(_ context.Context, space, email, serviceAccountID string) Outcome {
	if serviceAccountID != c.authorizedSAID {
		return Outcome{
			Status:    403,
			IsError:   true,
			ErrorType: ErrTypeSecurityFailure,
			Message:   fmt.Sprintf("Authorization failed: identity mismatch. Must use '%s'. Execution blocked.", c.authorizedSAID),
		}
	}

	if strings.HasPrefix(space, "spaces/FAIL_TRANSIENT") {
		return Outcome{
			Status:    503,
			IsError:   true,
			ErrorType: ErrTypeServiceUnavailable,
			Message:   "Chat service is temporarily unavailable.",
		}
	}

	if strings.HasPrefix(space, "spaces/FAIL_PERMANENT") {
		return Outcome{
			Status:    404,
			IsError:   true,
			ErrorType: ErrTypeSpaceNotFound,
			Message:   "The specified space was not found. Provisioning aborted for this space.",
		}
	}

	return Outcome{
		Status:       200,
		Message:      fmt.Sprintf("Membership created for %s.", email),
		ResourceName: fmt.Sprintf("%s/members/%s", space, email),
	}
}
