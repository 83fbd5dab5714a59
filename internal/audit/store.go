// Package audit records an append-only trail of onboarding run actions.
// Events flow through a channel-fed worker so domain code never blocks on
// the sink.
package audit

import "context"

// Store is the append-only audit persistence boundary.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByRun(ctx context.Context, runID string) ([]Event, error)
}
