// Package session persists validated onboarding facts into the active
// workflow's shared state, keyed by namespace.
package session

import "context"

// Namespaced state keys. The adapter only ever performs idempotent full-key
// overwrites of these, never partial merges.
const (
	KeyProjectID = "app:project_id"
	KeyUserEmail = "user:email"
	KeyUserRole  = "user:role"
)

// StateStore is the shared session state. Writes are last-writer-wins.
type StateStore interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
}
