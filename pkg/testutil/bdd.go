package testutil

import "testing"

// Given, When, and Then wrap subtests with a narrative prefix so an
// onboarding scenario reads as a story in test output ("Given the assembled
// API/When an assigned employee starts a run/Then ..."). They are plain
// subtests, not a BDD framework.
func Given(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Given "+desc, fn)
}

func When(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("When "+desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Then "+desc, fn)
}
