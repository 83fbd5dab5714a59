package testutil

import (
	"net/http"

	"gangway/pkg/requestcontext"
)

// WithIdentity adds an authenticated identity email to the request context.
// This simulates what the identity middleware would do for authenticated requests.
func WithIdentity(req *http.Request, email string) *http.Request {
	ctx := requestcontext.WithIdentityEmail(req.Context(), email)
	return req.WithContext(ctx)
}
