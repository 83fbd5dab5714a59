// Package identity resolves employee identities and mints the bearer tokens
// the HTTP layer accepts.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// AnonymousEmail is the fallback identity for unauthenticated access.
const AnonymousEmail = "anonymous@enterprise.com"

// Identity is a resolved employee identity.
type Identity struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
}

// Resolve builds an identity from an email address. An empty email resolves
// to the anonymous identity; otherwise the display name is derived from the
// local part ("maria.rosa" becomes "Maria Rosa").
func Resolve(email string) Identity {
	if email == "" {
		return Identity{
			UserID:      uuid.New(),
			Email:       AnonymousEmail,
			DisplayName: "Anonymous User",
		}
	}
	return Identity{
		UserID:      uuid.New(),
		Email:       email,
		DisplayName: displayName(email),
	}
}

func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	words := strings.Split(strings.ReplaceAll(local, ".", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
