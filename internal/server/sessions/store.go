// Package sessions holds server-side session state keyed by an opaque token.
// The store is an explicit dependency injected into every authenticated
// operation; there is no ambient global session. Session lifetime is bounded
// only by explicit logout or process restart; there is no rotation or expiry.
package sessions

import "artcatalog/internal/server/models"

// Session associates a request with an authenticated user and role.
type Session struct {
	UserID   int64
	Username string
	Role     models.Role
}

// Store issues, resolves and destroys sessions.
type Store interface {
	// Create registers the session and returns its opaque token.
	Create(s Session) string

	// Get resolves a token; ok is false for unknown or destroyed tokens.
	Get(token string) (Session, bool)

	// Destroy invalidates the token. Destroying an unknown token is a no-op.
	Destroy(token string)
}
