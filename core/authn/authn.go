// Package authn defines the contract for the external session provider that
// validates and refreshes authentication sessions from request cookies.
//
// The chain treats the session itself as opaque: a request either resolves
// to an authenticated User or it does not. Token structure, rotation policy,
// and persistence all belong to the provider.
package authn

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// User is the authenticated identity resolved from a session.
type User struct {
	ID    uuid.UUID
	Email string
}

// IsZero reports whether the user carries no identity.
func (u User) IsZero() bool {
	return u.ID == uuid.Nil
}

// Provider is the external session service consumed by the chain.
//
// Refresh validates and rotates the auth session embedded in the request
// cookies and returns any updated session cookies that must be forwarded to
// the client. An empty slice means the session needed no rotation.
//
// CurrentUser resolves the authenticated user for the request, returning
// ErrNoSession when the request carries no valid session.
type Provider interface {
	Refresh(ctx context.Context, r *http.Request) ([]*http.Cookie, error)
	CurrentUser(ctx context.Context, r *http.Request) (User, error)
}
