// Package authz provides the administrative allow-list lookup used by the
// auth-gate stage. A user is an administrator if and only if an Admin
// record exists for their user ID.
//
// The Store interface is what the middleware consumes; PostgresStore is the
// deployment default backed by the platform's managed Postgres.
package authz

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Admin is an entry in the administrative allow-list.
type Admin struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Role      string
	CreatedAt time.Time
}

// Store looks up administrative privilege records by user identity.
type Store interface {
	// FindAdminByUserID returns the admin record for userID, or ErrNotFound
	// when the user is not on the allow-list.
	FindAdminByUserID(ctx context.Context, userID uuid.UUID) (Admin, error)
}
