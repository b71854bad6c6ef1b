package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on top of a pgx connection pool.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed admin store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// FindAdminByUserID looks up the allow-list entry for userID.
func (s *PostgresStore) FindAdminByUserID(ctx context.Context, userID uuid.UUID) (Admin, error) {
	const query = `SELECT id, user_id, role, created_at FROM admins WHERE user_id = $1`

	var admin Admin
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&admin.ID,
		&admin.UserID,
		&admin.Role,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Admin{}, ErrNotFound
		}
		return Admin{}, fmt.Errorf("authz: find admin by user id: %w", err)
	}

	return admin, nil
}
