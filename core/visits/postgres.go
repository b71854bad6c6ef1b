package visits

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRecorder implements Recorder by appending page views to the
// page_views table. Suitable when analytics queries live next to the rest
// of the site data in Postgres.
type PostgresRecorder struct {
	db *pgxpool.Pool
}

// NewPostgresRecorder creates a Postgres-backed page view recorder.
func NewPostgresRecorder(db *pgxpool.Pool) *PostgresRecorder {
	return &PostgresRecorder{db: db}
}

// Record persists the page view.
func (r *PostgresRecorder) Record(ctx context.Context, view PageView) error {
	const query = `
		INSERT INTO page_views (fingerprint, ip, path, referrer, user_agent, viewed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	at := view.At
	if at.IsZero() {
		at = time.Now()
	}

	if _, err := r.db.Exec(ctx, query,
		view.Fingerprint,
		view.IP,
		view.Path,
		view.Referrer,
		view.UserAgent,
		at,
	); err != nil {
		return fmt.Errorf("visits: insert page view: %w", err)
	}
	return nil
}
