package visits

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// defaultSessionTTL matches the fingerprint cookie lifetime: a browsing
	// session's last-seen record expires with its fingerprint.
	defaultSessionTTL = time.Hour

	countKeyPrefix   = "pageviews:count:"
	sessionKeyPrefix = "pageviews:session:"
)

// RedisRecorder implements Recorder on top of a Redis client. Each page
// view increments a per-path counter and refreshes the browsing session's
// last-seen hash.
type RedisRecorder struct {
	client     redis.UniversalClient
	sessionTTL time.Duration
}

// RedisOption configures a RedisRecorder.
type RedisOption func(*RedisRecorder)

// WithSessionTTL overrides the last-seen record lifetime.
func WithSessionTTL(ttl time.Duration) RedisOption {
	return func(r *RedisRecorder) {
		if ttl > 0 {
			r.sessionTTL = ttl
		}
	}
}

// NewRedisRecorder creates a Redis-backed page view recorder.
func NewRedisRecorder(client redis.UniversalClient, opts ...RedisOption) *RedisRecorder {
	r := &RedisRecorder{
		client:     client,
		sessionTTL: defaultSessionTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record persists the page view.
func (r *RedisRecorder) Record(ctx context.Context, view PageView) error {
	at := view.At
	if at.IsZero() {
		at = time.Now()
	}

	pipe := r.client.Pipeline()
	pipe.Incr(ctx, countKeyPrefix+view.Path)
	sessionKey := sessionKeyPrefix + view.Fingerprint
	pipe.HSet(ctx, sessionKey, map[string]any{
		"path":       view.Path,
		"ip":         view.IP,
		"referrer":   view.Referrer,
		"user_agent": view.UserAgent,
		"at":         strconv.FormatInt(at.Unix(), 10),
	})
	pipe.Expire(ctx, sessionKey, r.sessionTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("visits: record page view: %w", err)
	}
	return nil
}

// Count returns the total recorded views for a path.
func (r *RedisRecorder) Count(ctx context.Context, path string) (int64, error) {
	val, err := r.client.Get(ctx, countKeyPrefix+path).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("visits: read page view count: %w", err)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("visits: parse page view count: %w", err)
	}
	return count, nil
}
