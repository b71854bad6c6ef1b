// Package redis provides Redis client initialization and health checking
// for the page-view analytics backend.
//
// Connect validates the connection URL, establishes a client with retry
// logic, and verifies connectivity with a ping before returning.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrEmptyConnectionURL indicates no Redis URL was configured.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")

	// ErrFailedToParseConnString indicates an invalid Redis URL.
	ErrFailedToParseConnString = errors.New("redis: failed to parse connection string")

	// ErrNotReady indicates Redis did not become reachable within the
	// configured retry budget.
	ErrNotReady = errors.New("redis: did not become ready")
)

// Config provides environment-based configuration for the Redis client.
type Config struct {
	ConnectionURL string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
}

// Connect creates a Redis client and verifies connectivity with a ping,
// retrying per the configured attempts and interval.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseConnString, err)
	}

	client := redis.NewClient(opts)
	attempts := max(cfg.RetryAttempts, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				_ = client.Close()
				return nil, ctx.Err()
			case <-time.After(cfg.RetryInterval):
			}
		}

		if err := client.Ping(ctx).Err(); err != nil {
			lastErr = err
			continue
		}
		return client, nil
	}

	_ = client.Close()
	return nil, fmt.Errorf("%w: %w", ErrNotReady, lastErr)
}

// Healthcheck returns a probe function suitable for readiness endpoints.
func Healthcheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
