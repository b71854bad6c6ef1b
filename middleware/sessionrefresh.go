package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/edgekit/core/authn"
	"github.com/dmitrymomot/edgekit/core/handler"
	"github.com/dmitrymomot/edgekit/core/logger"
)

// SessionRefreshConfig configures the session refresh middleware.
type SessionRefreshConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Provider is the external session service (required)
	Provider authn.Provider
	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger
}

// SessionRefresh creates a session refresh middleware with default
// configuration. It refreshes the auth session on every request.
func SessionRefresh[C handler.Context](provider authn.Provider) handler.Middleware[C] {
	return SessionRefreshWithConfig[C](SessionRefreshConfig{Provider: provider})
}

// SessionRefreshWithConfig creates a session refresh middleware with custom
// configuration.
//
// The stage asks the session provider to validate and rotate the auth
// session embedded in the request cookies before any authorization decision
// is made, and records the rotated session cookies in the request's cookie
// jar so they survive whatever response the inner stages produce. It is a
// pure enrichment stage: it never redirects and never rejects a request.
//
// A provider failure is not recovered here. The error surfaces through the
// returned response and lands in the chain's error handler, which yields a
// generic failure page. These call sites are low-volume, so no retry or
// fallback is attempted.
func SessionRefreshWithConfig[C handler.Context](cfg SessionRefreshConfig) handler.Middleware[C] {
	if cfg.Provider == nil {
		panic("session refresh middleware: provider is required")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			cookies, err := cfg.Provider.Refresh(ctx, ctx.Request())
			if err != nil {
				cfg.Logger.ErrorContext(ctx, "session refresh failed",
					logger.Component("middleware.session_refresh"),
					logger.Path(ctx.Request().URL.Path),
					logger.Error(err),
				)
				return func(http.ResponseWriter, *http.Request) error {
					return fmt.Errorf("middleware: refresh session: %w", err)
				}
			}

			ctx.Cookies().SetAll(cookies)

			return next(ctx)
		}
	}
}
