package middleware

import (
	"io"
	"log/slog"
	"net/url"
	"slices"

	"github.com/dmitrymomot/edgekit/core/authn"
	"github.com/dmitrymomot/edgekit/core/authz"
	"github.com/dmitrymomot/edgekit/core/handler"
	"github.com/dmitrymomot/edgekit/core/locale"
	"github.com/dmitrymomot/edgekit/core/logger"
	"github.com/dmitrymomot/edgekit/core/response"
	"github.com/dmitrymomot/edgekit/pkg/pathmatch"
)

// authUserContextKey is used as a key for storing the authenticated admin
// user in request context.
type authUserContextKey struct{}

// AuthGateConfig configures the admin auth gate middleware.
type AuthGateConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Sessions resolves the authenticated user for a request (required)
	Sessions authn.Provider
	// Admins is the administrative allow-list lookup (required)
	Admins authz.Store
	// Paths classifies request paths (required)
	Paths *pathmatch.Classifier
	// Locales resolves the locale for redirect targets (required)
	Locales *locale.Locales
	// LoginPath is the locale-relative login page path (default "/auth/login")
	LoginPath string
	// AdminHomePath is the landing sub-path the bare admin root normalizes
	// to (default "/admin/dashboard")
	AdminHomePath string
	// PublicPaths lists admin-area paths reachable without authentication
	PublicPaths []string
	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger
}

// AuthGate creates an admin auth gate middleware.
//
// Requests outside the admin area pass through untouched. Admin-area
// requests require a valid session and membership in the admin allow-list:
//
//   - no valid session: redirect to the localized login page with a
//     redirectTo parameter carrying the original path
//   - valid session but no admin record (or lookup failure): redirect to
//     the localized login page with error=unauthorized
//   - the bare admin root: redirect to the admin landing sub-path
//   - otherwise: pass through, with the authenticated user stored in
//     context for downstream consumers
//
// Redirect targets take their locale from the raw locale cookie, falling
// back to the configured default. The locale-routing stage runs later in
// the chain, so a first-ever visit with no cookie gets the default locale
// here even if locale routing would resolve differently.
func AuthGate[C handler.Context](cfg AuthGateConfig) handler.Middleware[C] {
	if cfg.Sessions == nil {
		panic("auth gate middleware: session provider is required")
	}
	if cfg.Admins == nil {
		panic("auth gate middleware: admin store is required")
	}
	if cfg.Paths == nil {
		panic("auth gate middleware: path classifier is required")
	}
	if cfg.Locales == nil {
		panic("auth gate middleware: locales are required")
	}

	if cfg.LoginPath == "" {
		cfg.LoginPath = "/auth/login"
	}
	if cfg.AdminHomePath == "" {
		cfg.AdminHomePath = cfg.Paths.AdminPrefix() + "/dashboard"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			r := ctx.Request()
			path := r.URL.Path

			if !cfg.Paths.IsAdmin(path) {
				return next(ctx)
			}

			if slices.Contains(cfg.PublicPaths, path) {
				return next(ctx)
			}

			loc := cfg.Locales.FromCookie(r)
			loginURL := "/" + loc + cfg.LoginPath

			user, err := cfg.Sessions.CurrentUser(ctx, r)
			if err != nil {
				cfg.Logger.InfoContext(ctx, "unauthenticated admin access",
					logger.Component("middleware.auth_gate"),
					logger.Path(path),
					logger.Error(err),
				)
				query := url.Values{"redirectTo": {path}}
				return response.Redirect(loginURL + "?" + query.Encode())
			}

			if _, err := cfg.Admins.FindAdminByUserID(ctx, user.ID); err != nil {
				cfg.Logger.WarnContext(ctx, "unauthorized admin access",
					logger.Component("middleware.auth_gate"),
					logger.Path(path),
					slog.String("user_id", user.ID.String()),
					logger.Error(err),
				)
				return response.Redirect(loginURL + "?error=unauthorized")
			}

			if cfg.Paths.IsAdminRoot(path) {
				return response.Redirect(cfg.AdminHomePath)
			}

			ctx.SetValue(authUserContextKey{}, user)

			return next(ctx)
		}
	}
}

// GetAuthUser retrieves the authenticated admin user from the request
// context. Returns the user and a boolean indicating whether it was found.
func GetAuthUser(ctx handler.Context) (authn.User, bool) {
	user, ok := ctx.Value(authUserContextKey{}).(authn.User)
	return user, ok
}
