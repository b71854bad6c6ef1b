package middleware

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/edgekit/core/cookie"
	"github.com/dmitrymomot/edgekit/core/handler"
	"github.com/dmitrymomot/edgekit/core/locale"
	"github.com/dmitrymomot/edgekit/core/logger"
	"github.com/dmitrymomot/edgekit/core/response"
	"github.com/dmitrymomot/edgekit/pkg/pathmatch"
)

// localeContextKey is used as a key for storing the resolved locale in
// request context.
type localeContextKey struct{}

// LocaleRoutingConfig configures the locale routing middleware.
type LocaleRoutingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Paths classifies request paths (required)
	Paths *pathmatch.Classifier
	// Locales is the supported-locale configuration (required)
	Locales *locale.Locales
	// Cookies builds the locale preference cookie
	// (default: strict same-site, JS-readable, root path)
	Cookies *cookie.Manager
	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger
}

// LocaleRouting creates a locale routing middleware with default
// configuration.
func LocaleRouting[C handler.Context](paths *pathmatch.Classifier, locales *locale.Locales) handler.Middleware[C] {
	return LocaleRoutingWithConfig[C](LocaleRoutingConfig{
		Paths:   paths,
		Locales: locales,
	})
}

// LocaleRoutingWithConfig creates a locale routing middleware with custom
// configuration.
//
// For every non-admin, non-API, non-asset path the stage guarantees a
// locale-prefixed URL and a matching locale cookie:
//
//   - "/" redirects to "/{locale}" using the cookie-or-default locale
//   - already-prefixed paths pass through and adopt the path's locale
//   - unprefixed paths redirect to "/{locale}{path}", query preserved
//
// Whatever locale the request resolves to is written to the preference
// cookie (one year, strict same-site, root path) on every pass — the
// invariant is that every non-excluded response carries a locale cookie
// matching its resolved locale. Admin paths are excluded entirely: their
// locale handling is deferred to the admin screens themselves.
func LocaleRoutingWithConfig[C handler.Context](cfg LocaleRoutingConfig) handler.Middleware[C] {
	if cfg.Paths == nil {
		panic("locale routing middleware: path classifier is required")
	}
	if cfg.Locales == nil {
		panic("locale routing middleware: locales are required")
	}

	if cfg.Cookies == nil {
		// The locale cookie is read by client-side scripts, so no HttpOnly
		cfg.Cookies = cookie.New(
			cookie.WithSameSite(http.SameSiteStrictMode),
			cookie.WithHTTPOnly(false),
		)
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

			if cfg.Paths.IsAdmin(path) {
				return next(ctx)
			}
			if cfg.Paths.IsAPI(path) || cfg.Paths.IsAsset(path) {
				return next(ctx)
			}

			search := ""
			if r.URL.RawQuery != "" {
				search = "?" + r.URL.RawQuery
			}

			current := cfg.Locales.FromCookie(r)
			loc, _, prefixed := cfg.Paths.SplitLocale(path)
			if prefixed {
				current = loc
			}

			// Resolve before dispatching so inner stages see the locale
			ctx.SetValue(localeContextKey{}, current)

			var resp handler.Response
			switch {
			case path == "/":
				resp = response.Redirect("/" + current + search)
			case prefixed:
				resp = next(ctx)
			default:
				resp = response.Redirect("/" + current + path + search)
			}

			if err := cfg.Cookies.Set(ctx.Cookies(), cfg.Locales.CookieName(), current,
				cookie.WithMaxAge(cfg.Locales.CookieMaxAge()),
			); err != nil {
				cfg.Logger.ErrorContext(ctx, "failed to set locale cookie",
					logger.Component("middleware.locale_routing"),
					logger.Path(path),
					logger.Error(err),
				)
			}

			return resp
		}
	}
}

// GetLocale retrieves the resolved locale from the request context.
// Returns the locale code and a boolean indicating whether it was found.
func GetLocale(ctx handler.Context) (string, bool) {
	loc, ok := ctx.Value(localeContextKey{}).(string)
	return loc, ok
}
