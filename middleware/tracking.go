package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/edgekit/core/cookie"
	"github.com/dmitrymomot/edgekit/core/handler"
	"github.com/dmitrymomot/edgekit/core/logger"
	"github.com/dmitrymomot/edgekit/core/visits"
	"github.com/dmitrymomot/edgekit/pkg/clientip"
	"github.com/dmitrymomot/edgekit/pkg/fingerprint"
	"github.com/dmitrymomot/edgekit/pkg/pathmatch"
)

// fingerprintContextKey is used as a key for storing the session
// fingerprint in request context.
type fingerprintContextKey struct{}

// Default cookie and header names for the tracking stage.
const (
	DefaultFingerprintCookie = "session_fingerprint"

	// DefaultFingerprintMaxAge scopes a browsing session to one hour.
	DefaultFingerprintMaxAge = 60 * 60

	HeaderFingerprint = "X-Session-Fingerprint"
	HeaderClientIP    = "X-Client-IP"
	HeaderPath        = "X-Request-Path"
	HeaderReferrer    = "X-Referrer"
)

// unknownValue substitutes missing client metadata; never an error condition.
const unknownValue = "unknown"

// TrackingConfig configures the visit tracking middleware.
type TrackingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Paths classifies request paths (required)
	Paths *pathmatch.Classifier
	// Recorder persists page views (default: discard)
	Recorder visits.Recorder
	// Cookies builds the fingerprint cookie
	// (default: strict same-site, HttpOnly, root path)
	Cookies *cookie.Manager
	// CookieName for the session fingerprint (default "session_fingerprint")
	CookieName string
	// CookieMaxAge for the session fingerprint in seconds (default 1 hour)
	CookieMaxAge int
	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger
}

// Tracking creates a visit tracking middleware with default configuration.
func Tracking[C handler.Context](paths *pathmatch.Classifier) handler.Middleware[C] {
	return TrackingWithConfig[C](TrackingConfig{Paths: paths})
}

// TrackingWithConfig creates a visit tracking middleware with custom
// configuration.
//
// Tracking is additive, never gating: the inner stages run first and their
// response is returned either way. For public paths (not admin, not API,
// not asset) the stage resolves a session fingerprint — reusing the
// request's fingerprint cookie verbatim when present, minting one otherwise
// — refreshes the fingerprint cookie, and stamps the fingerprint, client
// IP, request path, and referrer onto the response headers for client-side
// analytics beacons and log shippers.
//
// When a Recorder is configured the page view is also persisted
// best-effort: recorder failures are logged and never fail the request.
func TrackingWithConfig[C handler.Context](cfg TrackingConfig) handler.Middleware[C] {
	if cfg.Paths == nil {
		panic("tracking middleware: path classifier is required")
	}

	if cfg.Recorder == nil {
		cfg.Recorder = visits.NoopRecorder{}
	}
	if cfg.Cookies == nil {
		cfg.Cookies = cookie.New(
			cookie.WithSameSite(http.SameSiteStrictMode),
			cookie.WithHTTPOnly(true),
		)
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultFingerprintCookie
	}
	if cfg.CookieMaxAge <= 0 {
		cfg.CookieMaxAge = DefaultFingerprintMaxAge
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			resp := next(ctx)

			r := ctx.Request()
			path := r.URL.Path

			if cfg.Paths.IsAdmin(path) || cfg.Paths.IsAPI(path) {
				return resp
			}
			if cfg.Paths.IsAsset(path) {
				return resp
			}

			ip := clientip.GetIP(r)
			if ip == "" {
				ip = unknownValue
			}
			userAgent := r.UserAgent()
			if userAgent == "" {
				userAgent = unknownValue
			}
			referrer := r.Referer()

			fp := ""
			if c, err := r.Cookie(cfg.CookieName); err == nil && c.Value != "" {
				fp = c.Value
			}
			if fp == "" {
				fp = fingerprint.New(ip, userAgent)
			}

			ctx.SetValue(fingerprintContextKey{}, fp)

			if err := cfg.Cookies.Set(ctx.Cookies(), cfg.CookieName, fp,
				cookie.WithMaxAge(cfg.CookieMaxAge),
			); err != nil {
				cfg.Logger.ErrorContext(ctx, "failed to set fingerprint cookie",
					logger.Component("middleware.tracking"),
					logger.Path(path),
					logger.Error(err),
				)
			}

			if err := cfg.Recorder.Record(ctx, visits.PageView{
				Fingerprint: fp,
				IP:          ip,
				Path:        path,
				Referrer:    referrer,
				UserAgent:   userAgent,
				At:          time.Now(),
			}); err != nil {
				cfg.Logger.ErrorContext(ctx, "failed to record page view",
					logger.Component("middleware.tracking"),
					logger.Path(path),
					logger.Error(err),
				)
			}

			// Coerce a pass-through into a response so headers always land
			return func(w http.ResponseWriter, req *http.Request) error {
				w.Header().Set(HeaderFingerprint, fp)
				w.Header().Set(HeaderClientIP, ip)
				w.Header().Set(HeaderPath, path)
				w.Header().Set(HeaderReferrer, referrer)
				if resp == nil {
					return nil
				}
				return resp(w, req)
			}
		}
	}
}

// GetFingerprint retrieves the session fingerprint from the request context.
// Returns the fingerprint and a boolean indicating whether it was found.
func GetFingerprint(ctx handler.Context) (string, bool) {
	fp, ok := ctx.Value(fingerprintContextKey{}).(string)
	return fp, ok
}
