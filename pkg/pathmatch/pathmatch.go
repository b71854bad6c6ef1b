// Package pathmatch classifies request paths for the middleware chain.
//
// A single Classifier answers every path question the chain asks — admin?
// API? static asset? locale-prefixed, and with which locale? — so the
// stages can never disagree on how a path is classified.
//
//	c := pathmatch.New([]string{"es", "en"})
//	c.IsAdmin("/en/admin/projects") // true
//	c.SplitLocale("/en/projects")   // "en", "/projects", true
package pathmatch

import (
	"path"
	"strings"
)

// Classifier answers path classification questions for a fixed set of
// supported locales and configured path prefixes. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	adminPrefix    string
	apiPrefix      string
	internalPrefix string
	notFoundPath   string
	locales        []string
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithAdminPrefix overrides the admin area prefix (default "/admin").
func WithAdminPrefix(prefix string) Option {
	return func(c *Classifier) {
		if prefix != "" {
			c.adminPrefix = prefix
		}
	}
}

// WithAPIPrefix overrides the API prefix (default "/api").
func WithAPIPrefix(prefix string) Option {
	return func(c *Classifier) {
		if prefix != "" {
			c.apiPrefix = prefix
		}
	}
}

// WithInternalPrefix overrides the framework-internal path prefix
// (default "/_").
func WithInternalPrefix(prefix string) Option {
	return func(c *Classifier) {
		if prefix != "" {
			c.internalPrefix = prefix
		}
	}
}

// WithNotFoundPath overrides the reserved not-found path
// (default "/not-found").
func WithNotFoundPath(p string) Option {
	return func(c *Classifier) {
		if p != "" {
			c.notFoundPath = p
		}
	}
}

// New creates a classifier for the given supported locale codes.
func New(locales []string, opts ...Option) *Classifier {
	c := &Classifier{
		adminPrefix:    "/admin",
		apiPrefix:      "/api",
		internalPrefix: "/_",
		notFoundPath:   "/not-found",
		locales:        append([]string(nil), locales...),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AdminPrefix returns the configured admin area prefix.
func (c *Classifier) AdminPrefix() string {
	return c.adminPrefix
}

// IsAdmin reports whether p belongs to the administrative area, either bare
// ("/admin/...") or locale-prefixed ("/en/admin/...").
func (c *Classifier) IsAdmin(p string) bool {
	if hasPrefixSegment(p, c.adminPrefix) {
		return true
	}
	if _, rest, ok := c.SplitLocale(p); ok {
		return hasPrefixSegment(rest, c.adminPrefix)
	}
	return false
}

// IsAdminRoot reports whether p is exactly the bare admin root.
func (c *Classifier) IsAdminRoot(p string) bool {
	return p == c.adminPrefix || p == c.adminPrefix+"/"
}

// IsAPI reports whether p belongs to the API surface.
func (c *Classifier) IsAPI(p string) bool {
	return hasPrefixSegment(p, c.apiPrefix)
}

// IsAsset reports whether p addresses a static asset, a framework-internal
// path, or the reserved not-found path. Asset detection is extension-based:
// any final path segment with a file extension is treated as an asset.
func (c *Classifier) IsAsset(p string) bool {
	if strings.HasPrefix(p, c.internalPrefix) {
		return true
	}
	if p == c.notFoundPath {
		return true
	}
	return path.Ext(p) != ""
}

// SplitLocale splits a locale-prefixed path into its locale code and the
// remainder. The remainder always starts with "/"; for "/en" it is "/".
// Returns ok=false when the first segment is not a supported locale.
func (c *Classifier) SplitLocale(p string) (locale, rest string, ok bool) {
	if len(p) < 2 || p[0] != '/' {
		return "", "", false
	}

	seg := p[1:]
	remainder := ""
	if idx := strings.IndexByte(seg, '/'); idx >= 0 {
		seg, remainder = seg[:idx], seg[idx:]
	}
	if remainder == "" {
		remainder = "/"
	}

	for _, l := range c.locales {
		if seg == l {
			return l, remainder, true
		}
	}
	return "", "", false
}

// hasPrefixSegment reports whether p equals prefix or continues past it at
// a segment boundary, so "/administration" never matches "/admin".
func hasPrefixSegment(p, prefix string) bool {
	if !strings.HasPrefix(p, prefix) {
		return false
	}
	return len(p) == len(prefix) || p[len(prefix)] == '/'
}
