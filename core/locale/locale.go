// Package locale holds the supported-locale configuration injected into the
// locale-routing stage and resolves the active locale for a request.
//
// Resolution is cookie-or-default only: the locale preference cookie wins
// when it maps to a supported locale, otherwise the configured default
// applies. No Accept-Language negotiation is performed.
//
//	locales, err := locale.New([]string{"es", "en"}, "es")
//	code := locales.FromCookie(r) // "es" unless a valid cookie says otherwise
package locale

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

const (
	// DefaultCookieName stores the resolved UI locale.
	DefaultCookieName = "locale"

	// DefaultCookieMaxAge keeps the preference for one year.
	DefaultCookieMaxAge = 365 * 24 * 60 * 60
)

// Locales is the immutable supported-locale set with its resolution rules.
// Safe for concurrent use.
type Locales struct {
	supported    []string
	def          string
	cookieName   string
	cookieMaxAge int
	matcher      language.Matcher
}

// Option configures a Locales instance.
type Option func(*Locales)

// WithCookieName overrides the locale preference cookie name.
func WithCookieName(name string) Option {
	return func(l *Locales) {
		if name != "" {
			l.cookieName = name
		}
	}
}

// WithCookieMaxAge overrides the locale cookie max-age in seconds.
func WithCookieMaxAge(seconds int) Option {
	return func(l *Locales) {
		if seconds > 0 {
			l.cookieMaxAge = seconds
		}
	}
}

// New creates a locale set from supported codes and a default code.
// Every code must be a well-formed BCP 47 tag, and the default must be one
// of the supported codes.
func New(supported []string, def string, opts ...Option) (*Locales, error) {
	if len(supported) == 0 {
		return nil, ErrNoLocales
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		code = strings.TrimSpace(code)
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, code)
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}

	l := &Locales{
		supported:    codes,
		def:          def,
		cookieName:   DefaultCookieName,
		cookieMaxAge: DefaultCookieMaxAge,
		matcher:      language.NewMatcher(tags),
	}

	if !l.Contains(def) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDefault, def)
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Supported returns the supported locale codes in configuration order.
func (l *Locales) Supported() []string {
	return append([]string(nil), l.supported...)
}

// Default returns the fallback locale code.
func (l *Locales) Default() string {
	return l.def
}

// CookieName returns the locale preference cookie name.
func (l *Locales) CookieName() string {
	return l.cookieName
}

// CookieMaxAge returns the locale cookie lifetime in seconds.
func (l *Locales) CookieMaxAge() int {
	return l.cookieMaxAge
}

// Contains reports whether code is exactly one of the supported codes.
func (l *Locales) Contains(code string) bool {
	for _, c := range l.supported {
		if c == code {
			return true
		}
	}
	return false
}

// Match maps an arbitrary locale value to a supported code. Exact matches
// win; otherwise the value is parsed as a BCP 47 tag and matched against
// the supported set, so a stored "en-US" still resolves to "en".
func (l *Locales) Match(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	if l.Contains(value) {
		return value, true
	}

	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	_, idx, conf := l.matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return l.supported[idx], true
}

// FromCookie resolves the request locale from the preference cookie,
// falling back to the default. This is the cookie-or-default rule used by
// every stage that needs a locale before the locale-routing stage has run.
func (l *Locales) FromCookie(r *http.Request) string {
	cookie, err := r.Cookie(l.cookieName)
	if err != nil {
		return l.def
	}
	if code, ok := l.Match(cookie.Value); ok {
		return code
	}
	return l.def
}
