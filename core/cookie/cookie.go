package cookie

import (
	"errors"
	"net/http"
)

// MaxCookieSize is the maximum serialized size for a cookie (4KB).
const MaxCookieSize = 4096

// Manager builds HTTP cookies with configured defaults and records them
// into a Jar for deferred writing by the chain runner.
type Manager struct {
	defaults Options
	maxSize  int
}

// ManagerOption configures the Manager itself (not individual cookies).
type ManagerOption func(*Manager)

// WithMaxSize sets the maximum serialized cookie size.
func WithMaxSize(size int) ManagerOption {
	return func(m *Manager) {
		if size > 0 {
			m.maxSize = size
		}
	}
}

// New creates a cookie manager with the given default cookie options.
func New(opts ...Option) *Manager {
	// Secure defaults
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	defaults = applyOptions(defaults, opts)

	return &Manager{
		defaults: defaults,
		maxSize:  MaxCookieSize,
	}
}

// NewWithOptions creates a cookie manager with additional manager options.
func NewWithOptions(cookieOpts []Option, managerOpts ...ManagerOption) *Manager {
	m := New(cookieOpts...)
	for _, opt := range managerOpts {
		opt(m)
	}
	return m
}

// Set builds a cookie from the manager defaults and per-call options and
// records it in the jar.
func (m *Manager) Set(jar *Jar, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}

	if header := cookie.String(); len(header) > m.maxSize {
		return ErrCookieTooLarge{
			Name: name,
			Size: len(header),
			Max:  m.maxSize,
		}
	}

	jar.Set(cookie)
	return nil
}

// Get retrieves a cookie value from the request.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete records a cookie removal in the jar using the manager defaults.
func (m *Manager) Delete(jar *Jar, name string) {
	jar.Set(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}
