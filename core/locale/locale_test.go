package locale_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edgekit/core/locale"
)

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := locale.New(nil, "es")
	assert.ErrorIs(t, err, locale.ErrNoLocales)

	_, err = locale.New([]string{"es", "!!"}, "es")
	assert.ErrorIs(t, err, locale.ErrInvalidLocale)

	_, err = locale.New([]string{"es", "en"}, "de")
	assert.ErrorIs(t, err, locale.ErrUnsupportedDefault)
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	l, err := locale.New([]string{"es", "en"}, "es")
	require.NoError(t, err)

	assert.Equal(t, []string{"es", "en"}, l.Supported())
	assert.Equal(t, "es", l.Default())
	assert.Equal(t, locale.DefaultCookieName, l.CookieName())
	assert.Equal(t, locale.DefaultCookieMaxAge, l.CookieMaxAge())
	assert.True(t, l.Contains("en"))
	assert.False(t, l.Contains("de"))
}

func TestOptions(t *testing.T) {
	t.Parallel()

	l, err := locale.New([]string{"es", "en"}, "es",
		locale.WithCookieName("lang"),
		locale.WithCookieMaxAge(3600),
	)
	require.NoError(t, err)

	assert.Equal(t, "lang", l.CookieName())
	assert.Equal(t, 3600, l.CookieMaxAge())
}

func TestMatch(t *testing.T) {
	t.Parallel()

	l, err := locale.New([]string{"es", "en"}, "es")
	require.NoError(t, err)

	code, ok := l.Match("en")
	assert.True(t, ok)
	assert.Equal(t, "en", code)

	// Regional variants resolve to their supported base
	code, ok = l.Match("en-US")
	assert.True(t, ok)
	assert.Equal(t, "en", code)

	code, ok = l.Match("es-MX")
	assert.True(t, ok)
	assert.Equal(t, "es", code)

	_, ok = l.Match("")
	assert.False(t, ok)

	_, ok = l.Match("!!")
	assert.False(t, ok)
}

func TestFromCookie(t *testing.T) {
	t.Parallel()

	l, err := locale.New([]string{"es", "en"}, "es")
	require.NoError(t, err)

	// No cookie: default
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "es", l.FromCookie(r))

	// Valid cookie wins
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: locale.DefaultCookieName, Value: "en"})
	assert.Equal(t, "en", l.FromCookie(r))

	// Unsupported cookie value: default
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: locale.DefaultCookieName, Value: "fr"})
	assert.Equal(t, "es", l.FromCookie(r))
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	l, err := locale.NewFromConfig(locale.Config{
		Supported:    "es, en",
		Default:      "es",
		CookieName:   "locale",
		CookieMaxAge: 31536000,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"es", "en"}, l.Supported())
	assert.Equal(t, 31536000, l.CookieMaxAge())
}
