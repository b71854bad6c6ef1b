package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edgekit/core/cookie"
)

func TestManagerDefaults(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	jar := cookie.NewJar()
	require.NoError(t, m.Set(jar, "pref", "dark"))

	c := jar.Get("pref")
	require.NotNil(t, c)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.False(t, c.Secure)
}

func TestManagerPerCallOptions(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecure(true))
	jar := cookie.NewJar()
	require.NoError(t, m.Set(jar, "locale", "en",
		cookie.WithMaxAge(31536000),
		cookie.WithSameSite(http.SameSiteStrictMode),
		cookie.WithHTTPOnly(false),
	))

	c := jar.Get("locale")
	require.NotNil(t, c)
	assert.Equal(t, 31536000, c.MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.False(t, c.HttpOnly, "per-call option overrides manager default")
	assert.True(t, c.Secure, "manager default survives unrelated per-call options")
}

func TestManagerRejectsOversizedCookie(t *testing.T) {
	t.Parallel()

	m := cookie.NewWithOptions(nil, cookie.WithMaxSize(64))
	jar := cookie.NewJar()

	err := m.Set(jar, "big", strings.Repeat("x", 128))
	var tooLarge cookie.ErrCookieTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "big", tooLarge.Name)
	assert.Equal(t, 0, jar.Len(), "rejected cookie must not be recorded")
}

func TestManagerGet(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "locale", Value: "en"})

	val, err := m.Get(r, "locale")
	require.NoError(t, err)
	assert.Equal(t, "en", val)

	_, err = m.Get(r, "missing")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManagerDelete(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithPath("/app"))
	jar := cookie.NewJar()
	m.Delete(jar, "stale")

	c := jar.Get("stale")
	require.NotNil(t, c)
	assert.Equal(t, -1, c.MaxAge)
	assert.Equal(t, "/app", c.Path)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	m := cookie.NewFromConfig(cookie.Config{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxSize:  cookie.MaxCookieSize,
	})

	jar := cookie.NewJar()
	require.NoError(t, m.Set(jar, "a", "1"))

	c := jar.Get("a")
	require.NotNil(t, c)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}
