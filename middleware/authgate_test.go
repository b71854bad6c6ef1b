package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edgekit/core/authn"
	"github.com/dmitrymomot/edgekit/core/authz"
	"github.com/dmitrymomot/edgekit/core/chain"
	"github.com/dmitrymomot/edgekit/core/handler"
	"github.com/dmitrymomot/edgekit/middleware"
)

func gateStack(provider *fakeProvider, admins *fakeAdminStore, t *testing.T) []handler.Middleware[*chain.Context] {
	t.Helper()
	return []handler.Middleware[*chain.Context]{
		middleware.AuthGate[*chain.Context](middleware.AuthGateConfig{
			Sessions: provider,
			Admins:   admins,
			Paths:    testPaths(),
			Locales:  testLocales(t),
		}),
	}
}

func TestAuthGateUnauthenticated(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{userErr: authn.ErrNoSession}
	admins := &fakeAdminStore{}

	r := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := serve(gateStack(provider, admins, t), r)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/es/auth/login?redirectTo=%2Fadmin%2Fdashboard", w.Header().Get("Location"))
	assert.Equal(t, 0, admins.calls, "no authorization lookup without a session")
}

func TestAuthGateLoginRedirectUsesLocaleCookie(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{userErr: authn.ErrNoSession}

	r := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: "locale", Value: "en"})
	w := serve(gateStack(provider, &fakeAdminStore{}, t), r)

	assert.Equal(t, "/en/auth/login?redirectTo=%2Fadmin%2Fdashboard", w.Header().Get("Location"))
}

func TestAuthGateAuthenticatedNonAdmin(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{user: authn.User{ID: uuid.New()}}
	admins := &fakeAdminStore{} // empty allow-list

	r := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := serve(gateStack(provider, admins, t), r)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/es/auth/login?error=unauthorized", w.Header().Get("Location"))
	assert.Equal(t, 1, admins.calls)
}

func TestAuthGateStoreFailureRedirects(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{user: authn.User{ID: uuid.New()}}
	admins := &fakeAdminStore{err: errors.New("connection refused")}

	r := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := serve(gateStack(provider, admins, t), r)

	assert.Equal(t, "/es/auth/login?error=unauthorized", w.Header().Get("Location"))
}

func TestAuthGateAdminPassthrough(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	provider := &fakeProvider{user: authn.User{ID: userID, Email: "admin@example.com"}}
	admins := &fakeAdminStore{admins: map[uuid.UUID]authz.Admin{
		userID: {ID: uuid.New(), UserID: userID, Role: "admin"},
	}}

	var gateUser authn.User
	inner := func(next handler.HandlerFunc[*chain.Context]) handler.HandlerFunc[*chain.Context] {
		return func(ctx *chain.Context) handler.Response {
			gateUser, _ = middleware.GetAuthUser(ctx)
			return next(ctx)
		}
	}

	mws := append(gateStack(provider, admins, t), inner)
	r := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := serve(mws, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Equal(t, userID, gateUser.ID, "authenticated user is exposed to inner stages")
}

func TestAuthGateAdminRootNormalization(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	provider := &fakeProvider{user: authn.User{ID: userID}}
	admins := &fakeAdminStore{admins: map[uuid.UUID]authz.Admin{
		userID: {UserID: userID},
	}}

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := serve(gateStack(provider, admins, t), r)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
}

func TestAuthGateLocalePrefixedAdminPath(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{userErr: authn.ErrNoSession}

	r := httptest.NewRequest(http.MethodGet, "/en/admin/projects", nil)
	w := serve(gateStack(provider, &fakeAdminStore{}, t), r)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/es/auth/login?redirectTo=%2Fen%2Fadmin%2Fprojects", w.Header().Get("Location"))
}

func TestAuthGateIgnoresPublicPaths(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{userErr: authn.ErrNoSession}

	for _, path := range []string{"/", "/en/projects", "/api/contact", "/favicon.ico"} {
		w := serve(gateStack(provider, &fakeAdminStore{}, t), httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, "path %s must pass through", path)
	}
	assert.Equal(t, 0, provider.userCalls, "non-admin paths never hit the session provider")
}

func TestAuthGatePublicAdminAllowList(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{userErr: authn.ErrNoSession}

	mw := middleware.AuthGate[*chain.Context](middleware.AuthGateConfig{
		Sessions:    provider,
		Admins:      &fakeAdminStore{},
		Paths:       testPaths(),
		Locales:     testLocales(t),
		PublicPaths: []string{"/admin/login"},
	})

	r := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	w := serve([]handler.Middleware[*chain.Context]{mw}, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, provider.userCalls)
}

func TestAuthGateCustomPaths(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{userErr: authn.ErrNoSession}

	mw := middleware.AuthGate[*chain.Context](middleware.AuthGateConfig{
		Sessions:  provider,
		Admins:    &fakeAdminStore{},
		Paths:     testPaths(),
		Locales:   testLocales(t),
		LoginPath: "/login",
	})

	r := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := serve([]handler.Middleware[*chain.Context]{mw}, r)

	assert.Equal(t, "/es/login?redirectTo=%2Fadmin%2Fdashboard", w.Header().Get("Location"))
}

func TestAuthGateRequiredDependencies(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		middleware.AuthGate[*chain.Context](middleware.AuthGateConfig{})
	})
}
