package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edgekit/core/response"
)

func TestRedirect(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/projects", nil)

	require.NoError(t, response.Redirect("/es/projects")(w, r))
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/es/projects", w.Header().Get("Location"))
}

func TestRedirectFound(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, response.RedirectFound("/es")(w, r))
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestRedirectPermanent(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/old", nil)

	require.NoError(t, response.RedirectPermanent("/new")(w, r))
	assert.Equal(t, http.StatusPermanentRedirect, w.Code)
}

func TestRedirectWithStatusFallback(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, response.RedirectWithStatus("/es", http.StatusOK)(w, r))
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code, "non-3xx status falls back to 307")
}
