package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/qbrelay/internal/http/controllers"
	"github.com/dropDatabas3/qbrelay/internal/http/services"
	"github.com/dropDatabas3/qbrelay/internal/http/services/relay"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	svcs := services.New(services.Deps{
		Target:  relay.MustTarget("http://localhost:3001/auth/callback"),
		Version: "1.0.0",
	})
	h := New(Deps{Controllers: controllers.New(svcs)})
	r, ok := h.(chi.Router)
	require.True(t, ok)
	return r
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNotFound(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		method, target, path string
	}{
		{http.MethodGet, "/nope", "/nope"},
		{http.MethodGet, "/nope?x=1", "/nope?x=1"},
		{http.MethodPost, "/", "/"},
		{http.MethodPost, "/redirect", "/redirect"},
		{http.MethodDelete, "/callback", "/callback"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))

			require.Equal(t, http.StatusNotFound, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, "not_found", body["error"])
			assert.Equal(t, "Endpoint not found", body["message"])
			assert.Equal(t, tc.path, body["path"])
		})
	}
}

func TestPanicBecomesServerError(t *testing.T) {
	r := newTestRouter(t)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{
		"error":   "server_error",
		"message": "Internal server error occurred",
	}, decode(t, rec))
	assert.NotContains(t, rec.Body.String(), "kaboom")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestCallbackRoutesAreNotCacheable(t *testing.T) {
	r := newTestRouter(t)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/callback?code=a", nil),
		httptest.NewRequest(http.MethodGet, "/redirect?code=a", nil),
		httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader("code=a")),
	} {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"), req.Method+" "+req.URL.Path)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}

func TestBaseMiddlewares(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rid-1", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "1.0.0", rec.Header().Get("X-Service-Version"))
}
