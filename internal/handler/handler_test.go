package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testOrigins = OriginPolicy{
	Allowed:  []string{"http://localhost:5173", "http://127.0.0.1:5173"},
	Suffixes: []string{".vercel.app"},
}

func TestOriginPolicy_Allows(t *testing.T) {
	cases := map[string]bool{
		"":                                   true,
		"http://localhost:5173":              true,
		"http://127.0.0.1:5173":              true,
		"https://portfolio-git-x.vercel.app": true,
		"http://localhost:3000":              false,
		"https://evil.example.com":           false,
		"https://vercel.app.evil.com":        false,
	}
	for origin, want := range cases {
		assert.Equal(t, want, testOrigins.Allows(origin), "origin %q", origin)
	}
}

func TestRoot_PlainText(t *testing.T) {
	h := New(&mockDB{}, testOrigins)
	rec := httptest.NewRecorder()
	h.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Backend is running!", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestCORS_AllowedOriginSetsHeaders(t *testing.T) {
	h := New(&mockDB{}, testOrigins)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.CORS(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestCORS_DeploymentSuffixAllowed(t *testing.T) {
	h := New(&mockDB{}, testOrigins)
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://preview-123.vercel.app")
	rec := httptest.NewRecorder()
	h.CORS(inner).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, "https://preview-123.vercel.app", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_NoOriginPassesThrough(t *testing.T) {
	h := New(&mockDB{}, testOrigins)
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h.CORS(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnlistedOriginRejected(t *testing.T) {
	h := New(&mockDB{}, testOrigins)
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	h.CORS(inner).ServeHTTP(rec, req)

	assert.False(t, called, "inner handler must not run for a rejected origin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"message":"Not allowed by CORS"}`, rec.Body.String())
}

func TestCORS_OptionsPreflight(t *testing.T) {
	h := New(&mockDB{}, testOrigins)

	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "http://127.0.0.1:5173")
	rec := httptest.NewRecorder()
	h.CORS(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called, "inner handler should not be called for OPTIONS preflight")
}
