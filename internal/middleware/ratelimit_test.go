package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRateLimitSeparatesAuthBucket(t *testing.T) {
	t.Parallel()

	m := NewRateLimitMiddleware(100, 2)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := m.Handler(next)

	doRequest := func(path string) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, doRequest("/api/v1/auth/login"))
	require.Equal(t, http.StatusOK, doRequest("/api/v1/auth/login"))
	require.Equal(t, http.StatusTooManyRequests, doRequest("/api/v1/auth/login"))

	// The general bucket is untouched by the auth bucket running dry.
	require.Equal(t, http.StatusOK, doRequest("/api/v1/branches"))
}

func TestRateLimitIsPerClient(t *testing.T) {
	t.Parallel()

	m := NewRateLimitMiddleware(100, 1)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := m.Handler(next)

	doRequest := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, doRequest("10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, doRequest("10.0.0.1"))
	require.Equal(t, http.StatusOK, doRequest("10.0.0.2"))
}

func TestExtractClientIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:4321"
	require.Equal(t, "192.168.1.5", extractClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	require.Equal(t, "203.0.113.9", extractClientIP(req))
}
