package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaKanwar22/ShopSphere/internal/service"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLoginRateLimit_SixthAttemptRejected(t *testing.T) {
	h := newTestHandler(&service.Services{})
	limited := h.loginRateLimit()(okHandler())

	for i := 1; i <= 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()

		limited.ServeHTTP(rec, req)

		require.Equalf(t, http.StatusOK, rec.Code, "attempt %d must pass", i)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	rec := httptest.NewRecorder()

	limited.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Too many login attempts. Try again after 15 minutes.", resp.Message)
}

func TestLoginRateLimit_PerIP(t *testing.T) {
	h := newTestHandler(&service.Services{})
	limited := h.loginRateLimit()(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		limited.ServeHTTP(httptest.NewRecorder(), req)
	}

	// A different client is unaffected by the first client's exhausted
	// budget.
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", nil)
	req.RemoteAddr = "198.51.100.9:5678"
	rec := httptest.NewRecorder()

	limited.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGlobalRateLimit_RejectsPastLimit(t *testing.T) {
	h := newTestHandler(&service.Services{})
	limited := h.globalRateLimit()(okHandler())

	for i := 0; i < h.cfg.RateLimit.GlobalLimit; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/product/list", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/product/list", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	rec := httptest.NewRecorder()

	limited.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Too many requests from this IP. Try again after 15 minutes.", resp.Message)
}
