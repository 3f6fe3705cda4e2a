package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaKanwar22/ShopSphere/internal/service"
)

// captureBody reads the request body as seen by the downstream handler.
func captureBody(got *map[string]any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, got)
		w.WriteHeader(http.StatusOK)
	})
}

func TestSanitizeBody_StripsOperatorKeys(t *testing.T) {
	h := newTestHandler(&service.Services{})

	body := `{"email":{"$gt":""},"password":"x","a.b":"dotted","nested":{"$where":"1","ok":"yes"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	var got map[string]any
	h.sanitizeBody(captureBody(&got)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, got, "a.b")
	assert.Equal(t, map[string]any{}, got["email"], "$-keys inside objects are removed")
	assert.Equal(t, map[string]any{"ok": "yes"}, got["nested"])
	assert.Equal(t, "x", got["password"])
}

func TestSanitizeBody_StripsKeysInsideArrays(t *testing.T) {
	h := newTestHandler(&service.Services{})

	body := `{"items":[{"$set":{"price":0},"name":"T-Shirt"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/order/place", strings.NewReader(body))
	rec := httptest.NewRecorder()

	var got map[string]any
	h.sanitizeBody(captureBody(&got)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	items := got["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{"name": "T-Shirt"}, items[0])
}

func TestSanitizeBody_CleanBodyUnchanged(t *testing.T) {
	h := newTestHandler(&service.Services{})

	body := `{"email":"ada@example.com","password":"Passw0rd"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	var got map[string]any
	h.sanitizeBody(captureBody(&got)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"email": "ada@example.com", "password": "Passw0rd"}, got)
}

func TestSanitizeBody_EmptyBodyPassesThrough(t *testing.T) {
	h := newTestHandler(&service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/logout", nil)
	rec := httptest.NewRecorder()

	called := false
	h.sanitizeBody(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestSanitizeBody_InvalidJSONLeftForHandler(t *testing.T) {
	h := newTestHandler(&service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	var seen string
	h.sanitizeBody(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen = string(body)
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{not json", seen, "non-JSON body reaches the handler unchanged")
}
