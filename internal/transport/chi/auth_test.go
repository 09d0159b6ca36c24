package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func authedHandler(apiKeys []string) http.Handler {
	mw := BearerAuthMiddleware(apiKeys)
	return mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestBearerAuth_Disabled(t *testing.T) {
	h := authedHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/search?q=w", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	h := authedHandler([]string{"secret"})

	req := httptest.NewRequest(http.MethodGet, "/search?q=w", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestBearerAuth_WrongScheme(t *testing.T) {
	h := authedHandler([]string{"secret"})

	req := httptest.NewRequest(http.MethodGet, "/search?q=w", http.NoBody)
	req.Header.Set("Authorization", "Basic secret")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestBearerAuth_InvalidKey(t *testing.T) {
	h := authedHandler([]string{"secret"})

	req := httptest.NewRequest(http.MethodGet, "/search?q=w", http.NoBody)
	req.Header.Set("Authorization", "Bearer wrong")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestBearerAuth_ValidKey(t *testing.T) {
	h := authedHandler([]string{"secret"})

	req := httptest.NewRequest(http.MethodGet, "/search?q=w", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBearerAuth_ExemptPaths(t *testing.T) {
	h := authedHandler([]string{"secret"})

	for _, path := range []string{"/", "/health", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "path %s should bypass auth", path)
	}
}
