package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	handler := CORS(okHandler())

	t.Run("OPTIONS preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/order", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
	})

	t.Run("Passes through non-preflight", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/order", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(okHandler())

	t.Run("Allows under burst", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Strict tier throttles payment endpoint", func(t *testing.T) {
		var last int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/api/verify-payment", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			last = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("Tiers use separate buckets", func(t *testing.T) {
		// Exhaust the strict bucket for this IP...
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/order", nil)
			req.RemoteAddr = "10.0.0.3:1234"
			handler.ServeHTTP(httptest.NewRecorder(), req)
		}

		// ...the general tier is unaffected.
		req := httptest.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestResolveRateTier(t *testing.T) {
	cases := []struct {
		path string
		tier string
	}{
		{"/api/order", "strict"},
		{"/order", "strict"},
		{"/api/verify-payment", "strict"},
		{"/verify-payment", "strict"},
		{"/health", "general"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("path %s", tc.path), func(t *testing.T) {
			req := httptest.NewRequest("POST", tc.path, nil)
			_, _, tier := resolveRateTier(req)
			assert.Equal(t, tc.tier, tier)
		})
	}
}
