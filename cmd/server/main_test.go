package main

import (
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

func TestCORSMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("credentials mode echoes origin with unset allow list", func(t *testing.T) {
		t.Parallel()

		h := corsMiddleware(corsConfig{})(okHandler())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/send-message", nil)
		r.Header.Set("Origin", "https://example.com")
		h.ServeHTTP(w, r)

		assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("restricts to configured origins", func(t *testing.T) {
		t.Parallel()

		cfg := corsConfig{AllowedOrigins: []string{"https://allowed.example.com"}}
		h := corsMiddleware(cfg)(okHandler())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/send-message", nil)
		r.Header.Set("Origin", "https://allowed.example.com")
		h.ServeHTTP(w, r)

		assert.Equal(t, "https://allowed.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

		w = httptest.NewRecorder()
		r = httptest.NewRequest(http.MethodPost, "/send-message", nil)
		r.Header.Set("Origin", "https://evil.example.com")
		h.ServeHTTP(w, r)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("answers preflight", func(t *testing.T) {
		t.Parallel()

		h := corsMiddleware(corsConfig{})(okHandler())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodOptions, "/send-message", nil)
		r.Header.Set("Origin", "https://example.com")
		r.Header.Set("Access-Control-Request-Method", http.MethodPost)
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})
}
