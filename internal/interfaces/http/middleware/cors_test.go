package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSWithConfig(t *testing.T) {
	allowListed := DefaultCORSConfig()
	allowListed.AllowOrigins = []string{"https://shop.example"}

	wildcard := DefaultCORSConfig()
	wildcard.AllowOrigins = []string{"*"}

	tests := []struct {
		name            string
		cfg             CORSConfig
		method          string
		origin          string
		wantStatus      int
		wantAllowOrigin string
		wantCredentials string
	}{
		{"listed origin", allowListed, http.MethodGet, "https://shop.example", http.StatusOK, "https://shop.example", "true"},
		{"unlisted origin", allowListed, http.MethodGet, "https://evil.example", http.StatusOK, "", ""},
		{"no origin header", allowListed, http.MethodGet, "", http.StatusOK, "", ""},
		{"wildcard never sends credentials", wildcard, http.MethodGet, "https://any.example", http.StatusOK, "*", ""},
		{"default config allows nobody", DefaultCORSConfig(), http.MethodGet, "https://shop.example", http.StatusOK, "", ""},
		{"preflight ends early", allowListed, http.MethodOptions, "https://shop.example", http.StatusNoContent, "https://shop.example", "true"},
		{"preflight from unlisted origin", allowListed, http.MethodOptions, "https://evil.example", http.StatusNoContent, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(CORSWithConfig(tt.cfg))
			router.OPTIONS("/test", func(c *gin.Context) {})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllowOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, w.Header().Get("Access-Control-Allow-Credentials"))
			assert.Equal(t, "Origin", w.Header().Get("Vary"))
		})
	}
}

func TestCORSWithConfig_AllowedOriginHeaders(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"https://shop.example"}
	router := newTestRouter(CORSWithConfig(cfg))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://shop.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), RequestIDHeader)
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Retry-After")
	assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
}

func TestDefaultCORSConfig(t *testing.T) {
	cfg := DefaultCORSConfig()
	assert.Empty(t, cfg.AllowOrigins)
	assert.True(t, cfg.AllowCredentials)
	assert.Contains(t, cfg.AllowMethods, http.MethodOptions)
}
