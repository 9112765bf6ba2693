package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveRequestID(t *testing.T, inbound string) (echoed, seen string) {
	t.Helper()
	r := gin.New()
	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if inbound != "" {
		req.Header.Set(RequestIDHeader, inbound)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Header().Get(RequestIDHeader), seen
}

func TestRequestID(t *testing.T) {
	t.Run("reuses inbound id", func(t *testing.T) {
		echoed, seen := serveRequestID(t, "trace-abc-123")
		assert.Equal(t, "trace-abc-123", echoed)
		assert.Equal(t, "trace-abc-123", seen)
	})

	t.Run("generates uuid when missing", func(t *testing.T) {
		echoed, seen := serveRequestID(t, "")
		_, err := uuid.Parse(echoed)
		assert.NoError(t, err)
		assert.Equal(t, echoed, seen)
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		echoed, _ := serveRequestID(t, strings.Repeat("a", maxRequestIDLen+1))
		_, err := uuid.Parse(echoed)
		assert.NoError(t, err)
	})

	t.Run("replaces id with spaces", func(t *testing.T) {
		echoed, _ := serveRequestID(t, "two words")
		assert.NotEqual(t, "two words", echoed)
	})
}

func TestGetRequestID_FallsBackToHeader(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetRequestID(c))

	c.Request.Header.Set(RequestIDHeader, "from-header")
	assert.Equal(t, "from-header", GetRequestID(c))

	c.Set(RequestIDKey, "from-context")
	assert.Equal(t, "from-context", GetRequestID(c))
}
