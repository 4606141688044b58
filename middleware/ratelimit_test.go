package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowRefills(t *testing.T) {
	req := require.New(t)
	l := NewRateLimiter(10*time.Second, 2, 100)
	t.Cleanup(l.Close)
	clock := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return clock }

	req.True(l.Allow("a"))
	req.True(l.Allow("a"))
	req.False(l.Allow("a"), "bucket should be empty")
	req.True(l.Allow("b"), "buckets are per key")

	clock = clock.Add(5 * time.Second) // half a window refills one token
	req.True(l.Allow("a"))
	req.False(l.Allow("a"))
}

func TestRateLimiterDisabled(t *testing.T) {
	l := NewRateLimiter(time.Second, 0, 10)
	t.Cleanup(l.Close)
	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("a"))
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	req := require.New(t)
	gin.SetMode(gin.TestMode)
	l := NewRateLimiter(time.Minute, 1, 100)
	t.Cleanup(l.Close)

	r := gin.New()
	r.POST("/messages", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/register", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		return w
	}

	req.Equal(http.StatusOK, do("/messages").Code)
	blocked := do("/messages")
	req.Equal(http.StatusTooManyRequests, blocked.Code)
	req.Equal("60", blocked.Header().Get("Retry-After"))
	req.JSONEq(`{"msg":"too many requests"}`, blocked.Body.String())
	req.Equal(http.StatusOK, do("/register").Code, "routes have separate buckets")
}
