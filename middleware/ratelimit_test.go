package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.Limit())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok"})
	})
	return router
}

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(5, 1*time.Minute)

	assert.NotNil(t, rl)
	assert.Equal(t, 5, rl.rate)
	assert.Equal(t, 1*time.Minute, rl.window)
	assert.NotNil(t, rl.visitors)
}

func TestRateLimiter_WithinLimit(t *testing.T) {
	router := rateLimitedRouter(NewRateLimiter(5, 1*time.Minute))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "127.0.0.1:12345"
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "Request %d should succeed", i+1)
	}
}

func TestRateLimiter_ExceedsLimit(t *testing.T) {
	router := rateLimitedRouter(NewRateLimiter(2, 1*time.Minute))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "127.0.0.1:12345"
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "127.0.0.1:12345"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestRateLimiter_SeparateIPs(t *testing.T) {
	router := rateLimitedRouter(NewRateLimiter(1, 1*time.Minute))

	for _, addr := range []string{"10.0.0.1:1000", "10.0.0.2:1000"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		req.RemoteAddr = addr
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "First request from %s should succeed", addr)
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	router := rateLimitedRouter(NewRateLimiter(1, 50*time.Millisecond))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "127.0.0.1:12345"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	time.Sleep(60 * time.Millisecond)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "127.0.0.1:12345"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
