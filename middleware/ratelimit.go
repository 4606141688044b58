package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"SocialMedia/pkg/cache"
)

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a token bucket per client ip and route. Buckets live in a
// bounded cache and expire after two idle windows.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  *cache.Cache
	window   time.Duration
	capacity int
	now      func() time.Time
}

// NewRateLimiter allows capacity requests per window. capacity <= 0 disables
// limiting. maxKeys bounds the number of tracked clients.
func NewRateLimiter(window time.Duration, capacity, maxKeys int) *RateLimiter {
	if window <= 0 {
		window = 10 * time.Second
	}
	return &RateLimiter{
		buckets:  cache.New(maxKeys, window),
		window:   window,
		capacity: capacity,
		now:      time.Now,
	}
}

// Close stops the bucket janitor.
func (l *RateLimiter) Close() { l.buckets.Close() }

func clientIP(c *gin.Context) string {
	ip := strings.TrimSpace(c.ClientIP())
	if ip == "" {
		host, _, _ := net.SplitHostPort(strings.TrimSpace(c.Request.RemoteAddr))
		ip = host
	}
	return ip
}

// Allow takes one token from key's bucket, refilling it in proportion to the
// time elapsed since the last refill.
func (l *RateLimiter) Allow(key string) bool {
	if l.capacity <= 0 {
		return true
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()
	b := l.buckets.GetOrCreate(key, 2*l.window, func() any {
		return &bucket{tokens: l.capacity, lastRefill: now}
	}).(*bucket)

	elapsed := now.Sub(b.lastRefill)
	if elapsed > 0 {
		add := int(float64(l.capacity) * (float64(elapsed) / float64(l.window)))
		if add > 0 {
			b.tokens = min(b.tokens+add, l.capacity)
			b.lastRefill = now
		}
	}
	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Middleware aborts with 429 once the caller's bucket is empty.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := cache.KeyFromStrings(clientIP(c), c.Request.Method, c.FullPath())
		if !l.Allow(key) {
			c.Header("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"msg": "too many requests"})
			return
		}
		c.Next()
	}
}
