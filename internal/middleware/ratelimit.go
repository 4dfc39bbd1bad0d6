package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// rateLimiter counts requests per client IP inside a sliding window. State
// lives in process memory, which matches the single-server deployment this
// backend targets.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string][]time.Time
	limit   int
	window  time.Duration
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	l := &rateLimiter{
		clients: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
	}
	go l.evictIdle()
	return l
}

func (l *rateLimiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	recent := prune(l.clients[key], now.Add(-l.window))
	if len(recent) >= l.limit {
		l.clients[key] = recent
		return false
	}
	l.clients[key] = append(recent, now)
	return true
}

// prune drops timestamps at or before cutoff, reusing the backing array.
func prune(times []time.Time, cutoff time.Time) []time.Time {
	kept := times[:0]
	for _, t := range times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// evictIdle removes clients with no requests left in the window so the map
// does not grow with every IP ever seen.
func (l *rateLimiter) evictIdle() {
	tick := time.NewTicker(5 * time.Minute)
	for range tick.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-l.window)
		for key, times := range l.clients {
			if kept := prune(times, cutoff); len(kept) == 0 {
				delete(l.clients, key)
			} else {
				l.clients[key] = kept
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit rejects a client IP exceeding limit requests per window.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	l := newRateLimiter(limit, window)
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, slow down"})
			return
		}
		c.Next()
	}
}
