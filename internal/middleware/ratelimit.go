package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"soroia/pkg/response"
)

const (
	defaultTrackedPeers = 1000
	limiterTTL          = 5 * time.Minute
)

// RateLimit rejects clients that exceed the configured request rate with 429.
// Each route pattern keeps its own bucket per gin ClientIP.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}
		key := c.FullPath() + " " + c.ClientIP()
		if !mw.limiter.Allow(key) {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client, expiring idle ones.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, maxPeers int) *rateLimiter {
	if maxPeers <= 0 {
		maxPeers = defaultTrackedPeers
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxPeers, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst:    max(requestsPerMin/10, 1),
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}
