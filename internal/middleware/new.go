package middleware

import (
	"soroia/config"
	"soroia/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the shared middleware set. A disabled rate limit yields a
// pass-through RateLimit handler.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxTrackedPeers)
	}
	return mw
}
