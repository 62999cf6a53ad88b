package middleware

import (
	"assistant-widget/pkg/log"
)

type Middleware struct {
	l           log.Logger
	environment string
	corsOrigins []string
	rateLimiter *rateLimiter
}

// Config carries the middleware settings.
type Config struct {
	Environment     string
	CORSOrigins     []string
	RateLimitPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	var rl *rateLimiter
	if cfg.RateLimitPerMin > 0 {
		rl = newRateLimiter(cfg.RateLimitPerMin)
	}
	return Middleware{
		l:           l,
		environment: cfg.Environment,
		corsOrigins: cfg.CORSOrigins,
		rateLimiter: rl,
	}
}
