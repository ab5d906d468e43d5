package middleware

import (
	"ebaylistingapp/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares: request logging
// and per-client rate limiting.
type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds how many
// requests a single client IP may make per minute.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(requestsPerMin),
	}
}
