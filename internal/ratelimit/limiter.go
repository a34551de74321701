package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// Limiter is a named token bucket shared by all requests to one API.
type Limiter struct {
	limiter *rate.Limiter
	name    string
}

// New creates a limiter allowing requestsPerSecond with a burst of the same size.
// Values below 1 allow one request every 1/requestsPerSecond seconds.
func New(name string, requestsPerSecond float64) *Limiter {
	burst := int(requestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	return NewWithBurst(name, requestsPerSecond, burst)
}

// NewWithBurst creates a limiter with a custom burst size.
func NewWithBurst(name string, requestsPerSecond float64, burst int) *Limiter {
	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}
	return &Limiter{
		limiter: rate.NewLimiter(limit, burst),
		name:    name,
	}
}

// Wait blocks until a request may proceed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	start := time.Now()
	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait for %s: %w", l.name, err)
	}
	if waited := time.Since(start); waited > 100*time.Millisecond {
		slog.Debug("Rate limiter delayed request", "limiter", l.name, "waited", waited)
	}
	return nil
}

// Allow reports whether a request can proceed without blocking.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Name returns the name of this rate limiter.
func (l *Limiter) Name() string {
	return l.name
}
