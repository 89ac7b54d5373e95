package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles requests per key, in practice per host.
type Limiter interface {
	Wait(ctx context.Context, key string) error
}

// InMemoryLimiter is an implementation of Limiter stored in memory
type InMemoryLimiter struct {
	hosts map[string]*rate.Limiter
	mu    sync.Mutex
	r     rate.Limit
	b     int
}

// NewInMemoryLimiter creates a new rate limiter.
// Example: NewInMemoryLimiter(2, time.Second, 2) -> two requests a second per host, burst of 2.
// A non-positive request count disables limiting.
func NewInMemoryLimiter(requests int, per time.Duration, burst int) Limiter {
	r := rate.Inf
	if requests > 0 && per > 0 {
		r = rate.Every(per / time.Duration(requests))
	}
	if burst <= 0 {
		burst = 1
	}
	return &InMemoryLimiter{
		hosts: make(map[string]*rate.Limiter),
		r:     r,
		b:     burst,
	}
}

func (l *InMemoryLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.hosts[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.hosts[key] = limiter
	}
	return limiter
}

// Wait blocks until key may proceed or ctx is done.
func (l *InMemoryLimiter) Wait(ctx context.Context, key string) error {
	return l.get(key).Wait(ctx)
}
