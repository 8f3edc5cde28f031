// Package ratelimit enforces per-client request quotas with token buckets.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/streamlens/content-analysis/internal/logger"
)

// staleAfter is how long an idle client's bucket is kept before eviction.
const staleAfter = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keys token buckets by client address. A fresh bucket starts
// full, so a client may burst up to the per-minute quota before refill
// pacing kicks in.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	perMinute int
	logger    logger.Logger
}

// NewClientLimiter creates a limiter allowing perMinute requests per client.
func NewClientLimiter(perMinute int, log logger.Logger) *ClientLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &ClientLimiter{
		clients:   make(map[string]*clientLimiter),
		perMinute: perMinute,
		logger:    log,
	}
}

// Allow reports whether the client identified by key may proceed.
func (l *ClientLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(float64(l.perMinute)/60.0), l.perMinute),
		}
		l.clients[key] = c
	}
	c.lastSeen = time.Now()

	allowed := c.limiter.Allow()
	if !allowed {
		l.logger.Warn("rate limit exceeded",
			logger.String("client", key),
			logger.Int("per_minute", l.perMinute))
	}
	return allowed
}

// Prune drops buckets for clients not seen within staleAfter. Callers run it
// periodically; the limiter never spawns its own goroutine.
func (l *ClientLimiter) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-staleAfter)
	removed := 0
	for key, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Size returns the number of tracked clients.
func (l *ClientLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
