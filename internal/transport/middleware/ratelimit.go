package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Rexant-b2k/RateReviewRevive/internal/config"
)

// RateLimiter enforces a per-client token bucket keyed by remote IP.
// Idle buckets are dropped by a background cleanup goroutine.
type RateLimiter struct {
	perMinute int
	buckets   sync.Map
	done      chan struct{}
	stopOnce  sync.Once
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter builds a limiter from config and starts its cleanup loop.
// Returns nil when rate limiting is disabled; Middleware and Stop tolerate
// a nil receiver.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	if !cfg.Enabled || cfg.PerMinute <= 0 {
		return nil
	}
	rl := &RateLimiter{
		perMinute: cfg.PerMinute,
		done:      make(chan struct{}),
	}
	go rl.cleanup(cfg.CleanupInterval)
	return rl
}

// Middleware returns the rate-limiting middleware. Requests over budget get
// 429 with a Retry-After header.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		if rl == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientIP(r)) {
				w.Header().Set("Retry-After", "60")
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Stop terminates the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	if rl == nil {
		return
	}
	rl.stopOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) allow(key string) bool {
	now := time.Now()

	v, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:   float64(rl.perMinute),
		lastSeen: now,
	})
	b := v.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	refill := now.Sub(b.lastSeen).Minutes() * float64(rl.perMinute)
	b.tokens = min(b.tokens+refill, float64(rl.perMinute))
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-interval)
			rl.buckets.Range(func(key, v any) bool {
				b := v.(*bucket)
				b.mu.Lock()
				stale := b.lastSeen.Before(cutoff)
				b.mu.Unlock()
				if stale {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
