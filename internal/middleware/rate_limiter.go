package middleware

import (
	"context"
	"sync"
	"time"

	"medication-dashboard/internal/errors"
	"medication-dashboard/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTimeout = 3 * time.Minute
	visitorSweepEvery  = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorStore keeps one token bucket per client IP
type visitorStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

func newVisitorStore(rps float64, burst int) *visitorStore {
	return &visitorStore{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (s *visitorStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(s.rps, s.burst)
		s.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (s *visitorStore) sweep(idle time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ip, v := range s.visitors {
		if time.Since(v.lastSeen) > idle {
			delete(s.visitors, ip)
		}
	}
}

func (s *visitorStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// RateLimiter limits requests per client IP as resolved by the echo
// IPExtractor. The sweeper stops when ctx is done.
// /health and /metrics are never limited.
func RateLimiter(ctx context.Context, rps float64, burst int) echo.MiddlewareFunc {
	store := newVisitorStore(rps, burst)
	go store.runSweeper(ctx)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Path() {
			case "/health", "/metrics":
				return next(c)
			}

			if !store.get(c.RealIP()).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

func (s *visitorStore) runSweeper(ctx context.Context) {
	ticker := time.NewTicker(visitorSweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(visitorIdleTimeout)
		}
	}
}

// IPExtractor decides which address the rate limiter keys on. Forwarding
// headers are honoured only when the service sits behind a trusted proxy,
// and then only from loopback or private-network hops.
func IPExtractor(trustProxy bool) echo.IPExtractor {
	if trustProxy {
		return echo.ExtractIPFromXFFHeader()
	}
	return echo.ExtractIPDirect()
}
