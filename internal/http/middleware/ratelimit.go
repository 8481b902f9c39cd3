package middleware

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"gnapi/internal/metrics"
)

const rateLimitMessage = "too many requests, please try again later"

const sweepInterval = time.Minute

// limiterStore holds one token bucket per client key. Buckets that have refilled
// completely are indistinguishable from new ones and are dropped by sweep.
type limiterStore struct {
	rps       float64
	burst     int
	m         sync.Map // map[string]*rate.Limiter
	lastSweep atomic.Int64
}

func (s *limiterStore) get(key string, now time.Time) *rate.Limiter {
	s.maybeSweep(now)
	if v, ok := s.m.Load(key); ok {
		return v.(*rate.Limiter)
	}
	v, _ := s.m.LoadOrStore(key, rate.NewLimiter(rate.Limit(s.rps), s.burst))
	return v.(*rate.Limiter)
}

// maybeSweep runs sweep at most once per sweepInterval across all callers.
func (s *limiterStore) maybeSweep(now time.Time) {
	last := s.lastSweep.Load()
	if last == 0 {
		s.lastSweep.CompareAndSwap(0, now.UnixNano())
		return
	}
	if now.UnixNano()-last < int64(sweepInterval) || !s.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	s.sweep(now)
}

func (s *limiterStore) sweep(now time.Time) {
	full := float64(s.burst)
	s.m.Range(func(k, v any) bool {
		if v.(*rate.Limiter).TokensAt(now) >= full {
			s.m.CompareAndDelete(k, v)
		}
		return true
	})
}

func clientKey(c *fiber.Ctx) string {
	ip := c.IP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}

// RateLimit enforces an in-memory token bucket per client IP, as reported by c.IP().
// rps is the refill rate in tokens per second; burst is the bucket size.
// Each call gets its own store, so separately limited routes do not share buckets.
func RateLimit(rps float64, burst int) fiber.Handler {
	if burst < 1 {
		burst = 1
	}
	store := &limiterStore{rps: rps, burst: burst}
	retryAfter := "1"
	if rps > 0 && rps < 1 {
		retryAfter = strconv.Itoa(int(1/rps + 0.5))
	}

	return func(c *fiber.Ctx) error {
		now := timeNow()
		if !store.get(clientKey(c), now).AllowN(now, 1) {
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			c.Set(fiber.HeaderRetryAfter, retryAfter)
			return fiber.NewError(fiber.StatusTooManyRequests, rateLimitMessage)
		}
		metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
		return c.Next()
	}
}
