package middleware

import (
	"net/http"
	"sync"

	"evalert/config"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles unauthenticated endpoints per client IP.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// NewRateLimitMiddleware creates a per-IP rate limiter from config. Missing
// config falls back to 1 request per second with a burst of 5.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	rps := rate.Limit(1)
	burst := 5
	if cfg.RateLimit != nil {
		if cfg.RateLimit.RPS > 0 {
			rps = rate.Limit(cfg.RateLimit.RPS)
		}
		if cfg.RateLimit.Burst > 0 {
			burst = cfg.RateLimit.Burst
		}
	}

	return &RateLimitMiddleware{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

// Limit rejects requests over the per-IP budget with 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.limiter(c.RealIP()).Allow() {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many requests"})
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) limiter(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, ok := m.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(m.rps, m.burst)
		m.limiters[ip] = limiter
	}

	return limiter
}
