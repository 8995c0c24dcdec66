package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-insight-keeper/internal/app"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/models"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL        = 30 * time.Minute
	limiterSweepEvery     = 5 * time.Minute
	defaultLoginPerMinute = 10
)

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

// ipRateLimiter hands out one token bucket per client IP. Idle buckets are
// swept lazily on access.
type ipRateLimiter struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	every     time.Duration
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// newIPRateLimiter allows perMinute attempts per IP with a burst of the same
// size. A non-positive rate falls back to 10 per minute.
func newIPRateLimiter(perMinute int) *ipRateLimiter {
	if perMinute <= 0 {
		perMinute = defaultLoginPerMinute
	}
	return &ipRateLimiter{
		entries: make(map[string]*limiterEntry),
		every:   time.Minute / time.Duration(perMinute),
		burst:   perMinute,
		now:     time.Now,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterSweepEvery {
		for key, e := range l.entries {
			if now.Sub(e.lastUse) > limiterIdleTTL {
				delete(l.entries, key)
			}
		}
		l.lastSweep = now
	}

	e, ok := l.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.entries[ip] = e
	}
	e.lastUse = now

	return e.limiter.AllowN(now, 1)
}

// withLoginRateLimit throttles login attempts per client IP. It relies on
// middleware.RealIP having normalised RemoteAddr.
func (h *Handler) withLoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !h.loginLimiter.allow(ip) {
			logger.FromRequest(r).Warn().Str("ip", ip).Msg("login throttled")
			w.Header().Set("Retry-After", strconv.Itoa(int(h.loginLimiter.every.Seconds())+1))
			writeResponse(w, r, models.ErrorResponse{Error: app.MsgTooManyRequests}, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
