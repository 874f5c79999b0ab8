package web

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sweepInterval is how often idle buckets are dropped from ipLimiters.
const sweepInterval = time.Minute

// ipLimiters keeps one token bucket per client IP. Buckets that have refilled
// completely are dropped, since a new bucket behaves the same.
type ipLimiters struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	r         rate.Limit
	b         int
	now       func() time.Time
	lastSweep time.Time
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= sweepInterval {
		l.sweep(now)
	}

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.r, l.b)
		l.limiters[ip] = limiter
	}
	return limiter
}

func (l *ipLimiters) sweep(now time.Time) {
	for ip, limiter := range l.limiters {
		if limiter.TokensAt(now) >= float64(l.b) {
			delete(l.limiters, ip)
		}
	}
	l.lastSweep = now
}

// RateLimitMiddleware rejects requests with 429 once a client IP exceeds r
// requests per second with burst b. A non-positive r disables limiting.
func RateLimitMiddleware(r rate.Limit, b int) func(http.Handler) http.Handler {
	if r <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	l := &ipLimiters{limiters: make(map[string]*rate.Limiter), r: r, b: b, now: time.Now}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ip := clientIP(req)
			if !l.get(ip).Allow() {
				slog.Warn("rate limit exceeded", "ip", ip, "path", req.URL.Path)
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// clientIP returns the host part of the request's remote address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
