package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/advocates-backend/internal/config"
)

// RateLimiter implements per-IP token bucket rate limiting on top of
// x/time/rate. Idle visitors are evicted by a background janitor.
type RateLimiter struct {
	visitors sync.Map // map[string]*visitor
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	idleTTL := cfg.IdleTTL
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	rl := &RateLimiter{
		limit:   rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:   cfg.Burst,
		idleTTL: idleTTL,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cfg.CleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns middleware that rejects requests over the configured rate
// with 429 and a Retry-After header.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := rl.now()
			v := rl.visitor(clientIP(r), now)

			res := v.limiter.ReserveN(now, 1)
			if !res.OK() {
				rl.reject(w, time.Minute)
				return
			}
			if delay := res.DelayFrom(now); delay > 0 {
				res.CancelAt(now)
				rl.reject(w, delay)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) reject(w http.ResponseWriter, retryAfter time.Duration) {
	secs := int(math.Ceil(retryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(secs))
	writeError(w, http.StatusTooManyRequests, errorBody{
		Error:   "Too many requests",
		Message: "Rate limit exceeded, retry in " + strconv.Itoa(secs) + "s",
		Code:    "RATE_LIMITED",
	})
}

func (rl *RateLimiter) visitor(key string, now time.Time) *visitor {
	val, ok := rl.visitors.Load(key)
	if !ok {
		val, _ = rl.visitors.LoadOrStore(key, &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)})
	}
	v := val.(*visitor)
	v.lastSeen.Store(now.UnixNano())
	return v
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}

// sweep drops visitors idle for longer than idleTTL.
func (rl *RateLimiter) sweep(now time.Time) int {
	removed := 0
	rl.visitors.Range(func(key, value any) bool {
		v := value.(*visitor)
		if now.Sub(time.Unix(0, v.lastSeen.Load())) > rl.idleTTL {
			rl.visitors.Delete(key)
			removed++
		}
		return true
	})
	return removed
}
