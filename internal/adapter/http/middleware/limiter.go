package middleware

import (
	"net/http"
	"sync"
	"time"

	"polymesh/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Tier names a rate limit policy. Each identity gets one bucket per tier.
type Tier string

const (
	TierGeneral Tier = "general"
	// TierStrict covers login, registration and payment initiation.
	TierStrict Tier = "strict"
	// TierWebhook covers gateway callbacks, which arrive from a few shared
	// IPs and must not be dropped.
	TierWebhook Tier = "webhook"
)

const (
	limitStrict  = rate.Limit(0.2)
	burstStrict  = 5
	limitWebhook = rate.Limit(50)
	burstWebhook = 100

	visitorTTL = 30 * time.Minute
)

var errTooManyRequests = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, please try again later", http.StatusTooManyRequests)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type policy struct {
	limit rate.Limit
	burst int
}

// RateLimiter keeps one token bucket per (identity, tier).
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	policies map[Tier]policy
	now      func() time.Time
}

// NewRateLimiter allows requests per window for the general tier, with the
// given burst.
func NewRateLimiter(requests int, window time.Duration, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		policies: map[Tier]policy{
			TierGeneral: {limit: rate.Every(window / time.Duration(requests)), burst: burst},
			TierStrict:  {limit: limitStrict, burst: burstStrict},
			TierWebhook: {limit: limitWebhook, burst: burstWebhook},
		},
		now: time.Now,
	}
}

// Middleware limits by user id when authenticated, by client IP otherwise.
func (l *RateLimiter) Middleware(tier Tier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := "ip:" + c.ClientIP()
		if uid := UserID(c); uid != "" {
			identity = "user:" + uid
		}
		if !l.allow(identity+":"+string(tier), tier) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}

func (l *RateLimiter) allow(key string, tier Tier) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		p := l.policies[tier]
		v = &visitor{limiter: rate.NewLimiter(p.limit, p.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Cleanup drops buckets idle for longer than the TTL. Run it periodically.
func (l *RateLimiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-visitorTTL)
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
		}
	}
}

// StartCleanup runs Cleanup every interval until stop is closed.
func (l *RateLimiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				l.Cleanup()
			case <-stop:
				return
			}
		}
	}()
}
