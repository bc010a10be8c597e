package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/i18n"
)

const defaultNumShards = 16

// KeyFunc picks the budget a request is counted against.
type KeyFunc func(c *gin.Context) string

// ByClientIP counts requests per client address.
func ByClientIP(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// ByHousehold counts requests per household, so all members share one budget.
// It needs the identity middleware; requests without a household count per address.
func ByHousehold(c *gin.Context) string {
	if scope, ok := GetScope(c); ok && scope.HouseholdID != "" {
		return "household:" + scope.HouseholdID
	}
	return ByClientIP(c)
}

// fixedWindow counts the requests of one key since start.
type fixedWindow struct {
	used  int
	start time.Time
}

type rateLimiterShard struct {
	mu        sync.Mutex
	windows   map[string]*fixedWindow
	lastSweep time.Time
}

// RateLimiter allows limit requests per key in each fixed window of length period.
// Keys are spread over shards to keep lock contention low; stale windows are swept
// while counting, so the limiter owns no goroutine.
type RateLimiter struct {
	shards []*rateLimiterShard
	limit  int
	period time.Duration
	now    func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per key and period.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return newRateLimiter(limit, period, defaultNumShards)
}

func newRateLimiter(limit int, period time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	if period <= 0 {
		period = time.Minute
	}
	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{windows: make(map[string]*fixedWindow)}
	}
	return &RateLimiter{shards: shards, limit: limit, period: period, now: time.Now}
}

func (rl *RateLimiter) shardFor(key string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take counts one request for key. It reports whether the request fits, how many are
// left in the current window and when the window ends.
func (rl *RateLimiter) take(key string) (allowed bool, remaining int, reset time.Time) {
	shard := rl.shardFor(key)
	now := rl.now()

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if now.Sub(shard.lastSweep) >= rl.period {
		for k, w := range shard.windows {
			if now.Sub(w.start) >= rl.period {
				delete(shard.windows, k)
			}
		}
		shard.lastSweep = now
	}

	w, ok := shard.windows[key]
	if !ok || now.Sub(w.start) >= rl.period {
		w = &fixedWindow{start: now}
		shard.windows[key] = w
	}
	reset = w.start.Add(rl.period)
	if w.used >= rl.limit {
		return false, 0, reset
	}
	w.used++
	return true, rl.limit - w.used, reset
}

// TryAcquire takes one request from key's budget and reports whether it was available.
func (rl *RateLimiter) TryAcquire(key string) bool {
	allowed, _, _ := rl.take(key)
	return allowed
}

// RateLimit limits requests per client address.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return rl.Middleware(ByClientIP)
}

// Middleware limits requests per key and answers 429 with Retry-After once a budget is spent.
func (rl *RateLimiter) Middleware(key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, reset := rl.take(key(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if allowed {
			c.Next()
			return
		}

		wait := int(math.Ceil(reset.Sub(rl.now()).Seconds()))
		if wait < 1 {
			wait = 1
		}
		c.Header("Retry-After", strconv.Itoa(wait))
		message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
	}
}

// Size returns how many keys currently hold a window.
func (rl *RateLimiter) Size() int {
	n := 0
	for _, shard := range rl.shards {
		shard.mu.Lock()
		n += len(shard.windows)
		shard.mu.Unlock()
	}
	return n
}
