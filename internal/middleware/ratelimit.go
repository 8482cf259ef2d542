package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/arabic-learning-backend/internal/config"
	"github.com/stemsi/arabic-learning-backend/internal/response"
)

// Counter increments key and returns the new count. The key expires after window.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter limits requests per client IP in fixed windows.
type RateLimiter struct {
	counter Counter
	limit   int
	window  time.Duration
	log     zerolog.Logger
	now     func() time.Time
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window.
// A non-positive limit disables it.
func NewRateLimiter(counter Counter, limit int, window time.Duration, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		counter: counter,
		limit:   limit,
		window:  window,
		log:     log.With().Str("component", "rate_limiter").Logger(),
		now:     time.Now,
	}
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
// Counter failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}

		windowStart := rl.now().Truncate(rl.window).Unix()
		key := config.CacheKey.RateLimitKey(c.ClientIP(), windowStart)

		n, err := rl.counter.Incr(c.Request.Context(), key, rl.window)
		if err != nil {
			rl.log.Warn().Err(err).Str("key", key).Msg("rate limit counter unavailable")
			c.Next()
			return
		}
		if n > int64(rl.limit) {
			response.Fail(c, response.TooManyRequests(), false)
			return
		}
		c.Next()
	}
}

// RedisCounter shares counts across instances.
type RedisCounter struct {
	rdb *redis.Client
}

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// MemoryCounter keeps counts in process. Used when Redis is not configured.
type MemoryCounter struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	count     int64
	expiresAt time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{entries: make(map[string]*memoryEntry), now: time.Now}
}

func (m *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	e, ok := m.entries[key]
	if !ok || now.After(e.expiresAt) {
		m.sweep(now)
		e = &memoryEntry{expiresAt: now.Add(window)}
		m.entries[key] = e
	}
	e.count++
	return e.count, nil
}

// sweep drops expired windows. Callers hold mu.
func (m *MemoryCounter) sweep(now time.Time) {
	for k, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, k)
		}
	}
}
