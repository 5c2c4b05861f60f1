package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
}

// AuthRateLimitConfig is used for login and signup endpoints.
func AuthRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:auth:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// Atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
var rateLimitScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// RateLimiter counts requests per key in Redis when a client is given and
// falls back to per-key token buckets in process memory otherwise, or when
// Redis errors.
type RateLimiter struct {
	cfg    RateLimitConfig
	client *goredis.Client
	local  *gocache.Cache
}

func NewRateLimiter(cfg RateLimitConfig, client *goredis.Client) *RateLimiter {
	if cfg.Limit <= 0 {
		cfg.Limit = 10
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	return &RateLimiter{
		cfg:    cfg,
		client: client,
		local:  gocache.New(2*cfg.Window, 5*time.Minute),
	}
}

// Middleware rejects requests over the limit with 429 and sets the usual
// X-RateLimit headers.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.cfg.KeyPrefix + l.cfg.KeyFunc(c)

		allowed, remaining, retryAfter := l.allow(c.Request.Context(), key)
		c.Header("X-RateLimit-Limit", strconv.Itoa(l.cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			_ = c.Error(apperror.TooManyRequests("Too many requests, please try again later"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func (l *RateLimiter) allow(ctx context.Context, key string) (bool, int, time.Duration) {
	if l.client != nil {
		count, ttl, err := l.checkRedis(ctx, key)
		if err == nil {
			remaining := l.cfg.Limit - count
			if remaining < 0 {
				remaining = 0
			}
			return count <= l.cfg.Limit, remaining, ttl
		}
		logger.Log.Warn("Rate limiter falling back to memory", zap.String("key", key), zap.Error(err))
	}
	return l.checkLocal(key)
}

func (l *RateLimiter) checkRedis(ctx context.Context, key string) (int, time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	res, err := rateLimitScript.Run(ctx, l.client, []string{key}, int(l.cfg.Window.Seconds())).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(res) != 2 {
		return 0, 0, goredis.Nil
	}
	return int(res[0]), time.Duration(res[1]) * time.Second, nil
}

func (l *RateLimiter) checkLocal(key string) (bool, int, time.Duration) {
	var limiter *rate.Limiter
	if v, ok := l.local.Get(key); ok {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(rate.Every(l.cfg.Window/time.Duration(l.cfg.Limit)), l.cfg.Limit)
		// Add loses to a concurrent writer; reuse whatever won.
		if err := l.local.Add(key, limiter, gocache.DefaultExpiration); err != nil {
			if v, ok := l.local.Get(key); ok {
				limiter = v.(*rate.Limiter)
			}
		}
	}
	l.local.SetDefault(key, limiter)

	now := time.Now()
	r := limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, 0, l.cfg.Window
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, 0, delay
	}
	return true, int(limiter.TokensAt(now)), 0
}
