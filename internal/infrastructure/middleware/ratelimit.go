package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/config"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/observability"
	"github.com/marcos-nsantos/proximity-api/internal/pkg/httputil"
)

// RateLimiter is a sliding window limiter backed by a redis sorted set per
// caller. Redis failures let the request through.
type RateLimiter struct {
	client     *redis.Client
	limit      int
	windowSize time.Duration
	logger     *zap.Logger
}

func NewRateLimiter(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		client:     client,
		limit:      cfg.RequestsPerMin,
		windowSize: window,
		logger:     logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		allowed, remaining, err := rl.isAllowed(ctx, rl.key(c))
		if err != nil {
			rl.logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			observability.RateLimited.Inc()
			c.Header("Retry-After", strconv.Itoa(int(rl.windowSize.Seconds())))
			httputil.ErrorWithCode(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// Authenticated clients share a budget across addresses.
func (rl *RateLimiter) key(c *gin.Context) string {
	if clientID := httputil.GetClientID(c); clientID != "" {
		return "ratelimit:client:" + clientID
	}
	return "ratelimit:ip:" + c.ClientIP()
}

func (rl *RateLimiter) isAllowed(ctx context.Context, key string) (bool, int, error) {
	now := time.Now().UnixMilli()
	windowStart := now - rl.windowSize.Milliseconds()

	pipe := rl.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now),
		Member: fmt.Sprintf("%d-%s", now, uuid.NewString()),
	})

	countCmd := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, rl.windowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return true, rl.limit, fmt.Errorf("executing rate limit pipeline: %w", err)
	}

	count := int(countCmd.Val())
	remaining := max(rl.limit-count, 0)

	return count <= rl.limit, remaining, nil
}
