package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gnapi/internal/metrics"
)

var timeNow = time.Now

// RedisRateLimit is a fixed-window limiter shared by every API instance through Redis.
// A client may make floor(rps*window)+burst requests per window. Redis failures let the
// request through and are logged at warn level. A nil client falls back to RateLimit.
func RedisRateLimit(client *redis.Client, rps float64, burst int, window time.Duration, log *zap.Logger) fiber.Handler {
	if client == nil {
		return RateLimit(rps, burst)
	}
	if log == nil {
		log = zap.NewNop()
	}
	windowSeconds := int64(window.Seconds())
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	allowed := int64(rps*float64(windowSeconds)) + int64(burst)
	if allowed < 1 {
		allowed = 1
	}
	retryAfter := strconv.FormatInt(windowSeconds, 10)
	ttl := time.Duration(windowSeconds+1) * time.Second

	return func(c *fiber.Ctx) error {
		bucket := timeNow().Unix() / windowSeconds
		key := fmt.Sprintf("gnapi:rl:%s:%d", clientKey(c), bucket)
		ctx := c.UserContext()

		cnt, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Warn("rate_limit_store_unavailable", zap.String("limiter", "redis"), zap.Error(err))
			return c.Next()
		}
		if cnt == 1 {
			if err := client.Expire(ctx, key, ttl).Err(); err != nil {
				log.Warn("rate_limit_expire_failed", zap.String("key", key), zap.Error(err))
			}
		}
		if cnt > allowed {
			metrics.RateLimitRejected.WithLabelValues("redis").Inc()
			c.Set(fiber.HeaderRetryAfter, retryAfter)
			return fiber.NewError(fiber.StatusTooManyRequests, rateLimitMessage)
		}
		metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
		return c.Next()
	}
}
