package security

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{redis: redisClient, limit: limit, window: window}
}

// WriteRateLimit caps write requests per client IP using a fixed redis
// window. Reads pass through untouched.
func (r *RateLimiter) WriteRateLimit() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		switch e.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			return e.Next()
		}

		if r.isSuspiciousUserAgent(e.Request.Header.Get("User-Agent")) {
			return apis.NewForbiddenError("Access denied", nil)
		}

		ctx := e.Request.Context()
		key := fmt.Sprintf("ratelimit:write:%s", e.RealIP())

		count, err := r.redis.Incr(ctx, key).Result()
		if err != nil {
			// Redis being down should not take writes down with it.
			return e.Next()
		}
		if count == 1 {
			r.redis.Expire(ctx, key, r.window)
		}

		if count > int64(r.limit) {
			return apis.NewApiError(http.StatusTooManyRequests,
				"Rate limit exceeded. Please try again later.", nil)
		}

		return e.Next()
	}
}

func (r *RateLimiter) isSuspiciousUserAgent(userAgent string) bool {
	if userAgent == "" {
		return true
	}

	lowered := strings.ToLower(userAgent)
	for _, pattern := range []string{"bot", "crawler", "spider", "scraper"} {
		if strings.Contains(lowered, pattern) {
			return true
		}
	}
	return false
}
