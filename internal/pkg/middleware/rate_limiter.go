package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sigap-app/sigap-backend/internal/pkg/database"
	"github.com/sigap-app/sigap-backend/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *database.RedisClient
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a middleware for rate limiting using Redis
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Rate limit by client IP
			identifier := c.RealIP()

			// Create a key for this route and identifier
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)

			ctx := c.Request().Context()

			// INCR is atomic, so concurrent requests cannot lose counts
			count, err := config.RedisClient.Incr(ctx, key)
			if err != nil {
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
			}

			// First request in the window starts the expiration clock
			if count == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period); err != nil {
					return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
				}
			}

			if count > int64(config.Limit) {
				// Get TTL for the key to determine reset time
				ttl, err := config.RedisClient.TTL(ctx, key)
				if err != nil {
					return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
				}

				// Set rate limit headers
				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))

				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			// Set rate limit headers
			remaining := int64(config.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			return next(c)
		}
	}
}
