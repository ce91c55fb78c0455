package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/config"
)

// RateLimiter decides whether one more request fits in the window
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit bounds requests per caller and route. Limiter failures let the request through.
func RateLimit(cfg config.RateLimitConfig, limiter RateLimiter, keyFunc func(caller, route string) string, logger coreport.Logger) gin.HandlerFunc {
	if !cfg.Enabled || limiter == nil || cfg.Requests <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		caller, ok := AuthenticatedEmail(c)
		if !ok {
			caller = c.ClientIP()
		}
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		allowed, err := limiter.Allow(c.Request.Context(), keyFunc(caller, route), cfg.Requests, window)
		if err != nil {
			logger.Warn("Rate limiter unavailable", map[string]any{
				"error": err.Error(),
				"route": route,
			})
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", window.String())
			AbortWithError(c, errs.ErrRateLimited)
			return
		}
		c.Next()
	}
}
