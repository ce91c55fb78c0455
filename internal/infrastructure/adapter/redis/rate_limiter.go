package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
)

// RateLimiter is a sliding window limiter backed by a sorted set per key
type RateLimiter struct {
	client       *Client
	timeProvider coreport.TimeProvider
}

// NewRateLimiter creates a rate limiter
func NewRateLimiter(client *Client, timeProvider coreport.TimeProvider) *RateLimiter {
	return &RateLimiter{client: client, timeProvider: timeProvider}
}

// Allow records one request under key and reports whether the window still has room
func (l *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	ctx, span := tracer.Start(ctx, "ratelimit.Allow")
	span.SetAttributes(
		attribute.String("ratelimit.key", key),
		attribute.Int("ratelimit.limit", limit),
		attribute.Int64("ratelimit.window_ms", window.Milliseconds()),
	)
	defer span.End()

	now := l.timeProvider.Now().UnixNano()
	windowStart := now - window.Nanoseconds()

	pipe := l.client.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now),
		Member: fmt.Sprintf("%d-%s", now, uuid.NewString()),
	})
	countCmd := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, window*2)

	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return false, err
	}

	count := countCmd.Val()
	allowed := count <= int64(limit)
	span.SetAttributes(
		attribute.Int64("ratelimit.current_count", count),
		attribute.Bool("ratelimit.allowed", allowed),
	)
	return allowed, nil
}

// RateLimitKey builds the limiter key for a caller and route
func RateLimitKey(caller, route string) string {
	return "i2c:ratelimit:" + caller + ":" + route
}
