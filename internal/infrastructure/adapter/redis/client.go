package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/config"
)

var tracer = otel.Tracer("github.com/amirhossein-jamali/image2code-backend/redis")

// Client wraps the go-redis client shared by the cache and the rate limiter
type Client struct {
	rdb    *redis.Client
	logger coreport.Logger
}

// NewClient creates a Redis client and verifies it answers
func NewClient(ctx context.Context, cfg config.RedisConfig, logger coreport.Logger) (*Client, error) {
	c := newClient(cfg, logger)
	if err := c.Ping(ctx); err != nil {
		_ = c.rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("Connected to redis", map[string]any{
		"addr": cfg.Addr,
		"db":   cfg.DB,
	})
	return c, nil
}

func newClient(cfg config.RedisConfig, logger coreport.Logger) *Client {
	return &Client{
		rdb: redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			PoolSize:     cfg.PoolSize,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		}),
		logger: logger,
	}
}

// Ping checks the connection
func (c *Client) Ping(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "redis.Ping")
	defer span.End()

	if err := c.rdb.Ping(ctx).Err(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Close closes the connection pool
func (c *Client) Close() error {
	return c.rdb.Close()
}
