package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freegoat/admin-dashboard/internal/config"
	"github.com/freegoat/admin-dashboard/internal/events"
	"github.com/freegoat/admin-dashboard/internal/logger"
)

// redisConnectTimeout bounds the startup connection check.
const redisConnectTimeout = 5 * time.Second

// SetupEventPublisher creates the optional audit event publisher. Returns
// nil when Redis is disabled or unavailable; the dashboard runs fine
// without it.
func SetupEventPublisher(cfg *config.Config, log logger.Logger) *events.Publisher {
	if !cfg.Redis.Enabled {
		return nil
	}

	client, err := newRedisClient(cfg.Redis)
	if err != nil {
		log.Warn("Redis not available, audit events disabled", logger.Error(err))
		return nil
	}

	log.Info("Audit event publisher initialized",
		logger.String("redis_address", cfg.Redis.Address),
	)
	return events.NewPublisher(client, log)
}

// newRedisClient creates a Redis client and verifies the connection.
func newRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
