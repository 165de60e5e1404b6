package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/boardwatchnyc/boardwatch/pkg/config"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// RedisStore implements Store on top of a Redis connection. Cache
// failures are logged and treated as misses so a flaky Redis never
// breaks a request.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore wraps an established Redis client as a Store.
func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := rs.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		if rs.logger != nil {
			rs.logger.Warn("cache.get.failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value, true
}

func (rs *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := rs.client.Set(ctx, key, value, ttl).Err(); err != nil && rs.logger != nil {
		rs.logger.Warn("cache.set.failed", zap.String("key", key), zap.Error(err))
	}
}

func (rs *RedisStore) Delete(ctx context.Context, key string) {
	if err := rs.client.Del(ctx, key).Err(); err != nil && rs.logger != nil {
		rs.logger.Warn("cache.delete.failed", zap.String("key", key), zap.Error(err))
	}
}
