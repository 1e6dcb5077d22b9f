package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	featuredCacheKey  = "catalog:featured"
	locationsCacheKey = "catalog:locations"
)

// AggregateCache is a short-TTL read-through cache for the aggregate room
// views. A failing cache is treated as a miss, never as an error.
type AggregateCache interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{})
}

// RedisAggregateCache implements AggregateCache on a redis client.
type RedisAggregateCache struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

// NewRedisAggregateCache wraps the given client with a 30s default TTL.
func NewRedisAggregateCache(client *redis.Client, logger *zap.Logger) *RedisAggregateCache {
	return &RedisAggregateCache{Client: client, TTL: 30 * time.Second, Logger: logger}
}

func (c *RedisAggregateCache) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.L()
}

// Get loads a cached value into dest. Any cache failure is reported as a miss
// so callers fall back to the database.
func (c *RedisAggregateCache) Get(key string, dest interface{}) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger().Warn("aggregate cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		c.logger().Warn("aggregate cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores a value best-effort; failures are logged and ignored.
func (c *RedisAggregateCache) Set(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger().Warn("aggregate cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.Client.Set(ctx, key, data, c.TTL).Err(); err != nil {
		c.logger().Warn("aggregate cache write failed", zap.String("key", key), zap.Error(err))
	}
}
