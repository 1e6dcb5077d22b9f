package utils

import (
	"context"
	"fmt"
	"time"

	"roomnest/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient builds a redis client from configuration and verifies it
// with a ping. The caller decides whether a failed cache is fatal; the
// catalog service degrades to database-only reads without one.
func NewCacheClient() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
