package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// CheckHealth pings the external services. A nil redis client reports as
// unhealthy rather than erroring; the service runs without a cache.
func CheckHealth(mongoClient *mongo.Client, cacheClient *redis.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	if cacheClient != nil {
		status.Redis = cacheClient.Ping(ctx).Err() == nil
	}
	return status
}
