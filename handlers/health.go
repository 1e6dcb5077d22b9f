package handlers

import (
	"net/http"

	"roomnest/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler reports liveness and dependency state.
type HealthHandler struct {
	Mongo *mongo.Client
	Cache *redis.Client
}

func NewHealthHandler(mongoClient *mongo.Client, cacheClient *redis.Client) *HealthHandler {
	return &HealthHandler{Mongo: mongoClient, Cache: cacheClient}
}

// Status handles GET /health.
func (h *HealthHandler) Status(c *gin.Context) {
	status := utils.CheckHealth(h.Mongo, h.Cache)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": status})
}
