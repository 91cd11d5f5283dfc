// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"carebrief/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient backs the request rate limiter. It stays nil when Redis is not
// configured or unreachable; callers must tolerate a nil client.
var CacheClient *redis.Client

// InitCache initializes the Redis client used for rate-limit counters.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		GetLogger().Sugar().Info("Redis not configured, rate limiter will run in-process")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Sugar().Warnf("Failed to connect to Redis, rate limiter will run in-process: %v", err)
		return
	}
	CacheClient = client
}

// GetCacheClient returns the rate-limit cache client, which may be nil.
func GetCacheClient() *redis.Client {
	return CacheClient
}
