// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"dentora/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds short-lived booking sessions.
	SessionCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client used for booking session caching.
// Availability snapshots themselves are never cached here; only the session envelope
// (selected provider, date, duration) lives in Redis.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for booking sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
