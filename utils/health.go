package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest probe of the service's backing stores: the
// appointment database and the booking-session cache.
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	SessionCache bool      `json:"sessionCache"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func setHealthStatus(h HealthStatus) {
	healthMu.Lock()
	currentHealth = h
	healthMu.Unlock()
}

// StartHealthMonitor probes Mongo and the session cache periodically and
// keeps the in-memory snapshot served on /health current.
func StartHealthMonitor(sessionCache *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			setHealthStatus(HealthStatus{
				Mongo:        mongoClient.Ping(ctx, nil) == nil,
				SessionCache: sessionCache.Ping(ctx).Err() == nil,
				CheckedAt:    time.Now(),
			})
		}
	}()
}
