package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel-backend/internal/config"
)

// Dashboard cache keys.
const (
	DashboardStatsKey = "dashboard:stats"
	MenuKey           = "food:menu"
)

var client *redis.Client

// Init connects to Redis. The cache degrades gracefully: when the connection
// fails the client stays nil and every helper becomes a no-op, so the API
// keeps serving straight from Postgres.
func Init(cfg *config.Config) error {
	addr := cfg.Redis.Addr
	if addr == "" {
		addr = "localhost:6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidateKeys removes specific cache keys
func InvalidateKeys(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// InvalidateDashboard clears occupancy and billing counters. Called after
// check-in, checkout and every generated invoice.
func InvalidateDashboard(ctx context.Context) {
	InvalidateKeys(ctx, DashboardStatsKey)
}

// InvalidateMenu clears the cached food menu after a menu edit.
func InvalidateMenu(ctx context.Context) {
	InvalidateKeys(ctx, MenuKey)
}

// IsHealthy returns true if Redis connection is working
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
