// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"backbar/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// AuthCacheClient is the dedicated client for the upstream bearer token.
	AuthCacheClient *redis.Client
	// RosterCacheClient is the dedicated client for the active-employee roster.
	RosterCacheClient *redis.Client
)

// InitAuthCache initializes the Redis client for upstream token caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for upstream token caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitRosterCache initializes the Redis client for roster caching.
func InitRosterCache() {
	RosterCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RosterCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Roster Cache): %v", err)
	}
}

// GetRosterCacheClient returns the Redis client for roster caching.
func GetRosterCacheClient() *redis.Client {
	if RosterCacheClient == nil {
		InitRosterCache()
	}
	return RosterCacheClient
}

// CacheGetJSON loads a JSON value from the cache into dest. Returns false on a
// miss or when the stored value cannot be decoded.
func CacheGetJSON(ctx context.Context, rdb *redis.Client, key string, dest interface{}) bool {
	if rdb == nil {
		return false
	}
	data, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		GetLogger().Warn("cache: discarding undecodable entry", zap.String("key", key))
		return false
	}
	return true
}

// CacheSetJSON stores a JSON value in the cache. Failures are logged, not
// returned: a concurrent request refreshing the same key is idempotent, so a
// lost write only costs a redundant refetch.
func CacheSetJSON(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) {
	if rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		GetLogger().Warn("cache: failed to marshal entry", zap.String("key", key))
		return
	}
	if err := rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		GetLogger().Warn("cache: failed to store entry", zap.String("key", key))
	}
}
