package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/komo3344/airbnb-backend/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitRedis connects the cache and auth cache clients. With REDIS_ADDR unset
// both stay nil and callers fall back to the primary store.
func InitRedis() error {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}
	cache, err := newRedisClient(config.AppConfig.RedisCacheDB)
	if err != nil {
		return fmt.Errorf("redis cache: %w", err)
	}
	auth, err := newRedisClient(config.AppConfig.RedisAuthDB)
	if err != nil {
		_ = cache.Close()
		return fmt.Errorf("redis auth cache: %w", err)
	}
	CacheClient, AuthCacheClient = cache, auth
	return nil
}

func newRedisClient(db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// GetCacheClient returns the generic cache client, or nil when Redis is not configured.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching, or nil.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// CloseRedis closes whichever clients were opened.
func CloseRedis() {
	for _, c := range []*redis.Client{CacheClient, AuthCacheClient} {
		if c != nil {
			_ = c.Close()
		}
	}
}
