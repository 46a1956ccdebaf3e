package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// AuthCacheKey is the Redis key holding a user's current token hash.
func AuthCacheKey(userID string) string {
	return AuthCachePrefix + userID
}
