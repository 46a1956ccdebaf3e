package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	userRepo "github.com/komo3344/airbnb-backend/database/repository/user"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": msg,
		"code":  0,
	})
}

// JWTAuthUserMiddleware accepts a bearer token only while it is the latest one
// issued to its user. The stored hash is read from authCache when present and
// from the user store otherwise.
func JWTAuthUserMiddleware(repo userRepo.UserRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Insufficient authorization")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			unauthorized(c, "Insufficient authorization")
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			unauthorized(c, "Insufficient authorization")
			return
		}
		computedHash := utils.HashToken(tokenString)

		ctx := c.Request.Context()
		cacheKey := utils.AuthCacheKey(userID)
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			switch {
			case err == nil && cachedHash == computedHash:
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("userID", userID)
				c.Next()
				return
			case err == nil:
				unauthorized(c, "Token mismatch")
				return
			case !errors.Is(err, redis.Nil):
				zap.L().Warn("Auth cache lookup failed, falling back to store", zap.Error(err))
			}
		}

		storedHash, err := lookupTokenHash(ctx, repo, userID)
		if err != nil {
			unauthorized(c, "Authentication error")
			return
		}
		if storedHash == "" || storedHash != computedHash {
			unauthorized(c, "Token mismatch")
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}
		c.Set("userID", userID)
		c.Next()
	}
}

func lookupTokenHash(ctx context.Context, repo userRepo.UserRepository, userID string) (string, error) {
	usr, err := repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return usr.TokenHash, nil
}

// CurrentUserID returns the ID set by JWTAuthUserMiddleware.
func CurrentUserID(c *gin.Context) string {
	return c.GetString("userID")
}
