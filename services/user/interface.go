package user

import (
	"context"
	"time"

	userRepo "github.com/komo3344/airbnb-backend/database/repository/user"
	"github.com/komo3344/airbnb-backend/models"

	"github.com/go-redis/redis/v8"
)

type UserService interface {
	// Authentication
	RegisterUser(ctx context.Context, reg models.UserRegistration) (*models.AuthResponse, error)
	AuthenticateUser(ctx context.Context, username, password string) (*models.AuthResponse, error)
	RevokeUserAuthToken(ctx context.Context, userID string) error

	// User Management
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetPublicUser(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (*models.User, error)
	UpdateUserPassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// DefaultUserService is the production implementation.
// AuthCache may be nil when Redis is not configured.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
	TokenTTL  time.Duration
}
