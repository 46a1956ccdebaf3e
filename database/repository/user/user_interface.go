package userRepo

import (
	"context"
	"errors"

	"github.com/komo3344/airbnb-backend/models"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("username or email already registered")
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by their unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByUsername retrieves a user by their login name.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// Update replaces the stored user. A username or email clash yields ErrDuplicate.
	Update(ctx context.Context, user *models.User) error
	// UpdateTokenHash stores the hash of the user's current access token; "" revokes it.
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
}
