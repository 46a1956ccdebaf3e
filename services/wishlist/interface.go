package wishlist

import (
	"context"
	"errors"

	experienceRepo "github.com/komo3344/airbnb-backend/database/repository/experience"
	roomRepo "github.com/komo3344/airbnb-backend/database/repository/room"
	wishlistRepo "github.com/komo3344/airbnb-backend/database/repository/wishlist"
	"github.com/komo3344/airbnb-backend/models"

	"go.uber.org/zap"
)

// ErrNotFound covers unknown wishlists, wishlists of other users, and
// unknown rooms or experiences being toggled.
var ErrNotFound = errors.New("not found")

// WishlistService manages users' wishlists. Every operation is scoped to
// the calling user.
type WishlistService interface {
	List(ctx context.Context, userID string) ([]models.WishlistView, error)
	Create(ctx context.Context, userID string, in models.WishlistInput) (*models.WishlistView, error)
	Get(ctx context.Context, id, userID string) (*models.WishlistView, error)
	Rename(ctx context.Context, id, userID string, in models.WishlistInput) (*models.WishlistView, error)
	Delete(ctx context.Context, id, userID string) error
	// ToggleRoom adds the room to the list, or removes it if already there.
	ToggleRoom(ctx context.Context, id, userID, roomID string) (*models.WishlistView, error)
	ToggleExperience(ctx context.Context, id, userID, experienceID string) (*models.WishlistView, error)
}

// DefaultWishlistService implements WishlistService.
type DefaultWishlistService struct {
	Lists       wishlistRepo.WishlistRepository
	Rooms       roomRepo.RoomRepository
	Experiences experienceRepo.ExperienceRepository
	Logger      *zap.Logger
}
