package wishlistRepo

import (
	"context"
	"errors"

	"github.com/komo3344/airbnb-backend/models"
)

var ErrNotFound = errors.New("wishlist not found")

// WishlistRepository stores users' wishlists.
type WishlistRepository interface {
	Create(ctx context.Context, list *models.Wishlist) error
	GetByID(ctx context.Context, id string) (*models.Wishlist, error)
	// ListByUser returns the user's wishlists, oldest first.
	ListByUser(ctx context.Context, userID string) ([]models.Wishlist, error)
	Update(ctx context.Context, list *models.Wishlist) error
	Delete(ctx context.Context, id string) error
}
