package wishlistRepo

import (
	"context"
	"fmt"

	"github.com/komo3344/airbnb-backend/database/memory"
	"github.com/komo3344/airbnb-backend/models"
)

// MemoryWishlistRepo keeps wishlists in process memory.
type MemoryWishlistRepo struct {
	lists *memory.Table[models.Wishlist]
}

func NewMemoryWishlistRepo() *MemoryWishlistRepo {
	return &MemoryWishlistRepo{lists: memory.NewTable[models.Wishlist]()}
}

func (m *MemoryWishlistRepo) Create(_ context.Context, list *models.Wishlist) error {
	if !m.lists.Insert(list.ID, clone(*list), nil) {
		return fmt.Errorf("wishlist %s already exists", list.ID)
	}
	return nil
}

func (m *MemoryWishlistRepo) GetByID(_ context.Context, id string) (*models.Wishlist, error) {
	list, ok := m.lists.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	list = clone(list)
	return &list, nil
}

func (m *MemoryWishlistRepo) ListByUser(_ context.Context, userID string) ([]models.Wishlist, error) {
	out := []models.Wishlist{}
	for _, l := range m.lists.All() {
		if l.UserID == userID {
			out = append(out, clone(l))
		}
	}
	return out, nil
}

func (m *MemoryWishlistRepo) Update(_ context.Context, list *models.Wishlist) error {
	if !m.lists.Replace(list.ID, clone(*list)) {
		return ErrNotFound
	}
	return nil
}

func (m *MemoryWishlistRepo) Delete(_ context.Context, id string) error {
	if !m.lists.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// clone copies the ID slices so callers can't mutate stored rows.
func clone(l models.Wishlist) models.Wishlist {
	l.Rooms = append([]string{}, l.Rooms...)
	l.Experiences = append([]string{}, l.Experiences...)
	return l
}
