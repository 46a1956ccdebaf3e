package roomRepo

import (
	"context"
	"errors"

	"github.com/komo3344/airbnb-backend/models"
)

var ErrNotFound = errors.New("room not found")

// RoomRepository defines methods for room listing data access.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id string) (*models.Room, error)
	// GetAll returns every room, newest first.
	GetAll(ctx context.Context) ([]models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id string) error
}
