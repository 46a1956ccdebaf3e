package catalogRepo

import (
	"context"
	"errors"

	"github.com/komo3344/airbnb-backend/models"
)

var ErrNotFound = errors.New("catalog entry not found")

// Entry is a catalog row, such as an amenity or a perk.
type Entry interface {
	models.Amenity | models.Perk
}

// Repository stores catalog entries keyed by ID.
type Repository[T Entry] interface {
	Create(ctx context.Context, entry *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	// GetAll returns every entry, oldest first.
	GetAll(ctx context.Context) ([]T, error)
	// GetMany returns the entries whose IDs are listed, in the order given.
	// Unknown IDs are skipped.
	GetMany(ctx context.Context, ids []string) ([]T, error)
	Update(ctx context.Context, entry *T) error
	Delete(ctx context.Context, id string) error
}

type (
	AmenityRepository = Repository[models.Amenity]
	PerkRepository    = Repository[models.Perk]
)

func idOf[T Entry](entry T) string {
	switch e := any(entry).(type) {
	case models.Amenity:
		return e.ID
	case models.Perk:
		return e.ID
	}
	return ""
}
