package experienceRepo

import (
	"context"
	"errors"

	"github.com/komo3344/airbnb-backend/models"
)

var ErrNotFound = errors.New("experience not found")

// ExperienceRepository defines methods for experience listing data access.
type ExperienceRepository interface {
	Create(ctx context.Context, experience *models.Experience) error
	GetByID(ctx context.Context, id string) (*models.Experience, error)
	// GetAll returns every experience, newest first.
	GetAll(ctx context.Context) ([]models.Experience, error)
	Update(ctx context.Context, experience *models.Experience) error
	Delete(ctx context.Context, id string) error
}
