package reviewRepo

import (
	"context"

	"github.com/komo3344/airbnb-backend/models"
)

// ReviewRepository stores reviews of rooms and experiences.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	// ListBySubject returns the subject's reviews, newest first.
	ListBySubject(ctx context.Context, subject models.Subject) ([]models.Review, error)
}
