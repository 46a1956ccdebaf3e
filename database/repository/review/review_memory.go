package reviewRepo

import (
	"context"
	"fmt"
	"slices"

	"github.com/komo3344/airbnb-backend/database/memory"
	"github.com/komo3344/airbnb-backend/models"
)

// MemoryReviewRepo keeps reviews in process memory.
type MemoryReviewRepo struct {
	reviews *memory.Table[models.Review]
}

func NewMemoryReviewRepo() *MemoryReviewRepo {
	return &MemoryReviewRepo{reviews: memory.NewTable[models.Review]()}
}

func (m *MemoryReviewRepo) Create(_ context.Context, review *models.Review) error {
	if !m.reviews.Insert(review.ID, *review, nil) {
		return fmt.Errorf("review %s already exists", review.ID)
	}
	return nil
}

func (m *MemoryReviewRepo) ListBySubject(_ context.Context, subject models.Subject) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range m.reviews.All() {
		if r.Subject() == subject {
			out = append(out, r)
		}
	}
	slices.Reverse(out)
	return out, nil
}
