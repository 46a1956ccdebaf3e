package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "github.com/komo3344/airbnb-backend/database/repository/user"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultListingService) ListRoomReviews(ctx context.Context, roomID string, page int) (models.Page[models.Review], error) {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return models.Page[models.Review]{}, err
	}
	return s.listReviews(ctx, models.Subject{Kind: models.KindRoom, ID: roomID}, page)
}

func (s *DefaultListingService) CreateRoomReview(ctx context.Context, roomID, userID string, in models.ReviewInput) (*models.Review, error) {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return s.createReview(ctx, models.Subject{Kind: models.KindRoom, ID: roomID}, userID, in)
}

func (s *DefaultListingService) ListExperienceReviews(ctx context.Context, experienceID string, page int) (models.Page[models.Review], error) {
	if _, err := s.GetExperience(ctx, experienceID); err != nil {
		return models.Page[models.Review]{}, err
	}
	return s.listReviews(ctx, models.Subject{Kind: models.KindExperience, ID: experienceID}, page)
}

func (s *DefaultListingService) CreateExperienceReview(ctx context.Context, experienceID, userID string, in models.ReviewInput) (*models.Review, error) {
	if _, err := s.GetExperience(ctx, experienceID); err != nil {
		return nil, err
	}
	return s.createReview(ctx, models.Subject{Kind: models.KindExperience, ID: experienceID}, userID, in)
}

func (s *DefaultListingService) listReviews(ctx context.Context, subject models.Subject, page int) (models.Page[models.Review], error) {
	reviews, err := s.Reviews.ListBySubject(ctx, subject)
	if err != nil {
		return models.Page[models.Review]{}, fmt.Errorf("failed to list reviews: %w", err)
	}
	return models.Paginate(reviews, page, s.PageSize), nil
}

func (s *DefaultListingService) createReview(ctx context.Context, subject models.Subject, userID string, in models.ReviewInput) (*models.Review, error) {
	if in.Rating < models.MinRating || in.Rating > models.MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalid, models.MinRating, models.MaxRating)
	}
	author, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("%w: reviewer %s", ErrNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reviewer: %w", err)
	}

	review := models.Review{
		ID:        uuid.New().String(),
		Kind:      subject.Kind,
		SubjectID: subject.ID,
		User:      models.Reviewer{ID: author.ID, Username: author.Username, Name: author.Name},
		Payload:   in.Payload,
		Rating:    in.Rating,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Reviews.Create(ctx, &review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	utils.GetLogger().Info("Review created", zap.String("reviewID", review.ID), zap.String("subject", subject.Key()))
	return &review, nil
}
