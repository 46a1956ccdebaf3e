package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	experienceRepo "github.com/komo3344/airbnb-backend/database/repository/experience"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validateWindow(e *models.Experience) error {
	if e.End.Before(e.Start) {
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalid, e.End, e.Start)
	}
	return nil
}

func (s *DefaultListingService) CreateExperience(ctx context.Context, hostID string, in models.ExperienceInput) (*models.Experience, error) {
	if in.Start == nil || in.End == nil {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalid)
	}
	perks, err := s.knownPerks(ctx, in.Perks)
	if err != nil {
		return nil, err
	}
	exp := models.Experience{
		ID:          uuid.New().String(),
		HostID:      hostID,
		Name:        in.Name,
		Country:     in.Country,
		City:        in.City,
		Price:       in.Price,
		Address:     in.Address,
		Description: in.Description,
		Start:       *in.Start,
		End:         *in.End,
		Perks:       perks,
		Photos:      []models.Photo{},
	}
	if err := validateWindow(&exp); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	exp.CreatedAt, exp.UpdatedAt = now, now

	if err := s.Experiences.Create(ctx, &exp); err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	utils.GetLogger().Info("Experience created", zap.String("experienceID", exp.ID), zap.String("hostID", hostID))
	return &exp, nil
}

func (s *DefaultListingService) GetExperience(ctx context.Context, id string) (*models.Experience, error) {
	exp, err := s.Experiences.GetByID(ctx, id)
	if errors.Is(err, experienceRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experience: %w", err)
	}
	return exp, nil
}

func (s *DefaultListingService) ListExperiences(ctx context.Context, filter Filter, page int) (models.Page[models.Experience], error) {
	all, err := s.Experiences.GetAll(ctx)
	if err != nil {
		return models.Page[models.Experience]{}, fmt.Errorf("failed to list experiences: %w", err)
	}
	kept := make([]models.Experience, 0, len(all))
	for _, e := range all {
		if filter.matches(e.HostID, e.Country, e.City) {
			kept = append(kept, e)
		}
	}
	return models.Paginate(kept, page, s.PageSize), nil
}

func (s *DefaultListingService) ownedExperience(ctx context.Context, id, userID string) (*models.Experience, error) {
	exp, err := s.GetExperience(ctx, id)
	if err != nil {
		return nil, err
	}
	if exp.HostID != userID {
		return nil, ErrForbidden
	}
	return exp, nil
}

// UpdateExperience applies a partial update. Narrowing the window does not
// touch reservations already accepted outside it.
func (s *DefaultListingService) UpdateExperience(ctx context.Context, id, userID string, upd models.ExperienceUpdate) (*models.Experience, error) {
	exp, err := s.ownedExperience(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if upd.Perks != nil {
		if upd.Perks, err = s.knownPerks(ctx, upd.Perks); err != nil {
			return nil, err
		}
	}
	upd.Apply(exp)
	if err := validateWindow(exp); err != nil {
		return nil, err
	}
	exp.UpdatedAt = time.Now().UTC()

	if err := s.Experiences.Update(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return exp, nil
}

func (s *DefaultListingService) DeleteExperience(ctx context.Context, id, userID string) error {
	exp, err := s.ownedExperience(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.Experiences.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	s.dropPhotos(ctx, exp.Photos)
	return nil
}

func (s *DefaultListingService) AddExperiencePhoto(ctx context.Context, id, userID string, file io.Reader, description string) (*models.Photo, error) {
	exp, err := s.ownedExperience(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	photo, err := s.upload(ctx, file, "experiences/"+exp.ID, description)
	if err != nil {
		return nil, err
	}
	exp.Photos = append(exp.Photos, *photo)
	exp.UpdatedAt = time.Now().UTC()
	if err := s.Experiences.Update(ctx, exp); err != nil {
		s.dropPhotos(ctx, []models.Photo{*photo})
		return nil, fmt.Errorf("failed to attach photo: %w", err)
	}
	return photo, nil
}
