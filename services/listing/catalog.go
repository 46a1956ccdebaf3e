package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogRepo "github.com/komo3344/airbnb-backend/database/repository/catalog"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultListingService) ListAmenities(ctx context.Context, page int) (models.Page[models.Amenity], error) {
	all, err := s.Amenities.GetAll(ctx)
	if err != nil {
		return models.Page[models.Amenity]{}, fmt.Errorf("failed to list amenities: %w", err)
	}
	return models.Paginate(all, page, s.PageSize), nil
}

func (s *DefaultListingService) CreateAmenity(ctx context.Context, in models.AmenityInput) (*models.Amenity, error) {
	now := time.Now().UTC()
	a := models.Amenity{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Amenities.Create(ctx, &a); err != nil {
		return nil, fmt.Errorf("failed to create amenity: %w", err)
	}
	utils.GetLogger().Info("Amenity created", zap.String("amenityID", a.ID))
	return &a, nil
}

func (s *DefaultListingService) GetAmenity(ctx context.Context, id string) (*models.Amenity, error) {
	a, err := s.Amenities.GetByID(ctx, id)
	if errors.Is(err, catalogRepo.ErrNotFound) {
		return nil, fmt.Errorf("%w: amenity %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch amenity: %w", err)
	}
	return a, nil
}

func (s *DefaultListingService) UpdateAmenity(ctx context.Context, id string, upd models.AmenityUpdate) (*models.Amenity, error) {
	a, err := s.GetAmenity(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(a)
	a.UpdatedAt = time.Now().UTC()
	if err := s.Amenities.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update amenity: %w", err)
	}
	return a, nil
}

// DeleteAmenity removes the catalog entry. Rooms still naming it simply stop
// showing it, since room amenities are resolved on read.
func (s *DefaultListingService) DeleteAmenity(ctx context.Context, id string) error {
	err := s.Amenities.Delete(ctx, id)
	if errors.Is(err, catalogRepo.ErrNotFound) {
		return fmt.Errorf("%w: amenity %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete amenity: %w", err)
	}
	return nil
}

func (s *DefaultListingService) RoomAmenities(ctx context.Context, roomID string, page int) (models.Page[models.Amenity], error) {
	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return models.Page[models.Amenity]{}, err
	}
	found, err := s.Amenities.GetMany(ctx, room.Amenities)
	if err != nil {
		return models.Page[models.Amenity]{}, fmt.Errorf("failed to resolve amenities: %w", err)
	}
	return models.Paginate(found, page, s.PageSize), nil
}

func (s *DefaultListingService) ListPerks(ctx context.Context, page int) (models.Page[models.Perk], error) {
	all, err := s.Perks.GetAll(ctx)
	if err != nil {
		return models.Page[models.Perk]{}, fmt.Errorf("failed to list perks: %w", err)
	}
	return models.Paginate(all, page, s.PageSize), nil
}

func (s *DefaultListingService) CreatePerk(ctx context.Context, in models.PerkInput) (*models.Perk, error) {
	now := time.Now().UTC()
	p := models.Perk{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Details:     in.Details,
		Explanation: in.Explanation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Perks.Create(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to create perk: %w", err)
	}
	utils.GetLogger().Info("Perk created", zap.String("perkID", p.ID))
	return &p, nil
}

func (s *DefaultListingService) GetPerk(ctx context.Context, id string) (*models.Perk, error) {
	p, err := s.Perks.GetByID(ctx, id)
	if errors.Is(err, catalogRepo.ErrNotFound) {
		return nil, fmt.Errorf("%w: perk %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch perk: %w", err)
	}
	return p, nil
}

func (s *DefaultListingService) UpdatePerk(ctx context.Context, id string, upd models.PerkUpdate) (*models.Perk, error) {
	p, err := s.GetPerk(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(p)
	p.UpdatedAt = time.Now().UTC()
	if err := s.Perks.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update perk: %w", err)
	}
	return p, nil
}

func (s *DefaultListingService) DeletePerk(ctx context.Context, id string) error {
	err := s.Perks.Delete(ctx, id)
	if errors.Is(err, catalogRepo.ErrNotFound) {
		return fmt.Errorf("%w: perk %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete perk: %w", err)
	}
	return nil
}

func (s *DefaultListingService) ExperiencePerks(ctx context.Context, experienceID string, page int) (models.Page[models.Perk], error) {
	exp, err := s.GetExperience(ctx, experienceID)
	if err != nil {
		return models.Page[models.Perk]{}, err
	}
	found, err := s.Perks.GetMany(ctx, exp.Perks)
	if err != nil {
		return models.Page[models.Perk]{}, fmt.Errorf("failed to resolve perks: %w", err)
	}
	return models.Paginate(found, page, s.PageSize), nil
}

// knownAmenities keeps the IDs that name a catalog amenity, deduplicated in
// first-seen order.
func (s *DefaultListingService) knownAmenities(ctx context.Context, ids []string) ([]string, error) {
	found, err := s.Amenities.GetMany(ctx, dedupe(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve amenities: %w", err)
	}
	out := make([]string, 0, len(found))
	for _, a := range found {
		out = append(out, a.ID)
	}
	return out, nil
}

func (s *DefaultListingService) knownPerks(ctx context.Context, ids []string) ([]string, error) {
	found, err := s.Perks.GetMany(ctx, dedupe(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve perks: %w", err)
	}
	out := make([]string, 0, len(found))
	for _, p := range found {
		out = append(out, p.ID)
	}
	return out, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
