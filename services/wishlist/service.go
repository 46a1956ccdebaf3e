package wishlist

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	experienceRepo "github.com/komo3344/airbnb-backend/database/repository/experience"
	roomRepo "github.com/komo3344/airbnb-backend/database/repository/room"
	wishlistRepo "github.com/komo3344/airbnb-backend/database/repository/wishlist"
	"github.com/komo3344/airbnb-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultWishlistService) List(ctx context.Context, userID string) ([]models.WishlistView, error) {
	lists, err := s.Lists.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlists: %w", err)
	}
	views := make([]models.WishlistView, 0, len(lists))
	for i := range lists {
		v, err := s.view(ctx, &lists[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *DefaultWishlistService) Create(ctx context.Context, userID string, in models.WishlistInput) (*models.WishlistView, error) {
	now := time.Now().UTC()
	list := models.Wishlist{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Rooms:       []string{},
		Experiences: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Lists.Create(ctx, &list); err != nil {
		return nil, fmt.Errorf("failed to create wishlist: %w", err)
	}
	s.Logger.Info("Wishlist created", zap.String("wishlistID", list.ID), zap.String("userID", userID))
	return s.view(ctx, &list)
}

func (s *DefaultWishlistService) Get(ctx context.Context, id, userID string) (*models.WishlistView, error) {
	list, err := s.owned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, list)
}

func (s *DefaultWishlistService) Rename(ctx context.Context, id, userID string, in models.WishlistInput) (*models.WishlistView, error) {
	return s.modify(ctx, id, userID, func(list *models.Wishlist) error {
		list.Name = in.Name
		return nil
	})
}

func (s *DefaultWishlistService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.Lists.Delete(ctx, id); err != nil && !errors.Is(err, wishlistRepo.ErrNotFound) {
		return fmt.Errorf("failed to delete wishlist: %w", err)
	}
	return nil
}

func (s *DefaultWishlistService) ToggleRoom(ctx context.Context, id, userID, roomID string) (*models.WishlistView, error) {
	return s.modify(ctx, id, userID, func(list *models.Wishlist) error {
		if _, err := s.Rooms.GetByID(ctx, roomID); err != nil {
			if errors.Is(err, roomRepo.ErrNotFound) {
				return fmt.Errorf("%w: room %s", ErrNotFound, roomID)
			}
			return fmt.Errorf("failed to fetch room: %w", err)
		}
		list.Rooms = toggle(list.Rooms, roomID)
		return nil
	})
}

func (s *DefaultWishlistService) ToggleExperience(ctx context.Context, id, userID, experienceID string) (*models.WishlistView, error) {
	return s.modify(ctx, id, userID, func(list *models.Wishlist) error {
		if _, err := s.Experiences.GetByID(ctx, experienceID); err != nil {
			if errors.Is(err, experienceRepo.ErrNotFound) {
				return fmt.Errorf("%w: experience %s", ErrNotFound, experienceID)
			}
			return fmt.Errorf("failed to fetch experience: %w", err)
		}
		list.Experiences = toggle(list.Experiences, experienceID)
		return nil
	})
}

// owned loads a wishlist; lists of other users read as missing.
func (s *DefaultWishlistService) owned(ctx context.Context, id, userID string) (*models.Wishlist, error) {
	list, err := s.Lists.GetByID(ctx, id)
	if errors.Is(err, wishlistRepo.ErrNotFound) {
		return nil, fmt.Errorf("%w: wishlist %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	if list.UserID != userID {
		return nil, fmt.Errorf("%w: wishlist %s", ErrNotFound, id)
	}
	return list, nil
}

func (s *DefaultWishlistService) modify(ctx context.Context, id, userID string, change func(*models.Wishlist) error) (*models.WishlistView, error) {
	list, err := s.owned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := change(list); err != nil {
		return nil, err
	}
	list.UpdatedAt = time.Now().UTC()
	if err := s.Lists.Update(ctx, list); err != nil {
		if errors.Is(err, wishlistRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: wishlist %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to update wishlist: %w", err)
	}
	return s.view(ctx, list)
}

// view resolves the saved IDs. Listings deleted since they were saved are
// skipped rather than failing the whole list.
func (s *DefaultWishlistService) view(ctx context.Context, list *models.Wishlist) (*models.WishlistView, error) {
	v := models.WishlistView{
		ID:          list.ID,
		Name:        list.Name,
		Rooms:       []models.ListingSummary{},
		Experiences: []models.ListingSummary{},
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
	for _, id := range list.Rooms {
		room, err := s.Rooms.GetByID(ctx, id)
		if errors.Is(err, roomRepo.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch room %s: %w", id, err)
		}
		v.Rooms = append(v.Rooms, room.Summary())
	}
	for _, id := range list.Experiences {
		exp, err := s.Experiences.GetByID(ctx, id)
		if errors.Is(err, experienceRepo.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch experience %s: %w", id, err)
		}
		v.Experiences = append(v.Experiences, exp.Summary())
	}
	return &v, nil
}

func toggle(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return append(ids, id)
}
