package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	roomRepo "github.com/komo3344/airbnb-backend/database/repository/room"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultListingService) CreateRoom(ctx context.Context, ownerID string, in models.RoomInput) (*models.Room, error) {
	if !in.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown room kind %q", ErrInvalid, in.Kind)
	}
	amenities, err := s.knownAmenities(ctx, in.Amenities)
	if err != nil {
		return nil, err
	}
	room := models.Room{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        in.Name,
		Country:     in.Country,
		City:        in.City,
		Price:       in.Price,
		Rooms:       in.Rooms,
		Toilets:     in.Toilets,
		Description: in.Description,
		Address:     in.Address,
		PetFriendly: in.PetFriendly,
		Kind:        in.Kind,
		Amenities:   amenities,
		Photos:      []models.Photo{},
	}
	now := time.Now().UTC()
	room.CreatedAt, room.UpdatedAt = now, now

	if err := s.Rooms.Create(ctx, &room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	utils.GetLogger().Info("Room created", zap.String("roomID", room.ID), zap.String("ownerID", ownerID))
	return &room, nil
}

func (s *DefaultListingService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.Rooms.GetByID(ctx, id)
	if errors.Is(err, roomRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	return room, nil
}

func (s *DefaultListingService) ListRooms(ctx context.Context, filter Filter, page int) (models.Page[models.Room], error) {
	rooms, err := s.Rooms.GetAll(ctx)
	if err != nil {
		return models.Page[models.Room]{}, fmt.Errorf("failed to list rooms: %w", err)
	}
	kept := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if filter.matches(r.OwnerID, r.Country, r.City) {
			kept = append(kept, r)
		}
	}
	return models.Paginate(kept, page, s.PageSize), nil
}

// ownedRoom loads a room and checks that userID owns it.
func (s *DefaultListingService) ownedRoom(ctx context.Context, id, userID string) (*models.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if room.OwnerID != userID {
		return nil, ErrForbidden
	}
	return room, nil
}

func (s *DefaultListingService) UpdateRoom(ctx context.Context, id, userID string, upd models.RoomUpdate) (*models.Room, error) {
	room, err := s.ownedRoom(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if upd.Kind != nil && !upd.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown room kind %q", ErrInvalid, *upd.Kind)
	}
	if upd.Amenities != nil {
		if upd.Amenities, err = s.knownAmenities(ctx, upd.Amenities); err != nil {
			return nil, err
		}
	}
	upd.Apply(room)
	room.UpdatedAt = time.Now().UTC()

	if err := s.Rooms.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

func (s *DefaultListingService) DeleteRoom(ctx context.Context, id, userID string) error {
	room, err := s.ownedRoom(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.Rooms.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	s.dropPhotos(ctx, room.Photos)
	return nil
}

// AddRoomPhoto uploads file to the media host and attaches it to the room.
func (s *DefaultListingService) AddRoomPhoto(ctx context.Context, id, userID string, file io.Reader, description string) (*models.Photo, error) {
	room, err := s.ownedRoom(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	photo, err := s.upload(ctx, file, "rooms/"+room.ID, description)
	if err != nil {
		return nil, err
	}
	room.Photos = append(room.Photos, *photo)
	room.UpdatedAt = time.Now().UTC()
	if err := s.Rooms.Update(ctx, room); err != nil {
		s.dropPhotos(ctx, []models.Photo{*photo})
		return nil, fmt.Errorf("failed to attach photo: %w", err)
	}
	return photo, nil
}

func (f Filter) matches(ownerID, country, city string) bool {
	if f.OwnerID != "" && f.OwnerID != ownerID {
		return false
	}
	if f.Country != "" && !strings.EqualFold(f.Country, country) {
		return false
	}
	if f.City != "" && !strings.EqualFold(f.City, city) {
		return false
	}
	return true
}
