package listing

import (
	"context"
	"errors"
	"io"

	catalogRepo "github.com/komo3344/airbnb-backend/database/repository/catalog"
	experienceRepo "github.com/komo3344/airbnb-backend/database/repository/experience"
	reviewRepo "github.com/komo3344/airbnb-backend/database/repository/review"
	roomRepo "github.com/komo3344/airbnb-backend/database/repository/room"
	userRepo "github.com/komo3344/airbnb-backend/database/repository/user"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/storage"
)

var (
	ErrNotFound  = errors.New("listing not found")
	ErrForbidden = errors.New("only the owner can change this listing")
	ErrInvalid   = errors.New("invalid listing")
)

// ListingService manages rooms and experiences, their photos and reviews,
// and the amenity and perk catalogs they draw from.
type ListingService interface {
	CreateRoom(ctx context.Context, ownerID string, in models.RoomInput) (*models.Room, error)
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	ListRooms(ctx context.Context, filter Filter, page int) (models.Page[models.Room], error)
	UpdateRoom(ctx context.Context, id, userID string, upd models.RoomUpdate) (*models.Room, error)
	DeleteRoom(ctx context.Context, id, userID string) error
	AddRoomPhoto(ctx context.Context, id, userID string, file io.Reader, description string) (*models.Photo, error)

	CreateExperience(ctx context.Context, hostID string, in models.ExperienceInput) (*models.Experience, error)
	GetExperience(ctx context.Context, id string) (*models.Experience, error)
	ListExperiences(ctx context.Context, filter Filter, page int) (models.Page[models.Experience], error)
	UpdateExperience(ctx context.Context, id, userID string, upd models.ExperienceUpdate) (*models.Experience, error)
	DeleteExperience(ctx context.Context, id, userID string) error
	AddExperiencePhoto(ctx context.Context, id, userID string, file io.Reader, description string) (*models.Photo, error)

	ListRoomReviews(ctx context.Context, roomID string, page int) (models.Page[models.Review], error)
	CreateRoomReview(ctx context.Context, roomID, userID string, in models.ReviewInput) (*models.Review, error)
	ListExperienceReviews(ctx context.Context, experienceID string, page int) (models.Page[models.Review], error)
	CreateExperienceReview(ctx context.Context, experienceID, userID string, in models.ReviewInput) (*models.Review, error)

	ListAmenities(ctx context.Context, page int) (models.Page[models.Amenity], error)
	CreateAmenity(ctx context.Context, in models.AmenityInput) (*models.Amenity, error)
	GetAmenity(ctx context.Context, id string) (*models.Amenity, error)
	UpdateAmenity(ctx context.Context, id string, upd models.AmenityUpdate) (*models.Amenity, error)
	DeleteAmenity(ctx context.Context, id string) error
	// RoomAmenities resolves the room's amenity IDs against the catalog.
	RoomAmenities(ctx context.Context, roomID string, page int) (models.Page[models.Amenity], error)

	ListPerks(ctx context.Context, page int) (models.Page[models.Perk], error)
	CreatePerk(ctx context.Context, in models.PerkInput) (*models.Perk, error)
	GetPerk(ctx context.Context, id string) (*models.Perk, error)
	UpdatePerk(ctx context.Context, id string, upd models.PerkUpdate) (*models.Perk, error)
	DeletePerk(ctx context.Context, id string) error
	ExperiencePerks(ctx context.Context, experienceID string, page int) (models.Page[models.Perk], error)
}

// Filter narrows listings; empty fields match everything.
type Filter struct {
	OwnerID string
	Country string
	City    string
}

// DefaultListingService implements ListingService.
// Storage is nil when no media host is configured.
type DefaultListingService struct {
	Rooms       roomRepo.RoomRepository
	Experiences experienceRepo.ExperienceRepository
	Reviews     reviewRepo.ReviewRepository
	Amenities   catalogRepo.AmenityRepository
	Perks       catalogRepo.PerkRepository
	Users       userRepo.UserRepository
	Storage     storage.StorageService
	PageSize    int
}
