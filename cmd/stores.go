package cmd

import (
	"context"
	"fmt"

	"github.com/komo3344/airbnb-backend/config"
	"github.com/komo3344/airbnb-backend/database"
	"github.com/komo3344/airbnb-backend/database/migrations"
	catalogRepo "github.com/komo3344/airbnb-backend/database/repository/catalog"
	experienceRepo "github.com/komo3344/airbnb-backend/database/repository/experience"
	reservationRepo "github.com/komo3344/airbnb-backend/database/repository/reservation"
	reviewRepo "github.com/komo3344/airbnb-backend/database/repository/review"
	roomRepo "github.com/komo3344/airbnb-backend/database/repository/room"
	userRepo "github.com/komo3344/airbnb-backend/database/repository/user"
	wishlistRepo "github.com/komo3344/airbnb-backend/database/repository/wishlist"
	"github.com/komo3344/airbnb-backend/services/listing"
	"github.com/komo3344/airbnb-backend/services/storage"
	"github.com/komo3344/airbnb-backend/utils"

	"go.uber.org/zap"
)

// Store backends selectable through STORE_BACKEND.
const (
	backendMemory   = "memory"
	backendMongo    = "mongo"
	backendPostgres = "postgres"
)

// stores groups the repositories of one backend together with the pingers
// the health monitor polls and the cleanups run on shutdown.
type stores struct {
	users        userRepo.UserRepository
	rooms        roomRepo.RoomRepository
	experiences  experienceRepo.ExperienceRepository
	reservations reservationRepo.ReservationRepository
	reviews      reviewRepo.ReviewRepository
	amenities    catalogRepo.AmenityRepository
	perks        catalogRepo.PerkRepository
	wishlists    wishlistRepo.WishlistRepository

	pingers map[string]utils.Pinger
	closers []func()
}

// listings builds the listing service over these stores. media may be nil.
func (s *stores) listings(media storage.StorageService, pageSize int) *listing.DefaultListingService {
	return &listing.DefaultListingService{
		Rooms:       s.rooms,
		Experiences: s.experiences,
		Reviews:     s.reviews,
		Amenities:   s.amenities,
		Perks:       s.perks,
		Users:       s.users,
		Storage:     media,
		PageSize:    pageSize,
	}
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStores connects the configured backend. The postgres backend keeps
// reservations in PostgreSQL and everything else in MongoDB.
func openStores(ctx context.Context, backend string, migrate bool, logger *zap.Logger) (*stores, error) {
	s := &stores{pingers: map[string]utils.Pinger{}}

	switch backend {
	case backendMemory:
		s.users = userRepo.NewMemoryUserRepo()
		s.rooms = roomRepo.NewMemoryRoomRepo()
		s.experiences = experienceRepo.NewMemoryExperienceRepo()
		s.reservations = reservationRepo.NewMemoryReservationRepo()
		s.reviews = reviewRepo.NewMemoryReviewRepo()
		s.amenities = catalogRepo.NewMemoryAmenityRepo()
		s.perks = catalogRepo.NewMemoryPerkRepo()
		s.wishlists = wishlistRepo.NewMemoryWishlistRepo()
		logger.Warn("Using in-memory store, data is lost on restart")
		return s, nil

	case backendMongo, backendPostgres:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}

	if err := database.InitDB(logger); err != nil {
		return nil, err
	}
	client := database.MongoClient
	s.closers = append(s.closers, func() { _ = client.Disconnect(context.Background()) })
	s.pingers["mongo"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }

	db := database.Database()
	s.users = userRepo.NewMongoUserRepo(db)
	s.rooms = roomRepo.NewMongoRoomRepo(db)
	s.experiences = experienceRepo.NewMongoExperienceRepo(db)
	s.reviews = reviewRepo.NewMongoReviewRepo(db)
	s.amenities = catalogRepo.NewMongoAmenityRepo(db)
	s.perks = catalogRepo.NewMongoPerkRepo(db)
	s.wishlists = wishlistRepo.NewMongoWishlistRepo(db)

	if backend == backendMongo {
		s.reservations = reservationRepo.NewMongoReservationRepo(db)
		return s, nil
	}

	pool, err := database.OpenPostgres(ctx, config.AppConfig.PostgresURL)
	if err != nil {
		s.close()
		return nil, err
	}
	s.closers = append(s.closers, pool.Close)
	s.pingers["postgres"] = func(ctx context.Context) error { return pool.Ping(ctx) }

	if migrate {
		applied, err := migrations.Up(ctx, pool)
		if err != nil {
			s.close()
			return nil, err
		}
		if len(applied) > 0 {
			logger.Info("Migrations applied", zap.Strings("files", applied))
		}
	}
	s.reservations = reservationRepo.NewPostgresReservationRepo(pool)
	return s, nil
}
