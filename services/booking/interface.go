package booking

import (
	"context"

	experienceRepo "github.com/komo3344/airbnb-backend/database/repository/experience"
	reservationRepo "github.com/komo3344/airbnb-backend/database/repository/reservation"
	roomRepo "github.com/komo3344/airbnb-backend/database/repository/room"
	"github.com/komo3344/airbnb-backend/events"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/availability"

	"go.uber.org/zap"
)

// BookingService accepts and lists reservations for rooms and experiences.
type BookingService interface {
	EvaluateRoomBooking(ctx context.Context, roomID, userID string, input RoomBookingInput, today models.Date) (*models.Reservation, error)
	EvaluateExperienceBooking(ctx context.Context, experienceID, userID string, input ExperienceBookingInput) (*models.Reservation, error)
	QueryRoomBookings(ctx context.Context, roomID string, chain availability.FilterChain, today models.Date, page int) (models.Page[models.Reservation], error)
	ListExperienceBookings(ctx context.Context, experienceID string, today models.Date, page int) (models.Page[models.Reservation], error)
	CancelBooking(ctx context.Context, id, userID string) error
	GetBooking(ctx context.Context, id string) (*models.Reservation, error)
	ListMyBookings(ctx context.Context, userID string) ([]models.Reservation, error)
}

// ReminderScheduler queues the check-in reminder of an accepted reservation.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, r models.Reservation) (bool, error)
}

// DefaultBookingService implements BookingService.
// Reminders and Events are optional; nil disables them.
type DefaultBookingService struct {
	Reservations reservationRepo.ReservationRepository
	Rooms        roomRepo.RoomRepository
	Experiences  experienceRepo.ExperienceRepository
	Reminders    ReminderScheduler
	Events       events.Publisher
	PageSize     int
	Logger       *zap.Logger
}

// RoomBookingInput is the body of a room booking request.
type RoomBookingInput struct {
	CheckIn  *models.Date `json:"check_in" binding:"required"`
	CheckOut *models.Date `json:"check_out" binding:"required"`
	Guests   int          `json:"guests" binding:"required,min=1"`
}

// ExperienceBookingInput is the body of an experience booking request.
type ExperienceBookingInput struct {
	ExperienceTime *models.Date `json:"experience_time" binding:"required"`
	Guests         int          `json:"guests" binding:"required,min=1"`
}
