package booking

import (
	"context"
	"errors"
	"fmt"

	experienceRepo "github.com/komo3344/airbnb-backend/database/repository/experience"
	reservationRepo "github.com/komo3344/airbnb-backend/database/repository/reservation"
	roomRepo "github.com/komo3344/airbnb-backend/database/repository/room"
	"github.com/komo3344/airbnb-backend/events"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/availability"
	"github.com/komo3344/airbnb-backend/utils"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// EvaluateRoomBooking accepts the stay when the room is free for every night
// of [check_in, check_out] and neither date lies before today.
func (s *DefaultBookingService) EvaluateRoomBooking(ctx context.Context, roomID, userID string, input RoomBookingInput, today models.Date) (*models.Reservation, error) {
	if _, err := s.Rooms.GetByID(ctx, roomID); err != nil {
		return nil, lookupError("room", err, roomRepo.ErrNotFound)
	}
	if input.CheckIn == nil || input.CheckOut == nil {
		return nil, ErrMissingDates
	}
	if input.Guests < 1 {
		return nil, ErrInvalidGuests
	}

	proposed := models.RoomInterval{CheckIn: *input.CheckIn, CheckOut: *input.CheckOut}
	r := models.NewRoomReservation(roomID, userID, proposed, input.Guests)
	err := s.Reservations.Reserve(ctx, &r, func(existing []models.Reservation) error {
		return availability.EvaluateRoom(existing, proposed, today)
	})
	if err != nil {
		return nil, reserveError(err)
	}

	s.logger().Info("Room booking accepted",
		zap.String("bookingID", r.ID),
		zap.String("roomID", roomID),
		zap.String("userID", userID))
	s.afterAccept(ctx, r)
	return &r, nil
}

// EvaluateExperienceBooking accepts the day when it lies inside the
// experience window and nobody else holds it.
func (s *DefaultBookingService) EvaluateExperienceBooking(ctx context.Context, experienceID, userID string, input ExperienceBookingInput) (*models.Reservation, error) {
	exp, err := s.Experiences.GetByID(ctx, experienceID)
	if err != nil {
		return nil, lookupError("experience", err, experienceRepo.ErrNotFound)
	}
	if input.ExperienceTime == nil {
		return nil, ErrMissingDates
	}
	if input.Guests < 1 {
		return nil, ErrInvalidGuests
	}

	slot := models.ExperienceSlot{Day: *input.ExperienceTime}
	window := exp.Window()
	r := models.NewExperienceReservation(experienceID, userID, slot, input.Guests)
	err = s.Reservations.Reserve(ctx, &r, func(existing []models.Reservation) error {
		return availability.EvaluateExperience(existing, slot, window)
	})
	if err != nil {
		return nil, reserveError(err)
	}

	s.logger().Info("Experience booking accepted",
		zap.String("bookingID", r.ID),
		zap.String("experienceID", experienceID),
		zap.String("userID", userID))
	s.afterAccept(ctx, r)
	return &r, nil
}

// afterAccept queues the reminder and publishes the acceptance event.
// Neither may undo an accepted booking, so failures are only logged.
func (s *DefaultBookingService) afterAccept(ctx context.Context, r models.Reservation) {
	if s.Reminders != nil {
		if _, err := s.Reminders.ScheduleReminder(ctx, r); err != nil {
			s.logger().Warn("Failed to schedule booking reminder", zap.String("bookingID", r.ID), zap.Error(err))
		}
	}
	if s.Events != nil {
		if err := s.Events.PublishJSON(ctx, events.BookingAccepted, events.NewBookingAccepted(r)); err != nil {
			s.logger().Warn("Failed to publish booking event", zap.String("bookingID", r.ID), zap.Error(err))
		}
	}
}

// CancelBooking is not offered; no cancellation policy exists.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id, userID string) error {
	r, err := s.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	s.logger().Info("Cancellation requested",
		zap.String("bookingID", r.ID),
		zap.String("userID", userID))
	return ErrCancellationNotImplemented
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Reservation, error) {
	r, err := s.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("booking", err, reservationRepo.ErrNotFound)
	}
	return r, nil
}

func (s *DefaultBookingService) ListMyBookings(ctx context.Context, userID string) ([]models.Reservation, error) {
	rs, err := s.Reservations.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if rs == nil {
		rs = []models.Reservation{}
	}
	return rs, nil
}

// IsRejection reports whether err is a refusal the caller can fix by
// choosing other dates or guests.
func IsRejection(err error) bool {
	if _, ok := availability.ReasonOf(err); ok {
		return true
	}
	return errors.Is(err, ErrInvalidGuests) || errors.Is(err, ErrMissingDates)
}
