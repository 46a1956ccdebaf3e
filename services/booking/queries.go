package booking

import (
	"context"
	"fmt"

	experienceRepo "github.com/komo3344/airbnb-backend/database/repository/experience"
	roomRepo "github.com/komo3344/airbnb-backend/database/repository/room"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/availability"
)

// QueryRoomBookings lists the room's bookings narrowed by chain, earliest
// check-in first. The result is recomputed from committed state on each call.
func (s *DefaultBookingService) QueryRoomBookings(ctx context.Context, roomID string, chain availability.FilterChain, today models.Date, page int) (models.Page[models.Reservation], error) {
	if _, err := s.Rooms.GetByID(ctx, roomID); err != nil {
		return models.Page[models.Reservation]{}, lookupError("room", err, roomRepo.ErrNotFound)
	}
	rs, err := s.Reservations.FetchReservations(ctx, models.Subject{Kind: models.KindRoom, ID: roomID})
	if err != nil {
		return models.Page[models.Reservation]{}, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return models.Paginate(availability.QueryRange(rs, chain, today), page, s.PageSize), nil
}

// ListExperienceBookings lists the experience's bookings from today onward.
func (s *DefaultBookingService) ListExperienceBookings(ctx context.Context, experienceID string, today models.Date, page int) (models.Page[models.Reservation], error) {
	if _, err := s.Experiences.GetByID(ctx, experienceID); err != nil {
		return models.Page[models.Reservation]{}, lookupError("experience", err, experienceRepo.ErrNotFound)
	}
	rs, err := s.Reservations.FetchReservations(ctx, models.Subject{Kind: models.KindExperience, ID: experienceID})
	if err != nil {
		return models.Page[models.Reservation]{}, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return models.Paginate(availability.Upcoming(rs, today), page, s.PageSize), nil
}
