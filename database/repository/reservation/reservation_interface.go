package reservationRepo

import (
	"context"
	"errors"

	"github.com/komo3344/airbnb-backend/models"
)

// ErrNotFound is returned when no reservation matches the requested id.
var ErrNotFound = errors.New("reservation not found")

// CheckFunc inspects the committed reservations of a subject and returns a
// non-nil error to refuse the pending write.
type CheckFunc func(existing []models.Reservation) error

// ReservationRepository persists reservations. Implementations must make
// Reserve atomic per subject: no other Reserve for the same subject may commit
// between the read handed to check and the insert.
type ReservationRepository interface {
	// FetchReservations returns the committed reservations of one subject.
	FetchReservations(ctx context.Context, subject models.Subject) ([]models.Reservation, error)
	// InsertReservation stores r, assigning an ID when empty. A store-level
	// guard refusing the row yields availability.ErrConstraintViolation.
	InsertReservation(ctx context.Context, r *models.Reservation) error
	// Reserve reads the subject's reservations, runs check and inserts r as one unit.
	Reserve(ctx context.Context, r *models.Reservation, check CheckFunc) error
	// GetByID retrieves one reservation.
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// ListByUser returns a user's reservations, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	// Delete removes a reservation by its ID.
	Delete(ctx context.Context, id string) error
}
