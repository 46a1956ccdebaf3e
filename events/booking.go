package events

import (
	"time"

	"github.com/komo3344/airbnb-backend/models"
)

// BookingAcceptedEvent is the body of a booking.accepted message.
type BookingAcceptedEvent struct {
	ReservationID string      `json:"reservation_id"`
	Kind          models.Kind `json:"kind"`
	SubjectID     string      `json:"subject_id"`
	UserID        string      `json:"user_id"`
	Start         models.Date `json:"start"`
	End           models.Date `json:"end"`
	Guests        int         `json:"guests"`
	AcceptedAt    time.Time   `json:"accepted_at"`
}

// NewBookingAccepted builds the event for an accepted reservation.
func NewBookingAccepted(r models.Reservation) BookingAcceptedEvent {
	span, _ := r.Span()
	return BookingAcceptedEvent{
		ReservationID: r.ID,
		Kind:          r.Kind,
		SubjectID:     r.Subject().ID,
		UserID:        r.UserID,
		Start:         span.Start,
		End:           span.End,
		Guests:        r.Guests,
		AcceptedAt:    r.CreatedAt,
	}
}
