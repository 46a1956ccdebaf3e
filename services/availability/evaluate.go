package availability

import (
	"fmt"

	"github.com/komo3344/airbnb-backend/models"
)

// EvaluateRoom decides whether a room interval may be booked against existing.
// Checks run in order and stop at the first failure: check_in against today,
// check_out against today, check_out before check_in, overlap.
func EvaluateRoom(existing []models.Reservation, proposed models.RoomInterval, today models.Date) error {
	if err := RejectPast(proposed.CheckIn, today); err != nil {
		return reject(ReasonPastDate, "check_in", err)
	}
	if err := RejectPast(proposed.CheckOut, today); err != nil {
		return reject(ReasonPastDate, "check_out", err)
	}
	if proposed.CheckOut.Before(proposed.CheckIn) {
		return reject(ReasonBadOrdering, "", ErrBadOrdering)
	}
	if !IsAvailable(existing, proposed.Occupies()) {
		return reject(ReasonOverlap, "", ErrOverlap)
	}
	return nil
}

// EvaluateExperience decides whether slot may be booked inside window.
// Experience days are bounded by the window only, never by today.
func EvaluateExperience(existing []models.Reservation, slot models.ExperienceSlot, window models.Span) error {
	switch {
	case slot.Day.Before(window.Start):
		return reject(ReasonOutOfWindow, "experience_time",
			fmt.Errorf("%w: experience starts on %s", ErrOutOfWindow, window.Start))
	case slot.Day.After(window.End):
		return reject(ReasonOutOfWindow, "experience_time",
			fmt.Errorf("%w: experience ends on %s", ErrOutOfWindow, window.End))
	}
	if !IsAvailable(existing, slot.Occupies()) {
		return reject(ReasonOverlap, "experience_time", ErrOverlap)
	}
	return nil
}
