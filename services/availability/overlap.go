package availability

import "github.com/komo3344/airbnb-backend/models"

// Overlaps reports whether two closed spans share at least one day.
// Touching endpoints count, so a check-out day can't be another booking's check-in.
func Overlaps(a, b models.Span) bool {
	return !a.Start.After(b.End) && !b.Start.After(a.End)
}

// IsAvailable reports whether proposed is free of every reservation in existing.
// The caller supplies the reservations of a single subject.
func IsAvailable(existing []models.Reservation, proposed models.Span) bool {
	for _, r := range existing {
		span, ok := r.Span()
		if !ok {
			continue
		}
		if Overlaps(span, proposed) {
			return false
		}
	}
	return true
}

// RejectPast fails with ErrPastDate when d is before today.
func RejectPast(d, today models.Date) error {
	if d.Before(today) {
		return ErrPastDate
	}
	return nil
}
