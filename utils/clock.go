package utils

import (
	"time"

	"github.com/komo3344/airbnb-backend/models"
)

// Today is the calendar date of now in loc. Every "today" the booking rules
// see comes from here.
func Today(loc *time.Location, now time.Time) models.Date {
	if loc == nil {
		loc = time.UTC
	}
	return models.DateOf(now.In(loc))
}
