package availability

import (
	"slices"

	"github.com/komo3344/airbnb-backend/models"
)

// QueryRange returns the reservations passing chain, ordered by start day.
// Nothing is cached; every call works from rs as given.
func QueryRange(rs []models.Reservation, chain FilterChain, today models.Date) []models.Reservation {
	out := chain.Apply(rs, today)
	sortByStart(out)
	return out
}

// Upcoming returns the reservations starting on or after today, ordered by start day.
func Upcoming(rs []models.Reservation, today models.Date) []models.Reservation {
	out := make([]models.Reservation, 0, len(rs))
	for _, r := range rs {
		if span, ok := r.Span(); ok && !span.Start.Before(today) {
			out = append(out, r)
		}
	}
	sortByStart(out)
	return out
}

func sortByStart(rs []models.Reservation) {
	slices.SortStableFunc(rs, func(a, b models.Reservation) int {
		sa, _ := a.Span()
		sb, _ := b.Span()
		switch {
		case sa.Start.Before(sb.Start):
			return -1
		case sa.Start.After(sb.Start):
			return 1
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}
