package availability

import (
	"time"

	"github.com/komo3344/airbnb-backend/models"
)

// Granularity is the calendar bucket a listing filter works in.
type Granularity int

const (
	Day Granularity = iota
	Month
	Year
)

func (g Granularity) String() string {
	switch g {
	case Year:
		return "year"
	case Month:
		return "month"
	default:
		return "day"
	}
}

// layout accepts one- or two-digit months and days, e.g. "2024-6-1".
func (g Granularity) layout() string {
	switch g {
	case Year:
		return "2006"
	case Month:
		return "2006-1"
	default:
		return "2006-1-2"
	}
}

// periodOf returns the period of granularity g containing d.
func (g Granularity) periodOf(d models.Date) models.Span {
	switch g {
	case Year:
		return models.Span{
			Start: models.Date{Year: d.Year, Month: time.January, Day: 1},
			End:   models.Date{Year: d.Year, Month: time.December, Day: 31},
		}
	case Month:
		last := time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC)
		return models.Span{
			Start: models.Date{Year: d.Year, Month: d.Month, Day: 1},
			End:   models.DateOf(last),
		}
	default:
		return models.Span{Start: d, End: d}
	}
}

// Token is a raw period value taken from a request. Present is false when the
// parameter was not supplied at all.
type Token struct {
	Value   string
	Present bool
}

// TokenOf builds a Token from a lookup such as gin's Context.GetQuery.
// An empty value counts as absent.
func TokenOf(value string, ok bool) Token {
	return Token{Value: value, Present: ok && value != ""}
}

// ResolvePeriod expands tok into the concrete span it names. A token that does
// not parse falls back to the period containing today. The second result is
// false when the token is absent, in which case no period applies.
func ResolvePeriod(g Granularity, tok Token, today models.Date) (models.Span, bool) {
	if !tok.Present {
		return models.Span{}, false
	}
	t, err := time.Parse(g.layout(), tok.Value)
	if err != nil {
		return g.periodOf(today), true
	}
	return g.periodOf(models.DateOf(t)), true
}

// Filter narrows reservations to one calendar period.
type Filter struct {
	Granularity Granularity
	Token       Token
}

// Apply keeps the reservations overlapping the filter's period. With no token
// it keeps only reservations starting strictly after today.
func (f Filter) Apply(rs []models.Reservation, today models.Date) []models.Reservation {
	period, ok := ResolvePeriod(f.Granularity, f.Token, today)
	out := make([]models.Reservation, 0, len(rs))
	for _, r := range rs {
		span, has := r.Span()
		if !has {
			continue
		}
		if ok {
			if Overlaps(span, period) {
				out = append(out, r)
			}
			continue
		}
		if span.Start.After(today) {
			out = append(out, r)
		}
	}
	return out
}

// FilterChain applies its filters in order, each narrowing the previous result.
type FilterChain []Filter

func (c FilterChain) Apply(rs []models.Reservation, today models.Date) []models.Reservation {
	out := append([]models.Reservation(nil), rs...)
	for _, f := range c {
		out = f.Apply(out, today)
	}
	return out
}

// ChainFromQuery builds the day, month, year chain used by room booking listings.
// lookup has the shape of gin's Context.GetQuery.
func ChainFromQuery(lookup func(string) (string, bool)) FilterChain {
	chain := make(FilterChain, 0, 3)
	for _, g := range []Granularity{Day, Month, Year} {
		chain = append(chain, Filter{Granularity: g, Token: TokenOf(lookup(g.String()))})
	}
	return chain
}
