package models

import (
	"time"

	"cloud.google.com/go/civil"
)

// Date is a calendar day with no time-of-day or zone attached.
type Date = civil.Date

// DateLayout is the wire format of a Date ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	return civil.ParseDate(s)
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	return civil.DateOf(t)
}

// Span is a closed interval of calendar days [Start, End].
type Span struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// Contains reports whether d falls inside the span, bounds included.
func (s Span) Contains(d Date) bool {
	return !d.Before(s.Start) && !d.After(s.End)
}
