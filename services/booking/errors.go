package booking

import (
	"errors"
	"fmt"

	"github.com/komo3344/airbnb-backend/services/availability"
)

var (
	ErrNotFound                   = errors.New("not found")
	ErrInvalidGuests              = errors.New("guests must be at least 1")
	ErrMissingDates               = errors.New("booking dates are required")
	ErrCancellationNotImplemented = errors.New("booking cancellation is not supported")
)

func notFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// lookupError turns a repository miss into ErrNotFound and wraps anything else.
func lookupError(resource string, err, repoNotFound error) error {
	if errors.Is(err, repoNotFound) {
		return notFound(resource)
	}
	return fmt.Errorf("failed to load %s: %w", resource, err)
}

// reserveError reports a store guard refusal as an overlap. Rejections from
// the resolver pass through untouched.
func reserveError(err error) error {
	if _, ok := availability.ReasonOf(err); ok {
		return err
	}
	if errors.Is(err, availability.ErrConstraintViolation) {
		return availability.FromConstraintViolation(err)
	}
	return fmt.Errorf("failed to save booking: %w", err)
}
