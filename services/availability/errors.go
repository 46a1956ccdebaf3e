package availability

import (
	"errors"
	"fmt"
)

// Reason names why a proposed reservation was refused.
type Reason string

const (
	ReasonPastDate    Reason = "past_date"
	ReasonBadOrdering Reason = "bad_ordering"
	ReasonOverlap     Reason = "overlap"
	ReasonOutOfWindow Reason = "out_of_window"
)

var (
	ErrPastDate    = errors.New("can't book in the past")
	ErrBadOrdering = errors.New("check in should be smaller than check out")
	ErrOverlap     = errors.New("those (or some) of those dates are already taken")
	ErrOutOfWindow = errors.New("date is outside the experience's bookable window")

	// ErrConstraintViolation is returned by a store whose own guard refused the write.
	ErrConstraintViolation = errors.New("reservation violates a store constraint")
)

// Rejection is the error returned when a proposal is refused.
// Field names the offending input, when there is one.
type Rejection struct {
	Reason  Reason
	Field   string
	Message string
	Err     error
}

func (r *Rejection) Error() string {
	msg := r.Message
	if msg == "" && r.Err != nil {
		msg = r.Err.Error()
	}
	if r.Field != "" {
		return r.Field + ": " + msg
	}
	return msg
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

func reject(reason Reason, field string, err error) *Rejection {
	return &Rejection{Reason: reason, Field: field, Message: err.Error(), Err: err}
}

// FromConstraintViolation reports a store-level race loss as an overlap.
// The store's error stays in the chain, so errors.Is matches both
// ErrOverlap and ErrConstraintViolation.
func FromConstraintViolation(cause error) *Rejection {
	return &Rejection{
		Reason:  ReasonOverlap,
		Message: ErrOverlap.Error(),
		Err:     fmt.Errorf("%w: %w", ErrOverlap, cause),
	}
}

// ReasonOf extracts the rejection reason from err, if err is a Rejection.
func ReasonOf(err error) (Reason, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return "", false
}
