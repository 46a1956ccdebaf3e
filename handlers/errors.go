package handlers

import (
	"errors"
	"net/http"

	"github.com/komo3344/airbnb-backend/services/availability"
	"github.com/komo3344/airbnb-backend/services/booking"
	"github.com/komo3344/airbnb-backend/services/listing"
	"github.com/komo3344/airbnb-backend/services/storage"
	"github.com/komo3344/airbnb-backend/services/user"
	"github.com/komo3344/airbnb-backend/services/wishlist"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusOf maps service errors onto HTTP status codes. Zero means the error
// is not one callers are expected to handle.
func statusOf(err error) int {
	switch {
	case errors.Is(err, availability.ErrConstraintViolation):
		return http.StatusConflict
	case booking.IsRejection(err),
		errors.Is(err, listing.ErrInvalid),
		errors.Is(err, user.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, listing.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrNotFound),
		errors.Is(err, listing.ErrNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, wishlist.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, user.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, booking.ErrCancellationNotImplemented):
		return http.StatusNotImplemented
	case errors.Is(err, storage.ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return 0
}

// respondError writes err as JSON. Refused bookings carry their reason so
// clients can tell an overlap from a date in the past.
func respondError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == 0 {
		getLogger(c).Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred. Please try again later.")
		return
	}

	body := gin.H{"error": err.Error()}
	var rej *availability.Rejection
	if errors.As(err, &rej) {
		body["error"] = rej.Message
		body["reason"] = rej.Reason
		if rej.Field != "" {
			body["field"] = rej.Field
		}
	}
	c.AbortWithStatusJSON(status, body)
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
}
