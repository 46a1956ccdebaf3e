package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/availability"
	"github.com/komo3344/airbnb-backend/services/booking"
	"github.com/komo3344/airbnb-backend/services/listing"
	"github.com/komo3344/airbnb-backend/services/storage"
	"github.com/komo3344/airbnb-backend/services/user"
	"github.com/komo3344/airbnb-backend/services/wishlist"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func rejection(t *testing.T) error {
	t.Helper()
	d := func(s string) models.Date {
		v, err := models.ParseDate(s)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
	return availability.EvaluateRoom(nil, models.RoomInterval{CheckIn: d("2030-01-01"), CheckOut: d("2030-01-02")}, d("2030-01-05"))
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"rejection", rejection(t), http.StatusBadRequest},
		{"race loss", availability.FromConstraintViolation(availability.ErrConstraintViolation), http.StatusConflict},
		{"guests", booking.ErrInvalidGuests, http.StatusBadRequest},
		{"booking missing", fmt.Errorf("room %w", booking.ErrNotFound), http.StatusNotFound},
		{"listing missing", listing.ErrNotFound, http.StatusNotFound},
		{"amenity missing", fmt.Errorf("%w: amenity wifi", listing.ErrNotFound), http.StatusNotFound},
		{"wishlist missing", fmt.Errorf("%w: wishlist 1", wishlist.ErrNotFound), http.StatusNotFound},
		{"forbidden", listing.ErrForbidden, http.StatusForbidden},
		{"invalid listing", fmt.Errorf("%w: bad kind", listing.ErrInvalid), http.StatusBadRequest},
		{"cancel", booking.ErrCancellationNotImplemented, http.StatusNotImplemented},
		{"credentials", user.ErrInvalidCredentials, http.StatusUnauthorized},
		{"exists", user.ErrUserExists, http.StatusConflict},
		{"no storage", storage.ErrUnavailable, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusOf(tt.err); got != tt.want {
				t.Fatalf("statusOf(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestRespondErrorCarriesReason(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	respondError(c, rejection(t))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["reason"] != "past_date" || body["field"] != "check_in" || body["error"] != "can't book in the past" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestRespondErrorHidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, errors.New("mongo: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	got := w.Body.String()
	if !json.Valid([]byte(got)) || strings.Contains(got, "connection refused") {
		t.Fatalf("unexpected body %q", got)
	}
}
