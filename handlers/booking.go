package handlers

import (
	"net/http"
	"time"

	"github.com/komo3344/airbnb-backend/middleware"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/availability"
	"github.com/komo3344/airbnb-backend/services/booking"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves reservation endpoints. Location is the operating
// zone that decides what "today" is; Now defaults to time.Now.
type BookingHandler struct {
	Bookings booking.BookingService
	Location *time.Location
	Now      func() time.Time
}

func NewBookingHandler(svc booking.BookingService, loc *time.Location) *BookingHandler {
	return &BookingHandler{Bookings: svc, Location: loc, Now: time.Now}
}

func (h *BookingHandler) today() models.Date {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return utils.Today(h.Location, now())
}

func publicPage(p models.Page[models.Reservation]) models.Page[models.PublicReservation] {
	out := models.Page[models.PublicReservation]{
		Count:    p.Count,
		Page:     p.Page,
		PageSize: p.PageSize,
		Results:  make([]models.PublicReservation, 0, len(p.Results)),
	}
	for _, r := range p.Results {
		out.Results = append(out.Results, r.Public())
	}
	return out
}

// RoomBookingsHandler handles GET /api/rooms/:id/bookings?day=&month=&year=&page=.
func (h *BookingHandler) RoomBookingsHandler(c *gin.Context) {
	chain := availability.ChainFromQuery(c.GetQuery)
	page, err := h.Bookings.QueryRoomBookings(c.Request.Context(), c.Param("id"), chain, h.today(), utils.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, publicPage(page))
}

// CreateRoomBookingHandler handles POST /api/rooms/:id/bookings.
func (h *BookingHandler) CreateRoomBookingHandler(c *gin.Context) {
	var in booking.RoomBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	r, err := h.Bookings.EvaluateRoomBooking(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), in, h.today())
	if err != nil {
		if reason, ok := availability.ReasonOf(err); ok {
			getLogger(c).Info("Room booking refused", zap.String("roomID", c.Param("id")), zap.String("reason", string(reason)))
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r.Public())
}

// ExperienceBookingsHandler handles GET /api/experiences/:id/bookings?page=.
func (h *BookingHandler) ExperienceBookingsHandler(c *gin.Context) {
	page, err := h.Bookings.ListExperienceBookings(c.Request.Context(), c.Param("id"), h.today(), utils.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, publicPage(page))
}

// CreateExperienceBookingHandler handles POST /api/experiences/:id/bookings.
func (h *BookingHandler) CreateExperienceBookingHandler(c *gin.Context) {
	var in booking.ExperienceBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	r, err := h.Bookings.EvaluateExperienceBooking(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r.Public())
}

// MyBookingsHandler handles GET /api/bookings/mine.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	rs, err := h.Bookings.ListMyBookings(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

// GetBookingHandler handles GET /api/bookings/:id. Only the guest holding the
// booking may read it.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	r, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if r.UserID != middleware.CurrentUserID(c) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "this booking belongs to another user"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	if err := h.Bookings.CancelBooking(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
