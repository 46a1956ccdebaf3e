package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/komo3344/airbnb-backend/middleware"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/listing"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler serves room and experience endpoints.
type ListingHandler struct {
	Listings listing.ListingService
}

func NewListingHandler(svc listing.ListingService) *ListingHandler {
	return &ListingHandler{Listings: svc}
}

func filterFromQuery(c *gin.Context, ownerKey string) listing.Filter {
	return listing.Filter{
		OwnerID: c.Query(ownerKey),
		Country: c.Query("country"),
		City:    c.Query("city"),
	}
}

// ListRoomsHandler handles GET /api/rooms.
func (h *ListingHandler) ListRoomsHandler(c *gin.Context) {
	page, err := h.Listings.ListRooms(c.Request.Context(), filterFromQuery(c, "owner"), utils.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateRoomHandler handles POST /api/rooms.
func (h *ListingHandler) CreateRoomHandler(c *gin.Context) {
	var in models.RoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	room, err := h.Listings.CreateRoom(c.Request.Context(), middleware.CurrentUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// GetRoomHandler handles GET /api/rooms/:id.
func (h *ListingHandler) GetRoomHandler(c *gin.Context) {
	room, err := h.Listings.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// UpdateRoomHandler handles PUT /api/rooms/:id.
func (h *ListingHandler) UpdateRoomHandler(c *gin.Context) {
	var upd models.RoomUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}
	room, err := h.Listings.UpdateRoom(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoomHandler handles DELETE /api/rooms/:id.
func (h *ListingHandler) DeleteRoomHandler(c *gin.Context) {
	if err := h.Listings.DeleteRoom(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadRoomPhotoHandler handles POST /api/rooms/:id/photos (multipart field "file").
func (h *ListingHandler) UploadRoomPhotoHandler(c *gin.Context) {
	h.uploadPhoto(c, h.Listings.AddRoomPhoto)
}

// ListExperiencesHandler handles GET /api/experiences.
func (h *ListingHandler) ListExperiencesHandler(c *gin.Context) {
	page, err := h.Listings.ListExperiences(c.Request.Context(), filterFromQuery(c, "host"), utils.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateExperienceHandler handles POST /api/experiences.
func (h *ListingHandler) CreateExperienceHandler(c *gin.Context) {
	var in models.ExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	exp, err := h.Listings.CreateExperience(c.Request.Context(), middleware.CurrentUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}

// GetExperienceHandler handles GET /api/experiences/:id.
func (h *ListingHandler) GetExperienceHandler(c *gin.Context) {
	exp, err := h.Listings.GetExperience(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

// UpdateExperienceHandler handles PUT /api/experiences/:id.
func (h *ListingHandler) UpdateExperienceHandler(c *gin.Context) {
	var upd models.ExperienceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}
	exp, err := h.Listings.UpdateExperience(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

// DeleteExperienceHandler handles DELETE /api/experiences/:id.
func (h *ListingHandler) DeleteExperienceHandler(c *gin.Context) {
	if err := h.Listings.DeleteExperience(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadExperiencePhotoHandler handles POST /api/experiences/:id/photos.
func (h *ListingHandler) UploadExperiencePhotoHandler(c *gin.Context) {
	h.uploadPhoto(c, h.Listings.AddExperiencePhoto)
}

type addPhotoFunc func(ctx context.Context, id, userID string, file io.Reader, description string) (*models.Photo, error)

func (h *ListingHandler) uploadPhoto(c *gin.Context, add addPhotoFunc) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "failed to read file", "details": err.Error()})
		return
	}
	defer file.Close()

	photo, err := add(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), file, c.PostForm("description"))
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Photo uploaded", zap.String("listingID", c.Param("id")), zap.String("publicID", photo.PublicID))
	c.JSON(http.StatusCreated, photo)
}
