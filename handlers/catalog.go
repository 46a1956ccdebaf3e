package handlers

import (
	"net/http"

	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/gin-gonic/gin"
)

// ListAmenitiesHandler handles GET /api/amenities.
func (h *ListingHandler) ListAmenitiesHandler(c *gin.Context) {
	page, err := h.Listings.ListAmenities(c.Request.Context(), utils.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateAmenityHandler handles POST /api/amenities.
func (h *ListingHandler) CreateAmenityHandler(c *gin.Context) {
	var in models.AmenityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	a, err := h.Listings.CreateAmenity(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GetAmenityHandler handles GET /api/amenities/:id.
func (h *ListingHandler) GetAmenityHandler(c *gin.Context) {
	a, err := h.Listings.GetAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// UpdateAmenityHandler handles PUT /api/amenities/:id.
func (h *ListingHandler) UpdateAmenityHandler(c *gin.Context) {
	var upd models.AmenityUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}
	a, err := h.Listings.UpdateAmenity(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAmenityHandler handles DELETE /api/amenities/:id.
func (h *ListingHandler) DeleteAmenityHandler(c *gin.Context) {
	if err := h.Listings.DeleteAmenity(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RoomAmenitiesHandler handles GET /api/rooms/:id/amenities.
func (h *ListingHandler) RoomAmenitiesHandler(c *gin.Context) {
	page, err := h.Listings.RoomAmenities(c.Request.Context(), c.Param("id"), utils.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListPerksHandler handles GET /api/perks.
func (h *ListingHandler) ListPerksHandler(c *gin.Context) {
	page, err := h.Listings.ListPerks(c.Request.Context(), utils.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreatePerkHandler handles POST /api/perks.
func (h *ListingHandler) CreatePerkHandler(c *gin.Context) {
	var in models.PerkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Listings.CreatePerk(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetPerkHandler handles GET /api/perks/:id.
func (h *ListingHandler) GetPerkHandler(c *gin.Context) {
	p, err := h.Listings.GetPerk(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdatePerkHandler handles PUT /api/perks/:id.
func (h *ListingHandler) UpdatePerkHandler(c *gin.Context) {
	var upd models.PerkUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Listings.UpdatePerk(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePerkHandler handles DELETE /api/perks/:id.
func (h *ListingHandler) DeletePerkHandler(c *gin.Context) {
	if err := h.Listings.DeletePerk(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExperiencePerksHandler handles GET /api/experiences/:id/perks.
func (h *ListingHandler) ExperiencePerksHandler(c *gin.Context) {
	page, err := h.Listings.ExperiencePerks(c.Request.Context(), c.Param("id"), utils.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
