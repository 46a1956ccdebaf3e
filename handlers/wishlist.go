package handlers

import (
	"net/http"

	"github.com/komo3344/airbnb-backend/middleware"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/wishlist"

	"github.com/gin-gonic/gin"
)

// WishlistHandler serves the signed-in user's wishlists.
type WishlistHandler struct {
	Wishlists wishlist.WishlistService
}

func NewWishlistHandler(svc wishlist.WishlistService) *WishlistHandler {
	return &WishlistHandler{Wishlists: svc}
}

// ListWishlistsHandler handles GET /api/wishlists.
func (h *WishlistHandler) ListWishlistsHandler(c *gin.Context) {
	lists, err := h.Wishlists.List(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// CreateWishlistHandler handles POST /api/wishlists.
func (h *WishlistHandler) CreateWishlistHandler(c *gin.Context) {
	var in models.WishlistInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	list, err := h.Wishlists.Create(c.Request.Context(), middleware.CurrentUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// GetWishlistHandler handles GET /api/wishlists/:id.
func (h *WishlistHandler) GetWishlistHandler(c *gin.Context) {
	list, err := h.Wishlists.Get(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// RenameWishlistHandler handles PUT /api/wishlists/:id.
func (h *WishlistHandler) RenameWishlistHandler(c *gin.Context) {
	var in models.WishlistInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	list, err := h.Wishlists.Rename(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteWishlistHandler handles DELETE /api/wishlists/:id.
func (h *WishlistHandler) DeleteWishlistHandler(c *gin.Context) {
	if err := h.Wishlists.Delete(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleWishlistRoomHandler handles PUT /api/wishlists/:id/rooms/:room_id.
func (h *WishlistHandler) ToggleWishlistRoomHandler(c *gin.Context) {
	list, err := h.Wishlists.ToggleRoom(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), c.Param("room_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ToggleWishlistExperienceHandler handles PUT /api/wishlists/:id/experiences/:experience_id.
func (h *WishlistHandler) ToggleWishlistExperienceHandler(c *gin.Context) {
	list, err := h.Wishlists.ToggleExperience(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), c.Param("experience_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
