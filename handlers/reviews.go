package handlers

import (
	"context"
	"net/http"

	"github.com/komo3344/airbnb-backend/middleware"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/gin-gonic/gin"
)

type (
	listReviewsFunc  func(ctx context.Context, id string, page int) (models.Page[models.Review], error)
	createReviewFunc func(ctx context.Context, id, userID string, in models.ReviewInput) (*models.Review, error)
)

// RoomReviewsHandler handles GET /api/rooms/:id/reviews.
func (h *ListingHandler) RoomReviewsHandler(c *gin.Context) {
	listReviews(c, h.Listings.ListRoomReviews)
}

// CreateRoomReviewHandler handles POST /api/rooms/:id/reviews.
func (h *ListingHandler) CreateRoomReviewHandler(c *gin.Context) {
	createReview(c, h.Listings.CreateRoomReview)
}

// ExperienceReviewsHandler handles GET /api/experiences/:id/reviews.
func (h *ListingHandler) ExperienceReviewsHandler(c *gin.Context) {
	listReviews(c, h.Listings.ListExperienceReviews)
}

// CreateExperienceReviewHandler handles POST /api/experiences/:id/reviews.
func (h *ListingHandler) CreateExperienceReviewHandler(c *gin.Context) {
	createReview(c, h.Listings.CreateExperienceReview)
}

func listReviews(c *gin.Context, list listReviewsFunc) {
	page, err := list(c.Request.Context(), c.Param("id"), utils.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func createReview(c *gin.Context, create createReviewFunc) {
	var in models.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	review, err := create(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
