package handlers

import (
	userRepoPkg "github.com/komo3344/airbnb-backend/database/repository/user"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo  userRepoPkg.UserRepository
	AuthCache *redis.Client

	// User endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc
	GetMeHandler               gin.HandlerFunc
	UpdateMeHandler            gin.HandlerFunc
	ChangePasswordHandler      gin.HandlerFunc
	GetPublicUserHandler       gin.HandlerFunc

	// Room endpoints
	ListRoomsHandler        gin.HandlerFunc
	CreateRoomHandler       gin.HandlerFunc
	GetRoomHandler          gin.HandlerFunc
	UpdateRoomHandler       gin.HandlerFunc
	DeleteRoomHandler       gin.HandlerFunc
	UploadRoomPhotoHandler  gin.HandlerFunc
	RoomReviewsHandler      gin.HandlerFunc
	CreateRoomReviewHandler gin.HandlerFunc
	RoomAmenitiesHandler    gin.HandlerFunc

	// Experience endpoints
	ListExperiencesHandler        gin.HandlerFunc
	CreateExperienceHandler       gin.HandlerFunc
	GetExperienceHandler          gin.HandlerFunc
	UpdateExperienceHandler       gin.HandlerFunc
	DeleteExperienceHandler       gin.HandlerFunc
	UploadExperiencePhotoHandler  gin.HandlerFunc
	ExperienceReviewsHandler      gin.HandlerFunc
	CreateExperienceReviewHandler gin.HandlerFunc
	ExperiencePerksHandler        gin.HandlerFunc

	// Amenity and perk catalog endpoints
	ListAmenitiesHandler gin.HandlerFunc
	CreateAmenityHandler gin.HandlerFunc
	GetAmenityHandler    gin.HandlerFunc
	UpdateAmenityHandler gin.HandlerFunc
	DeleteAmenityHandler gin.HandlerFunc
	ListPerksHandler     gin.HandlerFunc
	CreatePerkHandler    gin.HandlerFunc
	GetPerkHandler       gin.HandlerFunc
	UpdatePerkHandler    gin.HandlerFunc
	DeletePerkHandler    gin.HandlerFunc

	// Booking endpoints
	RoomBookingsHandler            gin.HandlerFunc
	CreateRoomBookingHandler       gin.HandlerFunc
	ExperienceBookingsHandler      gin.HandlerFunc
	CreateExperienceBookingHandler gin.HandlerFunc
	MyBookingsHandler              gin.HandlerFunc
	GetBookingHandler              gin.HandlerFunc
	CancelBookingHandler           gin.HandlerFunc

	// Wishlist endpoints
	ListWishlistsHandler            gin.HandlerFunc
	CreateWishlistHandler           gin.HandlerFunc
	GetWishlistHandler              gin.HandlerFunc
	RenameWishlistHandler           gin.HandlerFunc
	DeleteWishlistHandler           gin.HandlerFunc
	ToggleWishlistRoomHandler       gin.HandlerFunc
	ToggleWishlistExperienceHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler methods into a bundle.
func NewHandlerBundle(userRepo userRepoPkg.UserRepository, authCache *redis.Client, uh *UserHandler, lh *ListingHandler, bh *BookingHandler, wh *WishlistHandler) *HandlerBundle {
	return &HandlerBundle{
		UserRepo:  userRepo,
		AuthCache: authCache,

		RegisterUserHandler:        uh.RegisterUserHandler,
		AuthenticateUserHandler:    uh.AuthenticateUserHandler,
		RevokeUserAuthTokenHandler: uh.RevokeUserAuthTokenHandler,
		GetMeHandler:               uh.GetMeHandler,
		UpdateMeHandler:            uh.UpdateMeHandler,
		ChangePasswordHandler:      uh.ChangePasswordHandler,
		GetPublicUserHandler:       uh.GetPublicUserHandler,

		ListRoomsHandler:        lh.ListRoomsHandler,
		CreateRoomHandler:       lh.CreateRoomHandler,
		GetRoomHandler:          lh.GetRoomHandler,
		UpdateRoomHandler:       lh.UpdateRoomHandler,
		DeleteRoomHandler:       lh.DeleteRoomHandler,
		UploadRoomPhotoHandler:  lh.UploadRoomPhotoHandler,
		RoomReviewsHandler:      lh.RoomReviewsHandler,
		CreateRoomReviewHandler: lh.CreateRoomReviewHandler,
		RoomAmenitiesHandler:    lh.RoomAmenitiesHandler,

		ListExperiencesHandler:        lh.ListExperiencesHandler,
		CreateExperienceHandler:       lh.CreateExperienceHandler,
		GetExperienceHandler:          lh.GetExperienceHandler,
		UpdateExperienceHandler:       lh.UpdateExperienceHandler,
		DeleteExperienceHandler:       lh.DeleteExperienceHandler,
		UploadExperiencePhotoHandler:  lh.UploadExperiencePhotoHandler,
		ExperienceReviewsHandler:      lh.ExperienceReviewsHandler,
		CreateExperienceReviewHandler: lh.CreateExperienceReviewHandler,
		ExperiencePerksHandler:        lh.ExperiencePerksHandler,

		ListAmenitiesHandler: lh.ListAmenitiesHandler,
		CreateAmenityHandler: lh.CreateAmenityHandler,
		GetAmenityHandler:    lh.GetAmenityHandler,
		UpdateAmenityHandler: lh.UpdateAmenityHandler,
		DeleteAmenityHandler: lh.DeleteAmenityHandler,
		ListPerksHandler:     lh.ListPerksHandler,
		CreatePerkHandler:    lh.CreatePerkHandler,
		GetPerkHandler:       lh.GetPerkHandler,
		UpdatePerkHandler:    lh.UpdatePerkHandler,
		DeletePerkHandler:    lh.DeletePerkHandler,

		RoomBookingsHandler:            bh.RoomBookingsHandler,
		CreateRoomBookingHandler:       bh.CreateRoomBookingHandler,
		ExperienceBookingsHandler:      bh.ExperienceBookingsHandler,
		CreateExperienceBookingHandler: bh.CreateExperienceBookingHandler,
		MyBookingsHandler:              bh.MyBookingsHandler,
		GetBookingHandler:              bh.GetBookingHandler,
		CancelBookingHandler:           bh.CancelBookingHandler,

		ListWishlistsHandler:            wh.ListWishlistsHandler,
		CreateWishlistHandler:           wh.CreateWishlistHandler,
		GetWishlistHandler:              wh.GetWishlistHandler,
		RenameWishlistHandler:           wh.RenameWishlistHandler,
		DeleteWishlistHandler:           wh.DeleteWishlistHandler,
		ToggleWishlistRoomHandler:       wh.ToggleWishlistRoomHandler,
		ToggleWishlistExperienceHandler: wh.ToggleWishlistExperienceHandler,

		HealthHandler: HealthHandler,
	}
}
