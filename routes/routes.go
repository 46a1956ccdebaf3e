package routes

import (
	"time"

	"github.com/komo3344/airbnb-backend/handlers"
	"github.com/komo3344/airbnb-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
		api.GET("/profile/:username", hb.GetPublicUserHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(auth)
		protected.GET("/me", hb.GetMeHandler)
		protected.PUT("/me", hb.UpdateMeHandler)
		protected.PUT("/change-password", hb.ChangePasswordHandler)
		protected.POST("/logout", hb.RevokeUserAuthTokenHandler)
	}
}

// RegisterRoomRoutes registers room listing and room booking endpoints.
// Reads are public; writes need a logged-in user.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.ListRoomsHandler)
		api.GET("/:id", hb.GetRoomHandler)
		api.GET("/:id/bookings", hb.RoomBookingsHandler)
		api.GET("/:id/reviews", hb.RoomReviewsHandler)
		api.GET("/:id/amenities", hb.RoomAmenitiesHandler)

		api.POST("", auth, hb.CreateRoomHandler)
		api.PUT("/:id", auth, hb.UpdateRoomHandler)
		api.DELETE("/:id", auth, hb.DeleteRoomHandler)
		api.POST("/:id/photos", auth, hb.UploadRoomPhotoHandler)
		api.POST("/:id/bookings", auth, hb.CreateRoomBookingHandler)
		api.POST("/:id/reviews", auth, hb.CreateRoomReviewHandler)
	}
}

// RegisterExperienceRoutes registers experience listing and booking endpoints.
func RegisterExperienceRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/experiences")
	{
		api.GET("", hb.ListExperiencesHandler)
		api.GET("/:id", hb.GetExperienceHandler)
		api.GET("/:id/bookings", hb.ExperienceBookingsHandler)
		api.GET("/:id/reviews", hb.ExperienceReviewsHandler)
		api.GET("/:id/perks", hb.ExperiencePerksHandler)

		api.POST("", auth, hb.CreateExperienceHandler)
		api.PUT("/:id", auth, hb.UpdateExperienceHandler)
		api.DELETE("/:id", auth, hb.DeleteExperienceHandler)
		api.POST("/:id/photos", auth, hb.UploadExperiencePhotoHandler)
		api.POST("/:id/bookings", auth, hb.CreateExperienceBookingHandler)
		api.POST("/:id/reviews", auth, hb.CreateExperienceReviewHandler)
	}
}

// RegisterCatalogRoutes registers the amenity and perk catalogs. They sit
// beside /api/rooms and /api/experiences because gin will not mix a static
// segment with the :id wildcard at the same level.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	amenities := r.Group("/api/amenities")
	{
		amenities.GET("", hb.ListAmenitiesHandler)
		amenities.GET("/:id", hb.GetAmenityHandler)
		amenities.POST("", auth, hb.CreateAmenityHandler)
		amenities.PUT("/:id", auth, hb.UpdateAmenityHandler)
		amenities.DELETE("/:id", auth, hb.DeleteAmenityHandler)
	}
	perks := r.Group("/api/perks")
	{
		perks.GET("", hb.ListPerksHandler)
		perks.GET("/:id", hb.GetPerkHandler)
		perks.POST("", auth, hb.CreatePerkHandler)
		perks.PUT("/:id", auth, hb.UpdatePerkHandler)
		perks.DELETE("/:id", auth, hb.DeletePerkHandler)
	}
}

// RegisterBookingRoutes registers the signed-in user's booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(auth)
		bookingGroup.GET("/mine", hb.MyBookingsHandler)
		bookingGroup.GET("/:id", hb.GetBookingHandler)
		bookingGroup.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterWishlistRoutes registers the signed-in user's wishlist endpoints.
func RegisterWishlistRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	wishlistGroup := r.Group("/api/wishlists")
	{
		wishlistGroup.Use(auth)
		wishlistGroup.GET("", hb.ListWishlistsHandler)
		wishlistGroup.POST("", hb.CreateWishlistHandler)
		wishlistGroup.GET("/:id", hb.GetWishlistHandler)
		wishlistGroup.PUT("/:id", hb.RenameWishlistHandler)
		wishlistGroup.DELETE("/:id", hb.DeleteWishlistHandler)
		wishlistGroup.PUT("/:id/rooms/:room_id", hb.ToggleWishlistRoomHandler)
		wishlistGroup.PUT("/:id/experiences/:experience_id", hb.ToggleWishlistExperienceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.JWTAuthUserMiddleware(hb.UserRepo, hb.AuthCache)
	RegisterUserRoutes(r, hb, auth)
	RegisterRoomRoutes(r, hb, auth)
	RegisterExperienceRoutes(r, hb, auth)
	RegisterCatalogRoutes(r, hb, auth)
	RegisterBookingRoutes(r, hb, auth)
	RegisterWishlistRoutes(r, hb, auth)
	RegisterHealthRoute(r, hb)
}
