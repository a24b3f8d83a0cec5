package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/container"
	"github.com/easyevent/server/internal/handlers"
	"github.com/easyevent/server/internal/middleware"
	"github.com/easyevent/server/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(middleware.RateLimit(c.RedisClient, "global", c.Config.RateLimit, c.Config.RateLimitWindow))
	r.Use(gin.Recovery())

	// Uploaded gallery images are served straight from disk.
	r.Static(c.Config.UploadPublicURL, c.Config.UploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "easyevent-api",
			})
		})

		// public routes
		api.POST("/auth/signup", handlers.SignupHandler(c.UserService))
		api.POST("/auth/login", handlers.LoginHandler(c.UserService))
		api.POST("/auth/logout", handlers.LogoutHandler())

		api.GET("/venues", handlers.ListVenuesHandler(c.VenueService))
		api.GET("/venues/:id", handlers.GetVenueByIDHandler(c.VenueService))
		api.GET("/halls/:venueId", handlers.ListHallsByVenueHandler(c.HallService))
		api.GET("/food/venue/:venueId", handlers.ListFoodsByVenueHandler(c.FoodService))
		api.GET("/foodCategory/:venueId", handlers.ListFoodCategoriesHandler(c.FoodService))
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", handlers.GetProfileHandler(c.UserService))

		protected.GET("/booking/mine", handlers.ListMyBookingsHandler(c.BookingService))
		// Booking submissions get a much tighter window than general traffic.
		protected.POST("/booking/create",
			middleware.RateLimit(c.RedisClient, "booking", 10, time.Minute),
			handlers.CreateBookingHandler(c.BookingService))
		protected.GET("/booking/requests/profile/:bookingId", handlers.GetBookingDetailHandler(c.BookingService))
		protected.GET("/booking/approved/details/:bookingId", handlers.GetBookingDetailHandler(c.BookingService))

		protected.POST("/reviews", handlers.CreateReviewHandler(c.ReviewService))
		protected.POST("/reviews/getReview", handlers.GetVenueReviewsHandler(c.ReviewService))

		protected.GET("/notification/getUnreads", handlers.ListUnreadNotificationsHandler(c.NotificationService))
		protected.PATCH("/notification/markRead/:id", handlers.MarkNotificationReadHandler(c.NotificationService))
	}

	owner := api.Group("/")
	owner.Use(middleware.AuthMiddleware())
	owner.Use(middleware.RequireRole(models.RoleVenueOwner, models.RoleAdmin))
	{
		owner.POST("/venues", handlers.CreateVenueHandler(c.VenueService))
		owner.GET("/owner/venues", handlers.ListMyVenuesHandler(c.VenueService))

		owner.POST("/halls/:venueId", handlers.CreateHallHandler(c.HallService))
		owner.PATCH("/halls/update/:id", handlers.UpdateHallHandler(c.HallService))
		owner.DELETE("/halls/delete/:id", handlers.DeleteHallHandler(c.HallService))

		owner.POST("/food/add", handlers.AddFoodHandler(c.FoodService))
		owner.PATCH("/food/:id", handlers.UpdateFoodHandler(c.FoodService))
		owner.DELETE("/food/:id", handlers.DeleteFoodHandler(c.FoodService))
		owner.POST("/foodCategory/create", handlers.CreateFoodCategoryHandler(c.FoodService))
		owner.DELETE("/foodCategory/:id", handlers.DeleteFoodCategoryHandler(c.FoodService))

		owner.GET("/booking/requests/venue/:venueId", handlers.ListVenueRequestsHandler(c.BookingService))
		owner.GET("/booking/approved/venue/:venueId", handlers.ListVenueApprovedHandler(c.BookingService))
		owner.PATCH("/booking/requests/:bookingId", handlers.UpdateRequestStatusHandler(c.BookingService))
		owner.PATCH("/updateStatus", handlers.UpdateCompletionStatusHandler(c.BookingService))

		owner.GET("/booking/templates", handlers.ListTemplatesHandler(c.TemplateService))
		owner.POST("/booking/templates", handlers.CreateTemplateHandler(c.TemplateService))
		owner.PATCH("/booking/templates/:id", handlers.UpdateTemplateHandler(c.TemplateService))
		owner.PATCH("/booking/templates/:id/set-default", handlers.SetDefaultTemplateHandler(c.TemplateService))
		owner.DELETE("/booking/templates/:id", handlers.DeleteTemplateHandler(c.TemplateService))

		owner.POST("/gallery/upload", handlers.UploadGalleryHandler(c.GalleryService))
		owner.GET("/gallery/my-gallery", handlers.GetMyGalleryHandler(c.GalleryService))
		owner.DELETE("/gallery/delete/:imageId", handlers.DeleteGalleryImageHandler(c.GalleryService))
		owner.DELETE("/gallery/delete-all", handlers.DeleteAllGalleryHandler(c.GalleryService))
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/venues", handlers.ListAllVenuesHandler(c.VenueService))
		admin.PATCH("/venues/:id/status", handlers.SetVenueStatusHandler(c.VenueService))
	}

	return r
}
