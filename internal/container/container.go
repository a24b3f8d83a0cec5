package container

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/easyevent/server/internal/config"
	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/queue"
	"github.com/easyevent/server/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client
	RedisClient   *redis.Client
	Publisher     *queue.Publisher

	Repo *models.MongodbRepo

	UserService         *services.UserService
	VenueService        *services.VenueService
	HallService         *services.HallService
	FoodService         *services.FoodService
	BookingService      *services.BookingService
	TemplateService     *services.TemplateService
	GalleryService      *services.GalleryService
	ReviewService       *services.ReviewService
	NotificationService *services.NotificationService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
	publisher *queue.Publisher,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	notificationService := services.NewNotificationService(repo, publisher, logger)
	userService := services.NewUserService(repo)
	venueService := services.NewVenueService(repo, notificationService, redisClient)
	hallService := services.NewHallService(repo, repo, repo, redisClient)
	foodService := services.NewFoodService(repo, repo)
	bookingService := services.NewBookingService(repo, repo, repo, repo, repo, notificationService)
	templateService := services.NewTemplateService(repo)
	galleryService := services.NewGalleryService(repo, cfg.UploadDir, cfg.UploadPublicURL, logger)
	reviewService := services.NewReviewService(repo, repo, repo)

	return &Container{
		Logger:              logger,
		Config:              cfg,
		MongoDBClient:       mongoDBClient,
		RedisClient:         redisClient,
		Publisher:           publisher,
		Repo:                repo,
		UserService:         userService,
		VenueService:        venueService,
		HallService:         hallService,
		FoodService:         foodService,
		BookingService:      bookingService,
		TemplateService:     templateService,
		GalleryService:      galleryService,
		ReviewService:       reviewService,
		NotificationService: notificationService,
	}
}
