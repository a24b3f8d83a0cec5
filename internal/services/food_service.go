package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/easyevent/server/internal/models"
)

type FoodService struct {
	foodsRepo  models.FoodsRepo
	venuesRepo models.VenuesRepo
}

func NewFoodService(foodsRepo models.FoodsRepo, venuesRepo models.VenuesRepo) *FoodService {
	return &FoodService{
		foodsRepo:  foodsRepo,
		venuesRepo: venuesRepo,
	}
}

func (fs *FoodService) AddFood(ctx context.Context, food *models.Food, venueId, ownerId string) (*models.Food, error) {
	vid, err := fs.requireOwnership(ctx, venueId, ownerId)
	if err != nil {
		return nil, err
	}

	food.VenueID = vid
	if err := models.Validate.Struct(food); err != nil {
		return nil, fmt.Errorf("invalid food data provided: %v", err)
	}

	return fs.foodsRepo.AddFood(ctx, food)
}

func (fs *FoodService) ListFoodsByVenue(ctx context.Context, venueId string) ([]*models.Food, error) {
	vid, err := models.ParseObjectID(venueId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return fs.foodsRepo.ListFoodsByVenue(ctx, vid)
}

type UpdateFoodRequest struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Category *string  `json:"category,omitempty"`
	MealType *string  `json:"meal_type,omitempty"`
}

func (fs *FoodService) UpdateFood(ctx context.Context, foodId, ownerId string, req *UpdateFoodRequest) (*models.Food, error) {
	food, err := fs.requireFoodOwnership(ctx, foodId, ownerId)
	if err != nil {
		return nil, err
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("price must be greater than zero")
		}
		update["price"] = *req.Price
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.MealType != nil {
		update["meal_type"] = *req.MealType
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	return fs.foodsRepo.UpdateFood(ctx, food.ID, update)
}

func (fs *FoodService) DeleteFood(ctx context.Context, foodId, ownerId string) error {
	food, err := fs.requireFoodOwnership(ctx, foodId, ownerId)
	if err != nil {
		return err
	}
	return fs.foodsRepo.DeleteFood(ctx, food.ID)
}

func (fs *FoodService) CreateFoodCategory(ctx context.Context, category *models.FoodCategory, venueId, ownerId string) (*models.FoodCategory, error) {
	vid, err := fs.requireOwnership(ctx, venueId, ownerId)
	if err != nil {
		return nil, err
	}

	category.VenueID = vid
	if err := models.Validate.Struct(category); err != nil {
		return nil, fmt.Errorf("invalid food category data provided: %v", err)
	}

	return fs.foodsRepo.CreateFoodCategory(ctx, category)
}

func (fs *FoodService) ListFoodCategories(ctx context.Context, venueId string) ([]*models.FoodCategory, error) {
	vid, err := models.ParseObjectID(venueId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return fs.foodsRepo.ListFoodCategories(ctx, vid)
}

func (fs *FoodService) DeleteFoodCategory(ctx context.Context, categoryId, ownerId string) error {
	cid, err := models.ParseObjectID(categoryId)
	if err != nil {
		return models.ErrNotFound
	}
	category, err := fs.foodsRepo.GetFoodCategoryByID(ctx, cid)
	if err != nil {
		return err
	}
	if _, err := fs.requireOwnership(ctx, category.VenueID.Hex(), ownerId); err != nil {
		return err
	}
	return fs.foodsRepo.DeleteFoodCategory(ctx, cid)
}

func (fs *FoodService) requireOwnership(ctx context.Context, venueId, ownerId string) (primitive.ObjectID, error) {
	vid, err := models.ParseObjectID(venueId)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound
	}
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound
	}
	venue, err := fs.venuesRepo.GetVenueByID(ctx, vid)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if venue.OwnerID != oid {
		return primitive.NilObjectID, models.ErrNotFound
	}
	return vid, nil
}

func (fs *FoodService) requireFoodOwnership(ctx context.Context, foodId, ownerId string) (*models.Food, error) {
	fid, err := models.ParseObjectID(foodId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	food, err := fs.foodsRepo.GetFoodByID(ctx, fid)
	if err != nil {
		return nil, err
	}
	if _, err := fs.requireOwnership(ctx, food.VenueID.Hex(), ownerId); err != nil {
		return nil, err
	}
	return food, nil
}
