package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/easyevent/server/internal/models"
)

const hallListCacheTTL = 60 * time.Second

type HallService struct {
	hallsRepo  models.HallsRepo
	venuesRepo models.VenuesRepo
	foodsRepo  models.FoodsRepo
	cache      *redis.Client
}

func NewHallService(hallsRepo models.HallsRepo, venuesRepo models.VenuesRepo, foodsRepo models.FoodsRepo, cache *redis.Client) *HallService {
	return &HallService{
		hallsRepo:  hallsRepo,
		venuesRepo: venuesRepo,
		foodsRepo:  foodsRepo,
		cache:      cache,
	}
}

func hallListCacheKey(venueId primitive.ObjectID) string {
	return "halls:venue:" + venueId.Hex()
}

func (hs *HallService) invalidateHallCache(ctx context.Context, venueId primitive.ObjectID) {
	if hs.cache != nil {
		hs.cache.Del(ctx, hallListCacheKey(venueId))
	}
}

func (hs *HallService) CreateHall(ctx context.Context, hall *models.Hall, venueId, ownerId string) (*models.Hall, error) {
	vid, err := hs.requireOwnership(ctx, venueId, ownerId)
	if err != nil {
		return nil, err
	}

	hall.VenueID = vid
	if err := models.Validate.Struct(hall); err != nil {
		return nil, fmt.Errorf("invalid hall data provided: %v", err)
	}

	// Bundled food must belong to the same venue.
	if len(hall.IncludedFood) > 0 {
		foods, err := hs.foodsRepo.GetFoodsByIDs(ctx, hall.IncludedFood)
		if err != nil {
			return nil, err
		}
		if len(foods) != len(hall.IncludedFood) {
			return nil, fmt.Errorf("one or more included food items do not exist")
		}
		for _, f := range foods {
			if f.VenueID != vid {
				return nil, fmt.Errorf("food item %s does not belong to this venue", f.Name)
			}
		}
	}

	created, err := hs.hallsRepo.CreateHall(ctx, hall)
	if err != nil {
		return nil, err
	}
	hs.invalidateHallCache(ctx, vid)
	return created, nil
}

// ListHallsByVenue serves the public hall listing, cached in redis for a
// short TTL. Owner mutations invalidate the cached entry.
func (hs *HallService) ListHallsByVenue(ctx context.Context, venueId string) ([]*models.Hall, error) {
	vid, err := models.ParseObjectID(venueId)
	if err != nil {
		return nil, models.ErrNotFound
	}

	key := hallListCacheKey(vid)
	if hs.cache != nil {
		if raw, err := hs.cache.Get(ctx, key).Result(); err == nil {
			var halls []*models.Hall
			if err := json.Unmarshal([]byte(raw), &halls); err == nil {
				return halls, nil
			}
		}
	}

	halls, err := hs.hallsRepo.ListHallsByVenue(ctx, vid)
	if err != nil {
		return nil, err
	}

	if hs.cache != nil {
		if raw, err := json.Marshal(halls); err == nil {
			hs.cache.Set(ctx, key, raw, hallListCacheTTL)
		}
	}
	return halls, nil
}

type UpdateHallRequest struct {
	Name              *string  `json:"name,omitempty"`
	Capacity          *int     `json:"capacity,omitempty"`
	BasePricePerPlate *float64 `json:"base_price_per_plate,omitempty"`
	IsAvailable       *bool    `json:"is_available,omitempty"`
	Images            []string `json:"images,omitempty"`
}

func (hs *HallService) UpdateHall(ctx context.Context, hallId, ownerId string, req *UpdateHallRequest) (*models.Hall, error) {
	hall, err := hs.requireHallOwnership(ctx, hallId, ownerId)
	if err != nil {
		return nil, err
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, fmt.Errorf("capacity must be greater than zero")
		}
		update["capacity"] = *req.Capacity
	}
	if req.BasePricePerPlate != nil {
		if *req.BasePricePerPlate <= 0 {
			return nil, fmt.Errorf("base price per plate must be greater than zero")
		}
		update["base_price_per_plate"] = *req.BasePricePerPlate
	}
	if req.IsAvailable != nil {
		update["is_available"] = *req.IsAvailable
	}
	if req.Images != nil {
		update["images"] = req.Images
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	updated, err := hs.hallsRepo.UpdateHall(ctx, hall.ID, update)
	if err != nil {
		return nil, err
	}
	hs.invalidateHallCache(ctx, hall.VenueID)
	return updated, nil
}

func (hs *HallService) DeleteHall(ctx context.Context, hallId, ownerId string) error {
	hall, err := hs.requireHallOwnership(ctx, hallId, ownerId)
	if err != nil {
		return err
	}
	if err := hs.hallsRepo.DeleteHall(ctx, hall.ID); err != nil {
		return err
	}
	hs.invalidateHallCache(ctx, hall.VenueID)
	return nil
}

func (hs *HallService) requireOwnership(ctx context.Context, venueId, ownerId string) (primitive.ObjectID, error) {
	vid, err := models.ParseObjectID(venueId)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound
	}
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound
	}
	venue, err := hs.venuesRepo.GetVenueByID(ctx, vid)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if venue.OwnerID != oid {
		return primitive.NilObjectID, models.ErrNotFound
	}
	return vid, nil
}

func (hs *HallService) requireHallOwnership(ctx context.Context, hallId, ownerId string) (*models.Hall, error) {
	hid, err := models.ParseObjectID(hallId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	hall, err := hs.hallsRepo.GetHallByID(ctx, hid)
	if err != nil {
		return nil, err
	}
	if _, err := hs.requireOwnership(ctx, hall.VenueID.Hex(), ownerId); err != nil {
		return nil, err
	}
	return hall, nil
}
