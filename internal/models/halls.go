package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hall is a bookable space inside a venue. BasePricePerPlate is the owner's
// quoted per-guest price and the reference point for offer negotiation.
// IncludedFood lists food items bundled into that price; they cannot be
// selected again as extras on a booking.
type Hall struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	VenueID           primitive.ObjectID   `bson:"venue" json:"venue"`
	Name              string               `bson:"name" json:"name" validate:"required"`
	Capacity          int                  `bson:"capacity" json:"capacity" validate:"required,gt=0"`
	BasePricePerPlate float64              `bson:"base_price_per_plate" json:"base_price_per_plate" validate:"required,gt=0"`
	IncludedFood      []primitive.ObjectID `bson:"included_food,omitempty" json:"included_food,omitempty"`
	IsAvailable       bool                 `bson:"is_available" json:"is_available"`
	Images            []string             `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt         time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time            `bson:"updated_at" json:"updated_at"`
}

func (h *Hall) BeforeCreate() error {
	if h.ID.IsZero() {
		h.ID = primitive.NewObjectID()
	}
	return nil
}

// IncludesFood reports whether the given food item is part of the hall's
// bundled menu.
func (h *Hall) IncludesFood(foodId primitive.ObjectID) bool {
	for _, id := range h.IncludedFood {
		if id == foodId {
			return true
		}
	}
	return false
}
