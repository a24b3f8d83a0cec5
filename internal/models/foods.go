package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is an a-la-carte menu item a venue offers beyond a hall's bundled
// menu. Category is the coarse Veg / Non Veg split used by the booking form
// filter; MealType is free-form ("Lunch", "Dinner", ...).
type Food struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VenueID    primitive.ObjectID `bson:"venue" json:"venue"`
	Name       string             `bson:"name" json:"name" validate:"required"`
	Price      float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Category   string             `bson:"category" json:"category" validate:"required"`
	CategoryID primitive.ObjectID `bson:"category_id,omitempty" json:"category_id,omitempty"`
	MealType   string             `bson:"meal_type,omitempty" json:"meal_type,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

func (f *Food) BeforeCreate() error {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	return nil
}

type FoodCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VenueID   primitive.ObjectID `bson:"venue" json:"venue"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (fc *FoodCategory) BeforeCreate() error {
	if fc.ID.IsZero() {
		fc.ID = primitive.NewObjectID()
	}
	return nil
}
