package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a visitor rating for a venue. The reviewer's display name is
// denormalized at creation so listings render without a user lookup.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VenueID   primitive.ObjectID `bson:"venue" json:"venue"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	UserName  string             `bson:"user_name" json:"name"`
	Rating    float64            `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment   string             `bson:"comment" json:"comment" validate:"max=1000"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func (r *Review) BeforeCreate() error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	return nil
}
