package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VenueStatus string

const (
	VenueStatusPending  VenueStatus = "pending"
	VenueStatusApproved VenueStatus = "approved"
	VenueStatusBlocked  VenueStatus = "blocked"
)

type VenueLocation struct {
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
}

// Venue is the marketplace listing a venue owner manages. Halls, foods and
// galleries hang off it by reference. Status is admin-moderated: only
// approved venues are publicly browsable.
type Venue struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID       primitive.ObjectID `bson:"owner" json:"owner"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Location      VenueLocation      `bson:"location" json:"location"`
	ContactEmail  string             `bson:"contact_email,omitempty" json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone  string             `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	PaymentPolicy string             `bson:"payment_policy,omitempty" json:"payment_policy,omitempty"`
	Images        []string           `bson:"images,omitempty" json:"images,omitempty"`
	Status        VenueStatus        `bson:"status" json:"status"`
	BlockReason   string             `bson:"block_reason,omitempty" json:"block_reason,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

func (v *Venue) BeforeCreate() error {
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	return nil
}
