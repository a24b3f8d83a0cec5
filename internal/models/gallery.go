package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryImage is one stored upload. URL is the public path served to
// clients; FileName is the on-disk name used for cleanup.
type GalleryImage struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	URL        string             `bson:"url" json:"url"`
	FileName   string             `bson:"file_name" json:"file_name"`
	UploadedAt time.Time          `bson:"uploaded_at" json:"uploaded_at"`
}

// Gallery is a single per-owner document holding all of the owner's uploaded
// images. Uploads upsert into it so an owner never has more than one gallery.
type Gallery struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   primitive.ObjectID `bson:"owner" json:"owner"`
	Images    []GalleryImage     `bson:"images" json:"images"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
