package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AgreementTemplate is an owner-authored boilerplate agreement attached to
// accepted bookings. Each owner has at most one default template.
type AgreementTemplate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   primitive.ObjectID `bson:"owner" json:"owner"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Body      string             `bson:"body" json:"body" validate:"required"`
	IsDefault bool               `bson:"is_default" json:"is_default"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func (t *AgreementTemplate) BeforeCreate() error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	return nil
}

type CreateTemplateRequest struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body" validate:"required"`
	IsDefault bool   `json:"is_default"`
}

type UpdateTemplateRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}
