package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationBookingRequested = "booking.requested"
	NotificationBookingAccepted  = "booking.accepted"
	NotificationBookingRejected  = "booking.rejected"
	NotificationBookingCancelled = "booking.cancelled"
	NotificationBookingRunning   = "booking.running"
	NotificationBookingCompleted = "booking.completed"
	NotificationVenueApproved    = "venue.approved"
	NotificationVenueBlocked     = "venue.blocked"
)

type Notification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecipientID primitive.ObjectID `bson:"recipient" json:"recipient"`
	Type        string             `bson:"type" json:"type"`
	Message     string             `bson:"message" json:"message"`
	BookingID   primitive.ObjectID `bson:"booking,omitempty" json:"booking,omitempty"`
	VenueID     primitive.ObjectID `bson:"venue,omitempty" json:"venue,omitempty"`
	IsRead      bool               `bson:"is_read" json:"is_read"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

func (n *Notification) BeforeCreate() error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	return nil
}
