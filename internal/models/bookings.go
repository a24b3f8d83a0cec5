package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusAccepted  BookingStatus = "Accepted"
	BookingStatusRejected  BookingStatus = "Rejected"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusRunning   BookingStatus = "Running"
	BookingStatusCompleted BookingStatus = "Completed"
)

// bookingTransitions is the full lifecycle: owners accept, reject or cancel a
// pending request; an accepted booking can still be rejected ("reject offer")
// or moved through Running to Completed via the completion toggle.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusAccepted, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusAccepted: {BookingStatusRejected, BookingStatusRunning, BookingStatusCompleted},
	BookingStatusRunning:  {BookingStatusCompleted},
}

// IsTerminal reports whether no further transitions are permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusRejected || s == BookingStatusCancelled || s == BookingStatusCompleted
}

// IsActive reports whether the booking still occupies the requester's
// one-active-booking-per-venue slot.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusAccepted || s == BookingStatusRunning
}

// CanTransition reports whether moving from s to next is a legal lifecycle
// step.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type OfferMode string

const (
	OfferPerPlate OfferMode = "perPlate"
	OfferTotal    OfferMode = "total"
)

type EventDetails struct {
	EventType  string    `bson:"event_type" json:"event_type"`
	Date       time.Time `bson:"date" json:"date"`
	GuestCount int       `bson:"guest_count" json:"guest_count"`
}

type AdditionalService struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

// Pricing is the snapshot computed once at booking creation. Status changes
// never touch it.
type Pricing struct {
	OriginalPerPlatePrice    float64 `bson:"original_per_plate_price" json:"original_per_plate_price"`
	UserOfferedPerPlatePrice float64 `bson:"user_offered_per_plate_price" json:"user_offered_per_plate_price"`
	FinalPerPlatePrice       float64 `bson:"final_per_plate_price" json:"final_per_plate_price"`
	TotalCost                float64 `bson:"total_cost" json:"total_cost"`
}

type Booking struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	VenueID            primitive.ObjectID   `bson:"venue" json:"venue"`
	HallID             primitive.ObjectID   `bson:"hall" json:"hall"`
	UserID             primitive.ObjectID   `bson:"user" json:"user"`
	OwnerID            primitive.ObjectID   `bson:"venue_owner" json:"venue_owner"`
	EventDetails       EventDetails         `bson:"event_details" json:"event_details"`
	SelectedFoods      []primitive.ObjectID `bson:"selected_foods" json:"selected_foods"`
	AdditionalServices []AdditionalService  `bson:"additional_services,omitempty" json:"additional_services,omitempty"`
	Pricing            Pricing              `bson:"pricing" json:"pricing"`
	Status             BookingStatus        `bson:"status" json:"status"`
	PaymentStatus      string               `bson:"payment_status" json:"payment_status"`
	RejectionReason    string               `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	CreatedAt          time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time            `bson:"updated_at" json:"updated_at"`
}

func (b *Booking) BeforeCreate() error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	return nil
}

// BookedFood is a selected extra resolved to its catalog name and price for
// detail views.
type BookedFood struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Price float64            `json:"price"`
}

// BookingDetail is the read-side shape for single-booking views: the booking
// plus its resolved references.
type BookingDetail struct {
	*Booking
	User          *PublicUser  `json:"user,omitempty"`
	Venue         *Venue       `json:"venue_details,omitempty"`
	Hall          *Hall        `json:"hall_details,omitempty"`
	SelectedFoods []BookedFood `json:"selected_foods_resolved"`
}

// Request DTOs. The client sends its own computed pricing too; everything but
// the offer itself is recomputed server-side.

type BookingOffer struct {
	Mode  OfferMode `json:"mode" validate:"required,oneof=perPlate total"`
	Value float64   `json:"value" validate:"required,gt=0"`
}

type ClientPricing struct {
	OriginalPerPlatePrice    float64 `json:"original_per_plate_price"`
	UserOfferedPerPlatePrice float64 `json:"user_offered_per_plate_price"`
	FinalPerPlatePrice       float64 `json:"final_per_plate_price"`
	TotalCost                float64 `json:"total_cost"`
}

type CreateBookingEventDetails struct {
	EventType  string `json:"event_type" validate:"required,oneof=Marriage Birthday Corporate Other"`
	Date       string `json:"date" validate:"required"`
	GuestCount int    `json:"guest_count" validate:"required,gt=0"`
}

type CreateBookingRequest struct {
	Venue              string                    `json:"venue" validate:"required"`
	Hall               string                    `json:"hall" validate:"required"`
	EventDetails       CreateBookingEventDetails `json:"event_details" validate:"required"`
	SelectedFoods      []string                  `json:"selected_foods"`
	AdditionalServices []AdditionalService       `json:"additional_services"`
	Offer              *BookingOffer             `json:"offer,omitempty"`
	Pricing            *ClientPricing            `json:"pricing,omitempty"`
}
