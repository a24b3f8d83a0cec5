package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/easyevent/server/internal/models"
)

type BookingService struct {
	bookingsRepo models.BookingsRepo
	venuesRepo   models.VenuesRepo
	hallsRepo    models.HallsRepo
	foodsRepo    models.FoodsRepo
	usersRepo    models.UsersRepo
	notifier     *NotificationService
}

func NewBookingService(
	bookingsRepo models.BookingsRepo,
	venuesRepo models.VenuesRepo,
	hallsRepo models.HallsRepo,
	foodsRepo models.FoodsRepo,
	usersRepo models.UsersRepo,
	notifier *NotificationService,
) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
		venuesRepo:   venuesRepo,
		hallsRepo:    hallsRepo,
		foodsRepo:    foodsRepo,
		usersRepo:    usersRepo,
		notifier:     notifier,
	}
}

// CreateBooking validates the request against the live catalog, recomputes
// pricing server-side and persists the booking in Pending status. The
// client's own pricing figures are never trusted beyond the raw offer.
func (bs *BookingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest, userId string) (*models.Booking, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid booking data provided: %v", err)
	}

	uid, err := models.ParseObjectID(userId)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	vid, err := models.ParseObjectID(req.Venue)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID")
	}
	hid, err := models.ParseObjectID(req.Hall)
	if err != nil {
		return nil, fmt.Errorf("invalid hall ID")
	}

	venue, err := bs.venuesRepo.GetVenueByID(ctx, vid)
	if err != nil {
		return nil, err
	}
	if venue.Status != models.VenueStatusApproved {
		return nil, models.ErrNotFound
	}

	// Friendly pre-check; the partial unique index still catches races.
	if _, err := bs.bookingsRepo.FindActiveBooking(ctx, uid, vid); err == nil {
		return nil, models.ErrDuplicateBooking
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hall, err := bs.hallsRepo.GetHallByID(ctx, hid)
	if err != nil {
		return nil, err
	}
	if hall.VenueID != vid {
		return nil, models.ErrNotFound
	}
	if !hall.IsAvailable {
		return nil, models.ErrHallUnavailable
	}

	eventDate, err := parseEventDate(req.EventDetails.Date)
	if err != nil {
		return nil, err
	}
	if eventDate.Before(startOfToday()) {
		return nil, fmt.Errorf("event date cannot be in the past")
	}

	if req.EventDetails.GuestCount > hall.Capacity {
		return nil, &models.CapacityExceededError{
			HallName:   hall.Name,
			Capacity:   hall.Capacity,
			GuestCount: req.EventDetails.GuestCount,
		}
	}

	extras, foodIds, err := bs.resolveSelectedFoods(ctx, req.SelectedFoods, vid, hall)
	if err != nil {
		return nil, err
	}

	offer, err := resolveOffer(req)
	if err != nil {
		return nil, err
	}

	pricing, err := ResolvePricing(hall, req.EventDetails.GuestCount, offer, extras)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		VenueID: vid,
		HallID:  hid,
		UserID:  uid,
		OwnerID: venue.OwnerID,
		EventDetails: models.EventDetails{
			EventType:  req.EventDetails.EventType,
			Date:       eventDate,
			GuestCount: req.EventDetails.GuestCount,
		},
		SelectedFoods:      foodIds,
		AdditionalServices: req.AdditionalServices,
		Pricing:            pricing,
		Status:             models.BookingStatusPending,
		PaymentStatus:      "unpaid",
	}

	created, err := bs.bookingsRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	bs.notifier.BookingRequested(ctx, created, venue.Name)
	return created, nil
}

// resolveSelectedFoods fetches the requested extras and rejects items from
// another venue or already bundled into the hall's base price.
func (bs *BookingService) resolveSelectedFoods(ctx context.Context, rawIds []string, venueId primitive.ObjectID, hall *models.Hall) ([]*models.Food, []primitive.ObjectID, error) {
	foodIds := make([]primitive.ObjectID, 0, len(rawIds))
	seen := make(map[primitive.ObjectID]bool, len(rawIds))
	for _, raw := range rawIds {
		fid, err := models.ParseObjectID(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid food ID: %s", raw)
		}
		if seen[fid] {
			continue
		}
		seen[fid] = true
		foodIds = append(foodIds, fid)
	}

	extras, err := bs.foodsRepo.GetFoodsByIDs(ctx, foodIds)
	if err != nil {
		return nil, nil, err
	}
	if len(extras) != len(foodIds) {
		return nil, nil, fmt.Errorf("one or more selected food items do not exist")
	}

	for _, f := range extras {
		if f.VenueID != venueId {
			return nil, nil, fmt.Errorf("food item %s does not belong to this venue", f.Name)
		}
		if hall.IncludesFood(f.ID) {
			return nil, nil, fmt.Errorf("food item %s is already included in the hall price", f.Name)
		}
	}

	return extras, foodIds, nil
}

// resolveOffer prefers the explicit offer block and falls back to the legacy
// pricing payload, treated as a per-plate offer.
func resolveOffer(req *models.CreateBookingRequest) (models.BookingOffer, error) {
	if req.Offer != nil {
		return *req.Offer, nil
	}
	if req.Pricing != nil && req.Pricing.UserOfferedPerPlatePrice > 0 {
		return models.BookingOffer{
			Mode:  models.OfferPerPlate,
			Value: req.Pricing.UserOfferedPerPlatePrice,
		}, nil
	}
	return models.BookingOffer{}, fmt.Errorf("an offer is required")
}

func parseEventDate(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid event date: %s", raw)
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ListVenueRequests returns pending requests for a venue the caller owns.
func (bs *BookingService) ListVenueRequests(ctx context.Context, venueId, ownerId string) ([]*models.Booking, error) {
	vid, err := bs.requireVenueOwnership(ctx, venueId, ownerId)
	if err != nil {
		return nil, err
	}
	return bs.bookingsRepo.ListBookingsByVenue(ctx, vid, []models.BookingStatus{models.BookingStatusPending})
}

// ListVenueApproved returns the accepted, running and completed bookings for
// a venue the caller owns.
func (bs *BookingService) ListVenueApproved(ctx context.Context, venueId, ownerId string) ([]*models.Booking, error) {
	vid, err := bs.requireVenueOwnership(ctx, venueId, ownerId)
	if err != nil {
		return nil, err
	}
	statuses := []models.BookingStatus{
		models.BookingStatusAccepted,
		models.BookingStatusRunning,
		models.BookingStatusCompleted,
	}
	return bs.bookingsRepo.ListBookingsByVenue(ctx, vid, statuses)
}

func (bs *BookingService) requireVenueOwnership(ctx context.Context, venueId, ownerId string) (primitive.ObjectID, error) {
	vid, err := models.ParseObjectID(venueId)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound
	}
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound
	}
	venue, err := bs.venuesRepo.GetVenueByID(ctx, vid)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if venue.OwnerID != oid {
		return primitive.NilObjectID, models.ErrNotFound
	}
	return vid, nil
}

// GetBookingDetail returns a single booking with its references resolved.
// The caller must be the requesting user or the venue owner; anyone else
// gets ErrNotFound.
func (bs *BookingService) GetBookingDetail(ctx context.Context, bookingId, callerId string) (*models.BookingDetail, error) {
	bid, err := models.ParseObjectID(bookingId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	cid, err := models.ParseObjectID(callerId)
	if err != nil {
		return nil, models.ErrNotFound
	}

	booking, err := bs.bookingsRepo.GetBookingByID(ctx, bid)
	if err != nil {
		return nil, err
	}
	if booking.UserID != cid && booking.OwnerID != cid {
		return nil, models.ErrNotFound
	}

	detail := &models.BookingDetail{Booking: booking, SelectedFoods: []models.BookedFood{}}

	if user, err := bs.usersRepo.GetUserByID(ctx, booking.UserID); err == nil {
		detail.User = user.Public()
	}
	if venue, err := bs.venuesRepo.GetVenueByID(ctx, booking.VenueID); err == nil {
		detail.Venue = venue
	}
	if hall, err := bs.hallsRepo.GetHallByID(ctx, booking.HallID); err == nil {
		detail.Hall = hall
	}
	if foods, err := bs.foodsRepo.GetFoodsByIDs(ctx, booking.SelectedFoods); err == nil {
		for _, f := range foods {
			detail.SelectedFoods = append(detail.SelectedFoods, models.BookedFood{
				ID:    f.ID,
				Name:  f.Name,
				Price: f.Price,
			})
		}
	}

	return detail, nil
}

func (bs *BookingService) ListUserBookings(ctx context.Context, userId string) ([]*models.Booking, error) {
	uid, err := models.ParseObjectID(userId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return bs.bookingsRepo.ListBookingsByUser(ctx, uid)
}

// UpdateRequestStatus applies an owner decision to a booking. Rejections
// require a reason. Running and Completed are never reachable through this
// path; they go through SetCompletionStatus and its confirmation gate.
func (bs *BookingService) UpdateRequestStatus(ctx context.Context, bookingId, ownerId string, status models.BookingStatus, reason string) (*models.Booking, error) {
	switch status {
	case models.BookingStatusAccepted, models.BookingStatusRejected, models.BookingStatusCancelled:
	default:
		return nil, fmt.Errorf("status %s cannot be set through a request decision", status)
	}
	return bs.applyTransition(ctx, bookingId, ownerId, status, reason)
}

// applyTransition performs the owner-scoped status change. The underlying
// write is a compare-and-swap so a concurrent decision fails with
// InvalidTransitionError instead of silently overwriting.
func (bs *BookingService) applyTransition(ctx context.Context, bookingId, ownerId string, status models.BookingStatus, reason string) (*models.Booking, error) {
	bid, err := models.ParseObjectID(bookingId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return nil, models.ErrNotFound
	}

	booking, err := bs.bookingsRepo.GetBookingByID(ctx, bid)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID != oid {
		return nil, models.ErrNotFound
	}

	action := transitionAction(status)
	if !booking.Status.CanTransition(status) {
		return nil, &models.InvalidTransitionError{From: booking.Status, Action: action}
	}
	if status == models.BookingStatusRejected && reason == "" {
		return nil, fmt.Errorf("a reason is required when rejecting a booking")
	}

	updated, err := bs.bookingsRepo.UpdateBookingStatus(ctx, bid, booking.Status, status, reason)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &models.InvalidTransitionError{From: booking.Status, Action: action}
		}
		return nil, err
	}

	bs.notifier.BookingDecision(ctx, updated, reason)
	return updated, nil
}

// CompletionUpdate is the payload for the running/completed toggle. Confirm
// must be the literal string YES; the client shows an explicit confirmation
// dialog before the call.
type CompletionUpdate struct {
	BookingID   string `json:"bookingId" validate:"required"`
	RequestID   string `json:"requestId,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
	Confirm     string `json:"confirm" validate:"required"`
}

// SetCompletionStatus moves an accepted booking to Running, or an accepted or
// running booking to Completed.
func (bs *BookingService) SetCompletionStatus(ctx context.Context, req *CompletionUpdate, ownerId string) (*models.Booking, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid completion data provided: %v", err)
	}
	if req.Confirm != "YES" {
		return nil, fmt.Errorf("completion must be confirmed with YES")
	}

	target := models.BookingStatusRunning
	if req.IsCompleted {
		target = models.BookingStatusCompleted
	}
	return bs.applyTransition(ctx, req.BookingID, ownerId, target, "")
}

func transitionAction(status models.BookingStatus) string {
	switch status {
	case models.BookingStatusAccepted:
		return "accept"
	case models.BookingStatusRejected:
		return "reject"
	case models.BookingStatusCancelled:
		return "cancel"
	case models.BookingStatusRunning:
		return "start"
	case models.BookingStatusCompleted:
		return "complete"
	default:
		return "update"
	}
}
