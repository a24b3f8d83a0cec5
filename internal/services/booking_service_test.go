package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/easyevent/server/internal/models"
)

// Stubs embed the repo interfaces so only the methods a test exercises need
// implementing.

type stubVenues struct {
	models.VenuesRepo
	venue *models.Venue
}

func (s *stubVenues) GetVenueByID(ctx context.Context, id primitive.ObjectID) (*models.Venue, error) {
	if s.venue == nil || s.venue.ID != id {
		return nil, models.ErrNotFound
	}
	return s.venue, nil
}

type stubHalls struct {
	models.HallsRepo
	hall *models.Hall
}

func (s *stubHalls) GetHallByID(ctx context.Context, id primitive.ObjectID) (*models.Hall, error) {
	if s.hall == nil || s.hall.ID != id {
		return nil, models.ErrNotFound
	}
	return s.hall, nil
}

type stubFoods struct {
	models.FoodsRepo
	foods map[primitive.ObjectID]*models.Food
}

func (s *stubFoods) GetFoodsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Food, error) {
	var out []*models.Food
	for _, id := range ids {
		if f, ok := s.foods[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

type stubUsers struct {
	models.UsersRepo
	user *models.User
}

func (s *stubUsers) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, models.ErrNotFound
	}
	return s.user, nil
}

type stubBookings struct {
	models.BookingsRepo
	created   *models.Booking
	createErr error
	byID      *models.Booking
	active    *models.Booking
	updated   *models.Booking
	updateErr error
}

func (s *stubBookings) CreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if err := b.BeforeCreate(); err != nil {
		return nil, err
	}
	s.created = b
	return b, nil
}

func (s *stubBookings) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	if s.byID == nil || s.byID.ID != id {
		return nil, models.ErrNotFound
	}
	return s.byID, nil
}

func (s *stubBookings) FindActiveBooking(ctx context.Context, userId, venueId primitive.ObjectID) (*models.Booking, error) {
	if s.active != nil && s.active.UserID == userId && s.active.VenueID == venueId {
		return s.active, nil
	}
	return nil, models.ErrNotFound
}

func (s *stubBookings) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to models.BookingStatus, reason string) (*models.Booking, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	if s.byID == nil || s.byID.ID != id || s.byID.Status != from {
		return nil, models.ErrNotFound
	}
	copied := *s.byID
	copied.Status = to
	copied.RejectionReason = reason
	s.updated = &copied
	return &copied, nil
}

type stubNotifications struct {
	models.NotificationsRepo
	sent []*models.Notification
}

func (s *stubNotifications) CreateNotification(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	s.sent = append(s.sent, n)
	return n, nil
}

func testNotifier(repo models.NotificationsRepo) *NotificationService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewNotificationService(repo, nil, logger)
}

type bookingFixture struct {
	svc      *BookingService
	bookings *stubBookings
	notifs   *stubNotifications
	venue    *models.Venue
	hall     *models.Hall
	food     *models.Food
	userId   primitive.ObjectID
	ownerId  primitive.ObjectID
}

func newBookingFixture() *bookingFixture {
	ownerId := primitive.NewObjectID()
	userId := primitive.NewObjectID()

	venue := &models.Venue{
		ID:      primitive.NewObjectID(),
		OwnerID: ownerId,
		Name:    "Riverside Gardens",
		Status:  models.VenueStatusApproved,
	}
	includedFood := &models.Food{
		ID:      primitive.NewObjectID(),
		VenueID: venue.ID,
		Name:    "Dal Fry",
		Price:   15,
	}
	hall := &models.Hall{
		ID:                primitive.NewObjectID(),
		VenueID:           venue.ID,
		Name:              "Grand Hall",
		Capacity:          100,
		BasePricePerPlate: 1000,
		IsAvailable:       true,
		IncludedFood:      []primitive.ObjectID{includedFood.ID},
	}
	extraFood := &models.Food{
		ID:      primitive.NewObjectID(),
		VenueID: venue.ID,
		Name:    "Paneer Tikka",
		Price:   20,
	}

	bookings := &stubBookings{}
	notifs := &stubNotifications{}
	svc := NewBookingService(
		bookings,
		&stubVenues{venue: venue},
		&stubHalls{hall: hall},
		&stubFoods{foods: map[primitive.ObjectID]*models.Food{
			includedFood.ID: includedFood,
			extraFood.ID:    extraFood,
		}},
		&stubUsers{},
		testNotifier(notifs),
	)

	return &bookingFixture{
		svc:      svc,
		bookings: bookings,
		notifs:   notifs,
		venue:    venue,
		hall:     hall,
		food:     extraFood,
		userId:   userId,
		ownerId:  ownerId,
	}
}

func (f *bookingFixture) validRequest() *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		Venue: f.venue.ID.Hex(),
		Hall:  f.hall.ID.Hex(),
		EventDetails: models.CreateBookingEventDetails{
			EventType:  "Marriage",
			Date:       time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
			GuestCount: 50,
		},
		SelectedFoods: []string{f.food.ID.Hex()},
		Offer:         &models.BookingOffer{Mode: models.OfferPerPlate, Value: 800},
	}
}

func TestCreateBookingComputesPricing(t *testing.T) {
	f := newBookingFixture()

	booking, err := f.svc.CreateBooking(context.Background(), f.validRequest(), f.userId.Hex())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if booking.Status != models.BookingStatusPending {
		t.Errorf("status = %s, want Pending", booking.Status)
	}
	if booking.OwnerID != f.ownerId {
		t.Errorf("owner = %s, want venue owner", booking.OwnerID.Hex())
	}
	if booking.Pricing.FinalPerPlatePrice != 900 {
		t.Errorf("final per plate = %v, want 900", booking.Pricing.FinalPerPlatePrice)
	}
	if booking.Pricing.TotalCost != 46000 {
		t.Errorf("total = %v, want 46000", booking.Pricing.TotalCost)
	}
	if len(f.notifs.sent) != 1 || f.notifs.sent[0].RecipientID != f.ownerId {
		t.Error("expected a notification to the venue owner")
	}
}

func TestCreateBookingRejectsOverCapacity(t *testing.T) {
	f := newBookingFixture()
	req := f.validRequest()
	req.EventDetails.GuestCount = 101

	_, err := f.svc.CreateBooking(context.Background(), req, f.userId.Hex())
	var capErr *models.CapacityExceededError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityExceededError, got %v", err)
	}
	if capErr.Capacity != 100 || capErr.GuestCount != 101 {
		t.Errorf("unexpected error detail: %+v", capErr)
	}
}

func TestCreateBookingAcceptsFullCapacity(t *testing.T) {
	f := newBookingFixture()
	req := f.validRequest()
	req.EventDetails.GuestCount = 100

	if _, err := f.svc.CreateBooking(context.Background(), req, f.userId.Hex()); err != nil {
		t.Fatalf("booking at exactly hall capacity should be accepted: %v", err)
	}
}

func TestCreateBookingRejectsIncludedFood(t *testing.T) {
	f := newBookingFixture()
	req := f.validRequest()
	req.SelectedFoods = []string{f.hall.IncludedFood[0].Hex()}

	if _, err := f.svc.CreateBooking(context.Background(), req, f.userId.Hex()); err == nil {
		t.Fatal("expected rejection of food already bundled into the hall price")
	}
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	f := newBookingFixture()
	req := f.validRequest()
	req.EventDetails.Date = "2020-01-01"

	if _, err := f.svc.CreateBooking(context.Background(), req, f.userId.Hex()); err == nil {
		t.Fatal("expected rejection of a past event date")
	}
}

func TestCreateBookingUnavailableHall(t *testing.T) {
	f := newBookingFixture()
	f.hall.IsAvailable = false

	_, err := f.svc.CreateBooking(context.Background(), f.validRequest(), f.userId.Hex())
	if !errors.Is(err, models.ErrHallUnavailable) {
		t.Fatalf("expected ErrHallUnavailable, got %v", err)
	}
}

func TestCreateBookingDuplicate(t *testing.T) {
	f := newBookingFixture()
	f.bookings.createErr = models.ErrDuplicateBooking

	_, err := f.svc.CreateBooking(context.Background(), f.validRequest(), f.userId.Hex())
	if !errors.Is(err, models.ErrDuplicateBooking) {
		t.Fatalf("expected ErrDuplicateBooking, got %v", err)
	}
}

func TestCreateBookingDuplicatePreCheck(t *testing.T) {
	f := newBookingFixture()
	f.bookings.active = &models.Booking{
		ID:      primitive.NewObjectID(),
		UserID:  f.userId,
		VenueID: f.venue.ID,
		Status:  models.BookingStatusPending,
	}

	_, err := f.svc.CreateBooking(context.Background(), f.validRequest(), f.userId.Hex())
	if !errors.Is(err, models.ErrDuplicateBooking) {
		t.Fatalf("expected ErrDuplicateBooking from the pre-check, got %v", err)
	}
	if f.bookings.created != nil {
		t.Error("no booking should be inserted when an active one exists")
	}
}

func TestUpdateRequestStatusRequiresReasonOnReject(t *testing.T) {
	f := newBookingFixture()
	f.bookings.byID = &models.Booking{
		ID:      primitive.NewObjectID(),
		OwnerID: f.ownerId,
		UserID:  f.userId,
		Status:  models.BookingStatusPending,
	}

	_, err := f.svc.UpdateRequestStatus(context.Background(), f.bookings.byID.ID.Hex(), f.ownerId.Hex(), models.BookingStatusRejected, "")
	if err == nil {
		t.Fatal("expected error for rejection without a reason")
	}

	booking, err := f.svc.UpdateRequestStatus(context.Background(), f.bookings.byID.ID.Hex(), f.ownerId.Hex(), models.BookingStatusRejected, "double booked")
	if err != nil {
		t.Fatalf("UpdateRequestStatus failed: %v", err)
	}
	if booking.Status != models.BookingStatusRejected || booking.RejectionReason != "double booked" {
		t.Errorf("unexpected booking state: %+v", booking)
	}
}

func TestUpdateRequestStatusIllegalTransition(t *testing.T) {
	f := newBookingFixture()
	f.bookings.byID = &models.Booking{
		ID:      primitive.NewObjectID(),
		OwnerID: f.ownerId,
		Status:  models.BookingStatusCompleted,
	}

	_, err := f.svc.UpdateRequestStatus(context.Background(), f.bookings.byID.ID.Hex(), f.ownerId.Hex(), models.BookingStatusAccepted, "")
	var transitionErr *models.InvalidTransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

func TestUpdateRequestStatusScopedToOwner(t *testing.T) {
	f := newBookingFixture()
	f.bookings.byID = &models.Booking{
		ID:      primitive.NewObjectID(),
		OwnerID: f.ownerId,
		Status:  models.BookingStatusPending,
	}

	stranger := primitive.NewObjectID()
	_, err := f.svc.UpdateRequestStatus(context.Background(), f.bookings.byID.ID.Hex(), stranger.Hex(), models.BookingStatusAccepted, "")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}
}

func TestUpdateRequestStatusRefusesCompletionStatuses(t *testing.T) {
	f := newBookingFixture()
	f.bookings.byID = &models.Booking{
		ID:      primitive.NewObjectID(),
		OwnerID: f.ownerId,
		UserID:  f.userId,
		Status:  models.BookingStatusAccepted,
	}

	for _, status := range []models.BookingStatus{models.BookingStatusRunning, models.BookingStatusCompleted} {
		if _, err := f.svc.UpdateRequestStatus(context.Background(), f.bookings.byID.ID.Hex(), f.ownerId.Hex(), status, ""); err == nil {
			t.Errorf("request decision must not reach %s without confirmation", status)
		}
	}
	if f.bookings.updated != nil {
		t.Errorf("booking was transitioned to %s", f.bookings.updated.Status)
	}
}

func TestUpdateRequestStatusLostRace(t *testing.T) {
	f := newBookingFixture()
	f.bookings.byID = &models.Booking{
		ID:      primitive.NewObjectID(),
		OwnerID: f.ownerId,
		UserID:  f.userId,
		Status:  models.BookingStatusPending,
	}
	// Concurrent decision wins between the read and the compare-and-swap.
	f.bookings.updateErr = models.ErrNotFound

	_, err := f.svc.UpdateRequestStatus(context.Background(), f.bookings.byID.ID.Hex(), f.ownerId.Hex(), models.BookingStatusAccepted, "")
	var transitionErr *models.InvalidTransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected InvalidTransitionError after a lost race, got %v", err)
	}
}

func TestGetBookingDetailScopedToParties(t *testing.T) {
	f := newBookingFixture()
	f.bookings.byID = &models.Booking{
		ID:      primitive.NewObjectID(),
		VenueID: f.venue.ID,
		HallID:  f.hall.ID,
		OwnerID: f.ownerId,
		UserID:  f.userId,
		Status:  models.BookingStatusPending,
	}
	bookingId := f.bookings.byID.ID.Hex()

	if _, err := f.svc.GetBookingDetail(context.Background(), bookingId, f.userId.Hex()); err != nil {
		t.Fatalf("requesting user should see the booking: %v", err)
	}
	if _, err := f.svc.GetBookingDetail(context.Background(), bookingId, f.ownerId.Hex()); err != nil {
		t.Fatalf("venue owner should see the booking: %v", err)
	}

	stranger := primitive.NewObjectID()
	if _, err := f.svc.GetBookingDetail(context.Background(), bookingId, stranger.Hex()); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a third party, got %v", err)
	}
}

func TestSetCompletionStatus(t *testing.T) {
	f := newBookingFixture()
	f.bookings.byID = &models.Booking{
		ID:      primitive.NewObjectID(),
		OwnerID: f.ownerId,
		UserID:  f.userId,
		Status:  models.BookingStatusAccepted,
	}

	// Missing confirmation is rejected before any state change.
	_, err := f.svc.SetCompletionStatus(context.Background(), &CompletionUpdate{
		BookingID:   f.bookings.byID.ID.Hex(),
		IsCompleted: true,
		Confirm:     "no",
	}, f.ownerId.Hex())
	if err == nil {
		t.Fatal("expected error without YES confirmation")
	}

	booking, err := f.svc.SetCompletionStatus(context.Background(), &CompletionUpdate{
		BookingID: f.bookings.byID.ID.Hex(),
		Confirm:   "YES",
	}, f.ownerId.Hex())
	if err != nil {
		t.Fatalf("SetCompletionStatus failed: %v", err)
	}
	if booking.Status != models.BookingStatusRunning {
		t.Errorf("status = %s, want Running", booking.Status)
	}

	f.bookings.byID.Status = models.BookingStatusRunning
	booking, err = f.svc.SetCompletionStatus(context.Background(), &CompletionUpdate{
		BookingID:   f.bookings.byID.ID.Hex(),
		IsCompleted: true,
		Confirm:     "YES",
	}, f.ownerId.Hex())
	if err != nil {
		t.Fatalf("SetCompletionStatus failed: %v", err)
	}
	if booking.Status != models.BookingStatusCompleted {
		t.Errorf("status = %s, want Completed", booking.Status)
	}
}
