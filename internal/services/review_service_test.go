package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/easyevent/server/internal/models"
)

type stubReviews struct {
	models.ReviewsRepo
	reviews []*models.Review
}

func (s *stubReviews) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := review.BeforeCreate(); err != nil {
		return nil, err
	}
	s.reviews = append(s.reviews, review)
	return review, nil
}

func (s *stubReviews) ListReviewsByVenue(ctx context.Context, venueId primitive.ObjectID) ([]*models.Review, error) {
	var out []*models.Review
	for _, r := range s.reviews {
		if r.VenueID == venueId {
			out = append(out, r)
		}
	}
	return out, nil
}

func newReviewFixture() (*ReviewService, *stubReviews, *models.Venue, *models.User) {
	venue := &models.Venue{
		ID:     primitive.NewObjectID(),
		Name:   "Riverside Gardens",
		Status: models.VenueStatusApproved,
	}
	user := &models.User{
		ID:   primitive.NewObjectID(),
		Name: "Nita L",
	}
	reviews := &stubReviews{}
	svc := NewReviewService(reviews, &stubVenues{venue: venue}, &stubUsers{user: user})
	return svc, reviews, venue, user
}

func TestCreateReviewStampsUserName(t *testing.T) {
	svc, _, venue, user := newReviewFixture()

	review, err := svc.CreateReview(context.Background(), &CreateReviewRequest{
		Venue:   venue.ID.Hex(),
		Rating:  4.5,
		Comment: "Awesome",
	}, user.ID.Hex())
	if err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}
	if review.UserName != "Nita L" {
		t.Errorf("user name = %q, want Nita L", review.UserName)
	}
	if review.Rating != 4.5 || review.VenueID != venue.ID {
		t.Errorf("unexpected review: %+v", review)
	}
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	svc, reviews, venue, user := newReviewFixture()

	for _, rating := range []float64{0, 5.5} {
		_, err := svc.CreateReview(context.Background(), &CreateReviewRequest{
			Venue:  venue.ID.Hex(),
			Rating: rating,
		}, user.ID.Hex())
		if err == nil {
			t.Errorf("rating %v should be rejected", rating)
		}
	}
	if len(reviews.reviews) != 0 {
		t.Error("no review should be stored")
	}
}

func TestListVenueReviewsScopedToVenue(t *testing.T) {
	svc, reviews, venue, _ := newReviewFixture()
	reviews.reviews = []*models.Review{
		{ID: primitive.NewObjectID(), VenueID: venue.ID, Rating: 5},
		{ID: primitive.NewObjectID(), VenueID: primitive.NewObjectID(), Rating: 1},
	}

	got, err := svc.ListVenueReviews(context.Background(), venue.ID.Hex())
	if err != nil {
		t.Fatalf("ListVenueReviews failed: %v", err)
	}
	if len(got) != 1 || got[0].Rating != 5 {
		t.Errorf("got %d reviews, want only this venue's", len(got))
	}
}

func TestListVenueReviewsUnapprovedVenue(t *testing.T) {
	svc, _, venue, _ := newReviewFixture()
	venue.Status = models.VenueStatusPending

	if _, err := svc.ListVenueReviews(context.Background(), venue.ID.Hex()); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for an unapproved venue, got %v", err)
	}
}

func TestListVenueReviewsEmpty(t *testing.T) {
	svc, _, venue, _ := newReviewFixture()

	got, err := svc.ListVenueReviews(context.Background(), venue.ID.Hex())
	if err != nil {
		t.Fatalf("ListVenueReviews failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("want an empty list, got %#v", got)
	}
}
