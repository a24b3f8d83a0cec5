package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/easyevent/server/internal/models"
)

type ReviewService struct {
	reviewsRepo models.ReviewsRepo
	venuesRepo  models.VenuesRepo
	usersRepo   models.UsersRepo
}

func NewReviewService(reviewsRepo models.ReviewsRepo, venuesRepo models.VenuesRepo, usersRepo models.UsersRepo) *ReviewService {
	return &ReviewService{
		reviewsRepo: reviewsRepo,
		venuesRepo:  venuesRepo,
		usersRepo:   usersRepo,
	}
}

type CreateReviewRequest struct {
	Venue   string  `json:"venueId" validate:"required"`
	Rating  float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment string  `json:"comment" validate:"max=1000"`
}

// CreateReview records a rating for an approved venue, stamped with the
// reviewer's display name.
func (rs *ReviewService) CreateReview(ctx context.Context, req *CreateReviewRequest, userId string) (*models.Review, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid review data provided: %v", err)
	}

	uid, err := models.ParseObjectID(userId)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	vid, err := rs.requireApprovedVenue(ctx, req.Venue)
	if err != nil {
		return nil, err
	}

	user, err := rs.usersRepo.GetUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		VenueID:  vid,
		UserID:   uid,
		UserName: user.Name,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	return rs.reviewsRepo.CreateReview(ctx, review)
}

// ListVenueReviews returns the reviews for an approved venue, newest first.
// A venue with no reviews yields an empty list, not an error.
func (rs *ReviewService) ListVenueReviews(ctx context.Context, venueId string) ([]*models.Review, error) {
	vid, err := rs.requireApprovedVenue(ctx, venueId)
	if err != nil {
		return nil, err
	}

	reviews, err := rs.reviewsRepo.ListReviewsByVenue(ctx, vid)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []*models.Review{}
	}
	return reviews, nil
}

func (rs *ReviewService) requireApprovedVenue(ctx context.Context, venueId string) (primitive.ObjectID, error) {
	vid, err := models.ParseObjectID(venueId)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound
	}
	venue, err := rs.venuesRepo.GetVenueByID(ctx, vid)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if venue.Status != models.VenueStatusApproved {
		return primitive.NilObjectID, models.ErrNotFound
	}
	return vid, nil
}
