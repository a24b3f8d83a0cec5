package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/easyevent/server/internal/models"
)

const venueListCacheTTL = 60 * time.Second

type VenueService struct {
	venuesRepo models.VenuesRepo
	notifier   *NotificationService
	cache      *redis.Client
}

func NewVenueService(venuesRepo models.VenuesRepo, notifier *NotificationService, cache *redis.Client) *VenueService {
	return &VenueService{
		venuesRepo: venuesRepo,
		notifier:   notifier,
		cache:      cache,
	}
}

func (vs *VenueService) CreateVenue(ctx context.Context, venue *models.Venue, ownerId string) (*models.Venue, error) {
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID")
	}

	if err := models.Validate.Struct(venue); err != nil {
		return nil, fmt.Errorf("invalid venue data provided: %v", err)
	}

	venue.OwnerID = oid
	return vs.venuesRepo.CreateVenue(ctx, venue)
}

type venueListPage struct {
	Venues []*models.Venue `json:"venues"`
	Total  int             `json:"total"`
}

// ListVenues returns approved venues only; pending and blocked venues are
// invisible to browsing users. Pages are cached in redis for a short TTL,
// best effort, so moderation changes show up within a minute.
func (vs *VenueService) ListVenues(ctx context.Context, offset, limit int) ([]*models.Venue, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	key := fmt.Sprintf("venues:approved:%d:%d", offset, limit)
	if vs.cache != nil {
		if raw, err := vs.cache.Get(ctx, key).Result(); err == nil {
			var page venueListPage
			if err := json.Unmarshal([]byte(raw), &page); err == nil {
				return page.Venues, page.Total, nil
			}
		}
	}

	venues, total, err := vs.venuesRepo.ListVenues(ctx, models.VenueStatusApproved, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	if vs.cache != nil {
		if raw, err := json.Marshal(venueListPage{Venues: venues, Total: total}); err == nil {
			vs.cache.Set(ctx, key, raw, venueListCacheTTL)
		}
	}
	return venues, total, nil
}

func (vs *VenueService) GetVenueByID(ctx context.Context, id string) (*models.Venue, error) {
	vid, err := models.ParseObjectID(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	venue, err := vs.venuesRepo.GetVenueByID(ctx, vid)
	if err != nil {
		return nil, err
	}
	if venue.Status != models.VenueStatusApproved {
		return nil, models.ErrNotFound
	}
	return venue, nil
}

// GetOwnedVenue fetches a venue and verifies the caller owns it. Non-owners
// get ErrNotFound.
func (vs *VenueService) GetOwnedVenue(ctx context.Context, venueId, ownerId string) (*models.Venue, error) {
	vid, err := models.ParseObjectID(venueId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return nil, models.ErrNotFound
	}

	venue, err := vs.venuesRepo.GetVenueByID(ctx, vid)
	if err != nil {
		return nil, err
	}
	if venue.OwnerID != oid {
		return nil, models.ErrNotFound
	}
	return venue, nil
}

func (vs *VenueService) ListVenuesByOwner(ctx context.Context, ownerId string) ([]*models.Venue, error) {
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return vs.venuesRepo.ListVenuesByOwner(ctx, oid)
}

// ListAllVenues is the admin moderation view: every venue regardless of
// status.
func (vs *VenueService) ListAllVenues(ctx context.Context, offset, limit int) ([]*models.Venue, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return vs.venuesRepo.ListAllVenues(ctx, offset, limit)
}

// SetVenueStatus applies an admin moderation decision. Blocking requires a
// reason; approving clears any previous one.
func (vs *VenueService) SetVenueStatus(ctx context.Context, venueId string, status models.VenueStatus, reason string) (*models.Venue, error) {
	vid, err := models.ParseObjectID(venueId)
	if err != nil {
		return nil, models.ErrNotFound
	}

	switch status {
	case models.VenueStatusApproved, models.VenueStatusPending:
		reason = ""
	case models.VenueStatusBlocked:
		if reason == "" {
			return nil, fmt.Errorf("a reason is required when blocking a venue")
		}
	default:
		return nil, fmt.Errorf("unsupported venue status: %s", status)
	}

	venue, err := vs.venuesRepo.UpdateVenueStatus(ctx, vid, status, reason)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.VenueStatusApproved:
		vs.notifier.VenueApproved(ctx, venue)
	case models.VenueStatusBlocked:
		vs.notifier.VenueBlocked(ctx, venue, reason)
	}

	return venue, nil
}
