package services

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/queue"
)

// NotificationService persists in-app notifications and mirrors them onto the
// message queue. Both writes are best-effort: a notification failure never
// fails the action that triggered it.
type NotificationService struct {
	notificationsRepo models.NotificationsRepo
	publisher         *queue.Publisher
	logger            *slog.Logger
}

func NewNotificationService(notificationsRepo models.NotificationsRepo, publisher *queue.Publisher, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		notificationsRepo: notificationsRepo,
		publisher:         publisher,
		logger:            logger,
	}
}

func (ns *NotificationService) ListUnread(ctx context.Context, userId string) ([]*models.Notification, error) {
	uid, err := models.ParseObjectID(userId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return ns.notificationsRepo.ListUnreadNotifications(ctx, uid)
}

func (ns *NotificationService) MarkRead(ctx context.Context, userId, notificationId string) (*models.Notification, error) {
	uid, err := models.ParseObjectID(userId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	nid, err := models.ParseObjectID(notificationId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return ns.notificationsRepo.MarkNotificationRead(ctx, uid, nid)
}

func (ns *NotificationService) BookingRequested(ctx context.Context, booking *models.Booking, venueName string) {
	msg := fmt.Sprintf("New booking request for %s on %s", venueName, booking.EventDetails.Date.Format("2006-01-02"))
	ns.emit(ctx, &models.Notification{
		RecipientID: booking.OwnerID,
		Type:        models.NotificationBookingRequested,
		Message:     msg,
		BookingID:   booking.ID,
		VenueID:     booking.VenueID,
	})
}

// BookingDecision notifies the requesting user of a status change made by
// the owner.
func (ns *NotificationService) BookingDecision(ctx context.Context, booking *models.Booking, reason string) {
	var notifType, msg string
	switch booking.Status {
	case models.BookingStatusAccepted:
		notifType = models.NotificationBookingAccepted
		msg = "Your booking request has been accepted"
	case models.BookingStatusRejected:
		notifType = models.NotificationBookingRejected
		msg = fmt.Sprintf("Your booking request has been rejected: %s", reason)
	case models.BookingStatusCancelled:
		notifType = models.NotificationBookingCancelled
		msg = "Your booking request has been cancelled"
	case models.BookingStatusRunning:
		notifType = models.NotificationBookingRunning
		msg = "Your event is now running"
	case models.BookingStatusCompleted:
		notifType = models.NotificationBookingCompleted
		msg = "Your event has been completed"
	default:
		return
	}

	ns.emit(ctx, &models.Notification{
		RecipientID: booking.UserID,
		Type:        notifType,
		Message:     msg,
		BookingID:   booking.ID,
		VenueID:     booking.VenueID,
	})
}

func (ns *NotificationService) VenueApproved(ctx context.Context, venue *models.Venue) {
	ns.emit(ctx, &models.Notification{
		RecipientID: venue.OwnerID,
		Type:        models.NotificationVenueApproved,
		Message:     fmt.Sprintf("Your venue %s has been approved", venue.Name),
		VenueID:     venue.ID,
	})
}

func (ns *NotificationService) VenueBlocked(ctx context.Context, venue *models.Venue, reason string) {
	ns.emit(ctx, &models.Notification{
		RecipientID: venue.OwnerID,
		Type:        models.NotificationVenueBlocked,
		Message:     fmt.Sprintf("Your venue %s has been blocked: %s", venue.Name, reason),
		VenueID:     venue.ID,
	})
}

func (ns *NotificationService) emit(ctx context.Context, n *models.Notification) {
	if _, err := ns.notificationsRepo.CreateNotification(ctx, n); err != nil {
		ns.logger.Error("failed to persist notification", "type", n.Type, "error", err)
	}

	event := queue.NotificationEvent{
		Type:        n.Type,
		RecipientID: n.RecipientID.Hex(),
		Message:     n.Message,
		OccurredAt:  n.CreatedAt,
	}
	if n.BookingID != primitive.NilObjectID {
		event.BookingID = n.BookingID.Hex()
	}
	if n.VenueID != primitive.NilObjectID {
		event.VenueID = n.VenueID.Hex()
	}
	if err := ns.publisher.Publish(ctx, event); err != nil {
		ns.logger.Error("failed to publish notification event", "type", n.Type, "error", err)
	}
}
