package queue

import "time"

// NotificationQueue is the durable queue all notification events are
// published to. Consumers fan out to email, push, or websocket delivery.
const NotificationQueue = "notification.events"

// NotificationEvent is the wire shape published to RabbitMQ whenever a
// booking or venue changes state.
type NotificationEvent struct {
	Type        string    `json:"type"`
	RecipientID string    `json:"recipient_id"`
	Message     string    `json:"message"`
	BookingID   string    `json:"booking_id,omitempty"`
	VenueID     string    `json:"venue_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
