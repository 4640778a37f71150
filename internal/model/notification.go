package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags a notification for rendering.
type NotificationType string

const (
	NotificationTypeBooking NotificationType = "booking"
	NotificationTypeMessage NotificationType = "message"
	NotificationTypeSystem  NotificationType = "system"
)

// Notification is an ephemeral user-facing alert. Its lifetime is bounded:
// it is removed after a fixed window or by explicit dismissal, whichever
// comes first.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
}
