package models

import (
	"time"
)

// NotificationKind distinguishes notification sources.
type NotificationKind string

const (
	NotificationRegistration    NotificationKind = "registration"
	NotificationPendingDigest   NotificationKind = "pending_digest"
	NotificationStatusUpdated   NotificationKind = "status_updated"
	NotificationPositionUpdated NotificationKind = "position_updated"
)

// Notification defines the admin notification model based on the 'notifications' table
type Notification struct {
	ID        int64            `json:"id" db:"id"`
	Kind      NotificationKind `json:"kind" db:"kind" example:"registration"`
	Message   string           `json:"message" db:"message"`
	AlumniID  *int64           `json:"alumniId,omitempty" db:"alumni_id"` // Set for record-specific notifications
	IsRead    bool             `json:"isRead" db:"is_read"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}
