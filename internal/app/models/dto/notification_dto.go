package dto

import (
	"github.com/kritsada/alumnihub/internal/app/models"
)

// NotificationListResponse is the admin notification feed
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
}
