package services

import (
	"context"
	"time"

	"github.com/kritsada/alumnihub/internal/app/models"
	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/app/repositories"
)

// Services defined in this package:
// - AuthService: admin login and profile lookup
// - AlumniService: registration, status check, admin record management
// - ShippingService: single and bulk shipping updates, shipping queries
// - LabelService: label rendering and asynchronous print jobs
// - ReportService: detailed reports and xlsx exports
// - NotificationService: admin notification feed and the periodic sweep

// AlumniStore is the subset of the alumni repository the services depend on.
type AlumniStore interface {
	Create(ctx context.Context, alumni *models.Alumni) error
	GetByID(ctx context.Context, id int64) (*models.Alumni, error)
	GetByNationalID(ctx context.Context, nationalID string) (*models.Alumni, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.Alumni, error)
	List(ctx context.Context, filter repositories.AlumniFilter, offset uint64, limit int) ([]models.Alumni, int64, error)
	Update(ctx context.Context, alumni *models.Alumni) error
	UpdateStatus(ctx context.Context, id int64, status models.Status) error
	UpdatePosition(ctx context.Context, id int64, position string) error
	Delete(ctx context.Context, id int64) error
	UpdateShipping(ctx context.Context, id int64, status models.ShippingStatus, trackingNumber, notes *string) (*models.Alumni, error)
	BulkUpdateShipping(ctx context.Context, ids []int64, status models.ShippingStatus, notes *string) (int, error)
	GetShippingHistory(ctx context.Context, alumniID int64) ([]models.ShippingHistoryEntry, error)
	Statistics(ctx context.Context) (*dto.AlumniStatistics, error)
	ShippingStatistics(ctx context.Context) (*dto.ShippingStatistics, error)
	CountPending(ctx context.Context) (int64, error)
}

// NotificationStore is the subset of the notification repository the services depend on.
type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	List(ctx context.Context, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
	PruneRead(ctx context.Context, olderThan time.Time) (int64, error)
	LatestDigestMessage(ctx context.Context) (string, error)
}

// AdminUserStore is the subset of the admin user repository the services depend on.
type AdminUserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id int64) (*models.AdminUser, error)
	TouchLastLogin(ctx context.Context, id int64) error
}
