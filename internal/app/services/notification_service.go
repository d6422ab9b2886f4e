package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models"
	"github.com/kritsada/alumnihub/internal/app/models/dto"
)

// notificationFeedLimit bounds the admin notification feed.
const notificationFeedLimit = 100

// NotificationService manages the admin notification feed and the
// periodic pending-registration sweep.
type NotificationService struct {
	repo      NotificationStore
	alumni    AlumniStore
	retention time.Duration
	logger    zerolog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(repo NotificationStore, alumni AlumniStore, retention time.Duration, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		repo:      repo,
		alumni:    alumni,
		retention: retention,
		logger:    logger,
	}
}

// NotifyRegistration records a notification for a new registration.
// Failures are logged, not returned; a notification must never fail a
// registration.
func (s *NotificationService) NotifyRegistration(ctx context.Context, alumni *models.Alumni) {
	n := &models.Notification{
		Kind:     models.NotificationRegistration,
		Message:  fmt.Sprintf("สมาชิกใหม่ลงทะเบียน: %s %s", alumni.FirstName, alumni.LastName),
		AlumniID: &alumni.ID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error().Err(err).Int64("alumniId", alumni.ID).Msg("Failed to record registration notification")
	}
}

// thaiStatusLabels are the display names the admin UI shows for each
// membership status.
var thaiStatusLabels = map[models.Status]string{
	models.StatusPending:  "รอตรวจสอบ",
	models.StatusApproved: "อนุมัติ",
	models.StatusRejected: "ปฏิเสธ",
}

// NotifyStatusUpdated records a notification for an approval-status change.
// Failures are logged, not returned.
func (s *NotificationService) NotifyStatusUpdated(ctx context.Context, alumni *models.Alumni, status models.Status) {
	label := thaiStatusLabels[status]
	if label == "" {
		label = string(status)
	}
	n := &models.Notification{
		Kind:     models.NotificationStatusUpdated,
		Message:  fmt.Sprintf("อัปเดตสถานะของ %s %s เป็น \"%s\"", alumni.FirstName, alumni.LastName, label),
		AlumniID: &alumni.ID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error().Err(err).Int64("alumniId", alumni.ID).Msg("Failed to record status update notification")
	}
}

// NotifyPositionUpdated records a notification for an association-position change.
// Failures are logged, not returned.
func (s *NotificationService) NotifyPositionUpdated(ctx context.Context, alumni *models.Alumni, position string) {
	n := &models.Notification{
		Kind:     models.NotificationPositionUpdated,
		Message:  fmt.Sprintf("อัปเดตตำแหน่งของ %s %s เป็น \"%s\"", alumni.FirstName, alumni.LastName, position),
		AlumniID: &alumni.ID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error().Err(err).Int64("alumniId", alumni.ID).Msg("Failed to record position update notification")
	}
}

// List returns the notification feed with the unread count.
func (s *NotificationService) List(ctx context.Context) (*dto.NotificationListResponse, error) {
	notifications, err := s.repo.List(ctx, notificationFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting unread notifications: %w", err)
	}
	return &dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks a single notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}

// MarkAllRead marks every notification as read.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}

// Delete removes a notification.
func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// RunPendingSweep posts a digest notification when registrations are waiting
// for review, then prunes read notifications past the retention window.
// Invoked by the scheduler; an identical consecutive digest is skipped.
func (s *NotificationService) RunPendingSweep(ctx context.Context) {
	pending, err := s.alumni.CountPending(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Pending sweep failed to count registrations")
		return
	}

	if pending > 0 {
		message := fmt.Sprintf("มีผู้ลงทะเบียนรอการตรวจสอบ %d รายการ", pending)
		last, err := s.repo.LatestDigestMessage(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("Pending sweep failed to read last digest")
			return
		}
		if last != message {
			n := &models.Notification{
				Kind:    models.NotificationPendingDigest,
				Message: message,
			}
			if err := s.repo.Create(ctx, n); err != nil {
				s.logger.Error().Err(err).Msg("Pending sweep failed to record digest")
				return
			}
			s.logger.Info().Int64("pending", pending).Msg("Posted pending registration digest")
		}
	}

	if s.retention > 0 {
		pruned, err := s.repo.PruneRead(ctx, time.Now().Add(-s.retention))
		if err != nil {
			s.logger.Error().Err(err).Msg("Pending sweep failed to prune notifications")
			return
		}
		if pruned > 0 {
			s.logger.Info().Int64("pruned", pruned).Msg("Pruned read notifications")
		}
	}
}
