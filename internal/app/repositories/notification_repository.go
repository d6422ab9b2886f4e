package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kritsada/alumnihub/internal/app/models"
)

// Notification error types
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository handles database operations for admin notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a new notification
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO notifications (kind, message, alumni_id)
		VALUES ($1, $2, $3)
		RETURNING id, is_read, created_at`,
		n.Kind, n.Message, n.AlumniID).
		Scan(&n.ID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// List retrieves notifications newest first, up to limit.
func (r *NotificationRepository) List(ctx context.Context, limit int) ([]models.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, message, alumni_id, is_read, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0, limit)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Kind, &n.Message, &n.AlumniID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notifications, nil
}

// CountUnread counts unread notifications.
func (r *NotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE is_read = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one notification as read.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every notification as read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE is_read = FALSE`)
	if err != nil {
		return fmt.Errorf("error marking notifications read: %w", err)
	}
	return nil
}

// Delete removes one notification.
func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting notification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// PruneRead deletes read notifications older than the cutoff. Returns the
// number of pruned rows.
func (r *NotificationRepository) PruneRead(ctx context.Context, olderThan time.Time) (int64, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM notifications WHERE is_read = TRUE AND created_at < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("error pruning notifications: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// LatestDigestMessage returns the message of the most recent pending digest,
// or an empty string when none exists.
func (r *NotificationRepository) LatestDigestMessage(ctx context.Context) (string, error) {
	var message string
	err := r.db.QueryRow(ctx, `
		SELECT message FROM notifications
		WHERE kind = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, models.NotificationPendingDigest).Scan(&message)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error retrieving latest digest: %w", err)
	}
	return message, nil
}
