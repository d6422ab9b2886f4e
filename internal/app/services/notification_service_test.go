package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models"
)

func sweepService(pending int64, store *mockNotificationStore) *NotificationService {
	alumni := &mockAlumniStore{
		countPendingFn: func(ctx context.Context) (int64, error) {
			return pending, nil
		},
	}
	return NewNotificationService(store, alumni, time.Hour, zerolog.Nop())
}

func TestPendingSweepPostsDigest(t *testing.T) {
	store := &mockNotificationStore{}
	svc := sweepService(3, store)

	svc.RunPendingSweep(context.Background())

	if len(store.created) != 1 {
		t.Fatalf("got %d notifications, want 1", len(store.created))
	}
	if store.created[0].Kind != models.NotificationPendingDigest {
		t.Errorf("notification kind = %s", store.created[0].Kind)
	}
}

func TestPendingSweepSkipsDuplicateDigest(t *testing.T) {
	store := &mockNotificationStore{}
	svc := sweepService(3, store)

	svc.RunPendingSweep(context.Background())
	svc.RunPendingSweep(context.Background())

	if len(store.created) != 1 {
		t.Errorf("identical consecutive digests must be deduplicated, got %d", len(store.created))
	}
}

func TestPendingSweepPostsChangedDigest(t *testing.T) {
	store := &mockNotificationStore{}

	sweepService(3, store).RunPendingSweep(context.Background())
	sweepService(5, store).RunPendingSweep(context.Background())

	if len(store.created) != 2 {
		t.Errorf("changed pending count should produce a new digest, got %d", len(store.created))
	}
}

func TestPendingSweepNoPendingRegistrations(t *testing.T) {
	store := &mockNotificationStore{}
	svc := sweepService(0, store)

	svc.RunPendingSweep(context.Background())

	if len(store.created) != 0 {
		t.Errorf("no digest expected without pending registrations, got %d", len(store.created))
	}
}

func TestListReportsUnreadCount(t *testing.T) {
	store := &mockNotificationStore{}
	store.created = append(store.created,
		&models.Notification{ID: 1, IsRead: true},
		&models.Notification{ID: 2},
		&models.Notification{ID: 3},
	)
	svc := NewNotificationService(store, &mockAlumniStore{}, time.Hour, zerolog.Nop())

	feed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(feed.Notifications) != 3 {
		t.Errorf("feed size = %d, want 3", len(feed.Notifications))
	}
	if feed.UnreadCount != 2 {
		t.Errorf("unread count = %d, want 2", feed.UnreadCount)
	}
}
