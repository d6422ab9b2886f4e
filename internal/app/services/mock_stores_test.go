package services

import (
	"context"
	"time"

	"github.com/kritsada/alumnihub/internal/app/models"
	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/app/repositories"
)

// mockAlumniStore implements AlumniStore with overridable function fields.
type mockAlumniStore struct {
	createFn             func(ctx context.Context, alumni *models.Alumni) error
	getByIDFn            func(ctx context.Context, id int64) (*models.Alumni, error)
	getByNationalIDFn    func(ctx context.Context, nationalID string) (*models.Alumni, error)
	getByIDsFn           func(ctx context.Context, ids []int64) ([]models.Alumni, error)
	listFn               func(ctx context.Context, filter repositories.AlumniFilter, offset uint64, limit int) ([]models.Alumni, int64, error)
	updateFn             func(ctx context.Context, alumni *models.Alumni) error
	updateStatusFn       func(ctx context.Context, id int64, status models.Status) error
	updatePositionFn     func(ctx context.Context, id int64, position string) error
	deleteFn             func(ctx context.Context, id int64) error
	updateShippingFn     func(ctx context.Context, id int64, status models.ShippingStatus, trackingNumber, notes *string) (*models.Alumni, error)
	bulkUpdateShippingFn func(ctx context.Context, ids []int64, status models.ShippingStatus, notes *string) (int, error)
	getShippingHistoryFn func(ctx context.Context, alumniID int64) ([]models.ShippingHistoryEntry, error)
	statisticsFn         func(ctx context.Context) (*dto.AlumniStatistics, error)
	shippingStatisticsFn func(ctx context.Context) (*dto.ShippingStatistics, error)
	countPendingFn       func(ctx context.Context) (int64, error)
}

func (m *mockAlumniStore) Create(ctx context.Context, alumni *models.Alumni) error {
	return m.createFn(ctx, alumni)
}

func (m *mockAlumniStore) GetByID(ctx context.Context, id int64) (*models.Alumni, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAlumniStore) GetByNationalID(ctx context.Context, nationalID string) (*models.Alumni, error) {
	return m.getByNationalIDFn(ctx, nationalID)
}

func (m *mockAlumniStore) GetByIDs(ctx context.Context, ids []int64) ([]models.Alumni, error) {
	return m.getByIDsFn(ctx, ids)
}

func (m *mockAlumniStore) List(ctx context.Context, filter repositories.AlumniFilter, offset uint64, limit int) ([]models.Alumni, int64, error) {
	return m.listFn(ctx, filter, offset, limit)
}

func (m *mockAlumniStore) Update(ctx context.Context, alumni *models.Alumni) error {
	return m.updateFn(ctx, alumni)
}

func (m *mockAlumniStore) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockAlumniStore) UpdatePosition(ctx context.Context, id int64, position string) error {
	return m.updatePositionFn(ctx, id, position)
}

func (m *mockAlumniStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockAlumniStore) UpdateShipping(ctx context.Context, id int64, status models.ShippingStatus, trackingNumber, notes *string) (*models.Alumni, error) {
	return m.updateShippingFn(ctx, id, status, trackingNumber, notes)
}

func (m *mockAlumniStore) BulkUpdateShipping(ctx context.Context, ids []int64, status models.ShippingStatus, notes *string) (int, error) {
	return m.bulkUpdateShippingFn(ctx, ids, status, notes)
}

func (m *mockAlumniStore) GetShippingHistory(ctx context.Context, alumniID int64) ([]models.ShippingHistoryEntry, error) {
	if m.getShippingHistoryFn == nil {
		return nil, nil
	}
	return m.getShippingHistoryFn(ctx, alumniID)
}

func (m *mockAlumniStore) Statistics(ctx context.Context) (*dto.AlumniStatistics, error) {
	return m.statisticsFn(ctx)
}

func (m *mockAlumniStore) ShippingStatistics(ctx context.Context) (*dto.ShippingStatistics, error) {
	return m.shippingStatisticsFn(ctx)
}

func (m *mockAlumniStore) CountPending(ctx context.Context) (int64, error) {
	return m.countPendingFn(ctx)
}

// mockNotificationStore implements NotificationStore in memory.
type mockNotificationStore struct {
	created      []*models.Notification
	latestDigest string
	pruned       int64
	markedRead   []int64
	markedAll    bool
	deleted      []int64
}

func (m *mockNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	m.created = append(m.created, n)
	if n.Kind == models.NotificationPendingDigest {
		m.latestDigest = n.Message
	}
	return nil
}

func (m *mockNotificationStore) List(ctx context.Context, limit int) ([]models.Notification, error) {
	out := make([]models.Notification, 0, len(m.created))
	for _, n := range m.created {
		out = append(out, *n)
	}
	return out, nil
}

func (m *mockNotificationStore) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	for _, n := range m.created {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationStore) MarkRead(ctx context.Context, id int64) error {
	m.markedRead = append(m.markedRead, id)
	return nil
}

func (m *mockNotificationStore) MarkAllRead(ctx context.Context) error {
	m.markedAll = true
	return nil
}

func (m *mockNotificationStore) Delete(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockNotificationStore) PruneRead(ctx context.Context, olderThan time.Time) (int64, error) {
	return m.pruned, nil
}

func (m *mockNotificationStore) LatestDigestMessage(ctx context.Context) (string, error) {
	return m.latestDigest, nil
}
