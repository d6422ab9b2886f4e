package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models"
	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/app/repositories"
	"github.com/kritsada/alumnihub/internal/pkg/apperrors"
)

func newAlumniService(store *mockAlumniStore, notifications *mockNotificationStore) *AlumniService {
	notificationSvc := NewNotificationService(notifications, store, 0, zerolog.Nop())
	return NewAlumniService(store, notificationSvc, zerolog.Nop())
}

func validRegistration() *dto.RegisterAlumniRequest {
	return &dto.RegisterAlumniRequest{
		FirstName:      "สมชาย",
		LastName:       "ใจดี",
		NationalID:     "1234567890121",
		Address:        "123/45 ถนนสุขุมวิท",
		Phone:          "0812345678",
		Department:     "ช่างยนต์",
		GraduationYear: 2560,
		DeliveryOption: "mail",
	}
}

func TestRegisterCreatesPendingRecord(t *testing.T) {
	var created *models.Alumni
	store := &mockAlumniStore{
		createFn: func(ctx context.Context, alumni *models.Alumni) error {
			alumni.ID = 42
			created = alumni
			return nil
		},
	}
	notifications := &mockNotificationStore{}
	svc := newAlumniService(store, notifications)

	alumni, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if created.Status != models.StatusPending {
		t.Errorf("new registration status = %s, want pending", created.Status)
	}
	if created.ShippingStatus != models.ShippingAwaiting {
		t.Errorf("new registration shipping status = %s, want awaiting_shipment", created.ShippingStatus)
	}
	if alumni.ID != 42 {
		t.Errorf("returned record ID = %d, want 42", alumni.ID)
	}

	if len(notifications.created) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notifications.created))
	}
	if notifications.created[0].Kind != models.NotificationRegistration {
		t.Errorf("notification kind = %s", notifications.created[0].Kind)
	}
	if notifications.created[0].AlumniID == nil || *notifications.created[0].AlumniID != 42 {
		t.Errorf("notification alumni ID = %v, want 42", notifications.created[0].AlumniID)
	}
}

func TestRegisterDuplicateNationalID(t *testing.T) {
	store := &mockAlumniStore{
		createFn: func(ctx context.Context, alumni *models.Alumni) error {
			return repositories.ErrNationalIDExists
		},
	}
	svc := newAlumniService(store, &mockNotificationStore{})

	_, err := svc.Register(context.Background(), validRegistration())
	if !errors.Is(err, apperrors.ErrNationalIDExists) {
		t.Errorf("got %v, want ErrNationalIDExists", err)
	}
}

func TestRegisterInvalidNationalID(t *testing.T) {
	store := &mockAlumniStore{
		createFn: func(ctx context.Context, alumni *models.Alumni) error {
			t.Fatal("invalid national ID must not reach storage")
			return nil
		},
	}
	svc := newAlumniService(store, &mockNotificationStore{})

	for _, id := range []string{"12345", "abcdefghijklm", "12345678901234", "1234567890123"} {
		req := validRegistration()
		req.NationalID = id
		if _, err := svc.Register(context.Background(), req); !errors.Is(err, apperrors.ErrInvalidNationalID) {
			t.Errorf("national ID %q: got %v, want ErrInvalidNationalID", id, err)
		}
	}
}

func TestCheckStatusHidesShippingForPickup(t *testing.T) {
	tracking := "TH123"
	store := &mockAlumniStore{
		getByNationalIDFn: func(ctx context.Context, nationalID string) (*models.Alumni, error) {
			return &models.Alumni{
				FirstName:      "สมหญิง",
				LastName:       "รักเรียน",
				Status:         models.StatusApproved,
				DeliveryOption: models.DeliveryPickup,
				ShippingStatus: models.ShippingInTransit,
				TrackingNumber: &tracking,
				CreatedAt:      time.Now(),
			}, nil
		},
	}
	svc := newAlumniService(store, &mockNotificationStore{})

	resp, err := svc.CheckStatus(context.Background(), "1234567890121")
	if err != nil {
		t.Fatalf("CheckStatus error: %v", err)
	}
	if resp.ShippingStatus != "" {
		t.Errorf("pickup delivery must not expose shipping status, got %s", resp.ShippingStatus)
	}
	if resp.TrackingNumber != nil {
		t.Errorf("pickup delivery must not expose tracking, got %v", resp.TrackingNumber)
	}
}

func TestCheckStatusExposesShippingForApprovedMail(t *testing.T) {
	tracking := "TH999"
	store := &mockAlumniStore{
		getByNationalIDFn: func(ctx context.Context, nationalID string) (*models.Alumni, error) {
			return &models.Alumni{
				Status:         models.StatusApproved,
				DeliveryOption: models.DeliveryMail,
				ShippingStatus: models.ShippingInTransit,
				TrackingNumber: &tracking,
			}, nil
		},
	}
	svc := newAlumniService(store, &mockNotificationStore{})

	resp, err := svc.CheckStatus(context.Background(), "1234567890121")
	if err != nil {
		t.Fatalf("CheckStatus error: %v", err)
	}
	if resp.ShippingStatus != models.ShippingInTransit {
		t.Errorf("shipping status = %s, want in_transit", resp.ShippingStatus)
	}
	if resp.TrackingNumber == nil || *resp.TrackingNumber != "TH999" {
		t.Errorf("tracking = %v, want TH999", resp.TrackingNumber)
	}
}

func TestCheckStatusUnknownNationalID(t *testing.T) {
	store := &mockAlumniStore{
		getByNationalIDFn: func(ctx context.Context, nationalID string) (*models.Alumni, error) {
			return nil, repositories.ErrAlumniNotFound
		},
	}
	svc := newAlumniService(store, &mockNotificationStore{})

	_, err := svc.CheckStatus(context.Background(), "1234567890121")
	if !errors.Is(err, apperrors.ErrAlumniNotFound) {
		t.Errorf("got %v, want ErrAlumniNotFound", err)
	}
}

func TestGetByIDAttachesHistory(t *testing.T) {
	store := &mockAlumniStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Alumni, error) {
			return &models.Alumni{ID: id}, nil
		},
		getShippingHistoryFn: func(ctx context.Context, alumniID int64) ([]models.ShippingHistoryEntry, error) {
			return []models.ShippingHistoryEntry{
				{AlumniID: alumniID, Status: models.ShippingInTransit},
			}, nil
		},
	}
	svc := newAlumniService(store, &mockNotificationStore{})

	alumni, err := svc.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(alumni.ShippingHistory) != 1 {
		t.Errorf("history entries = %d, want 1", len(alumni.ShippingHistory))
	}
}

func TestGetByIDHistoryFailureIsNotFatal(t *testing.T) {
	store := &mockAlumniStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Alumni, error) {
			return &models.Alumni{ID: id}, nil
		},
		getShippingHistoryFn: func(ctx context.Context, alumniID int64) ([]models.ShippingHistoryEntry, error) {
			return nil, errors.New("history table unavailable")
		},
	}
	svc := newAlumniService(store, &mockNotificationStore{})

	alumni, err := svc.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID must succeed without history: %v", err)
	}
	if alumni.ID != 7 {
		t.Errorf("record ID = %d", alumni.ID)
	}
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	store := &mockAlumniStore{
		updateStatusFn: func(ctx context.Context, id int64, status models.Status) error {
			t.Fatal("invalid status must not reach storage")
			return nil
		},
	}
	svc := newAlumniService(store, &mockNotificationStore{})

	if err := svc.UpdateStatus(context.Background(), 1, models.Status("archived")); err == nil {
		t.Error("expected error for unknown status value")
	}
}

func TestUpdateStatusNotifiesOnChange(t *testing.T) {
	store := &mockAlumniStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Alumni, error) {
			return &models.Alumni{ID: id, FirstName: "สมชาย", LastName: "ใจดี", Status: models.StatusPending}, nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status models.Status) error {
			return nil
		},
	}
	notifications := &mockNotificationStore{}
	svc := newAlumniService(store, notifications)

	if err := svc.UpdateStatus(context.Background(), 7, models.StatusApproved); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}

	if len(notifications.created) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications.created))
	}
	n := notifications.created[0]
	if n.Kind != models.NotificationStatusUpdated {
		t.Errorf("kind = %s, want %s", n.Kind, models.NotificationStatusUpdated)
	}
	if n.AlumniID == nil || *n.AlumniID != 7 {
		t.Errorf("alumniId = %v, want 7", n.AlumniID)
	}
}

func TestUpdateStatusSameValueDoesNotNotify(t *testing.T) {
	store := &mockAlumniStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Alumni, error) {
			return &models.Alumni{ID: id, Status: models.StatusApproved}, nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status models.Status) error {
			return nil
		},
	}
	notifications := &mockNotificationStore{}
	svc := newAlumniService(store, notifications)

	if err := svc.UpdateStatus(context.Background(), 7, models.StatusApproved); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if len(notifications.created) != 0 {
		t.Errorf("re-submitting the same status must not notify, got %d notifications", len(notifications.created))
	}
}

func TestUpdatePositionStoresValueAndNotifies(t *testing.T) {
	var storedPosition string
	store := &mockAlumniStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Alumni, error) {
			return &models.Alumni{ID: id, FirstName: "สมชาย", LastName: "ใจดี", Position: models.DefaultPosition}, nil
		},
		updatePositionFn: func(ctx context.Context, id int64, position string) error {
			storedPosition = position
			return nil
		},
	}
	notifications := &mockNotificationStore{}
	svc := newAlumniService(store, notifications)

	alumni, err := svc.UpdatePosition(context.Background(), 7, "  กรรมการ  ")
	if err != nil {
		t.Fatalf("UpdatePosition error: %v", err)
	}

	if storedPosition != "กรรมการ" {
		t.Errorf("stored position = %q, want trimmed value", storedPosition)
	}
	if alumni.Position != "กรรมการ" {
		t.Errorf("returned position = %q, want กรรมการ", alumni.Position)
	}
	if len(notifications.created) != 1 || notifications.created[0].Kind != models.NotificationPositionUpdated {
		t.Errorf("expected one position update notification, got %+v", notifications.created)
	}
}

func TestUpdatePositionRejectsEmpty(t *testing.T) {
	store := &mockAlumniStore{
		updatePositionFn: func(ctx context.Context, id int64, position string) error {
			t.Fatal("empty position must not reach storage")
			return nil
		},
	}
	svc := newAlumniService(store, &mockNotificationStore{})

	if _, err := svc.UpdatePosition(context.Background(), 7, "   "); err == nil {
		t.Error("expected error for empty position")
	}
}

func TestRegisterDefaultsPosition(t *testing.T) {
	var created *models.Alumni
	store := &mockAlumniStore{
		createFn: func(ctx context.Context, alumni *models.Alumni) error {
			created = alumni
			return nil
		},
	}
	svc := newAlumniService(store, &mockNotificationStore{})

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if created.Position != models.DefaultPosition {
		t.Errorf("position = %q, want %q", created.Position, models.DefaultPosition)
	}
}

func TestListPassesFilterAndPagination(t *testing.T) {
	var gotFilter repositories.AlumniFilter
	var gotOffset uint64
	var gotLimit int

	store := &mockAlumniStore{
		listFn: func(ctx context.Context, filter repositories.AlumniFilter, offset uint64, limit int) ([]models.Alumni, int64, error) {
			gotFilter = filter
			gotOffset = offset
			gotLimit = limit
			return []models.Alumni{{ID: 1}}, 35, nil
		},
	}
	svc := newAlumniService(store, &mockNotificationStore{})

	resp, err := svc.List(context.Background(), &dto.AlumniFilterRequest{
		Search:   "สมชาย",
		Status:   "approved",
		Page:     3,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	if gotFilter.Search != "สมชาย" || gotFilter.Status != models.StatusApproved {
		t.Errorf("filter = %+v", gotFilter)
	}
	if gotOffset != 20 || gotLimit != 10 {
		t.Errorf("offset/limit = %d/%d, want 20/10", gotOffset, gotLimit)
	}
	if resp.Pagination.TotalItems != 35 || resp.Pagination.TotalPages != 4 {
		t.Errorf("pagination = %+v", resp.Pagination)
	}
	if resp.Pagination.CurrentPage != 3 {
		t.Errorf("current page = %d, want 3", resp.Pagination.CurrentPage)
	}
}
