package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models"
	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/pkg/apperrors"
)

func shippableAlumni(id int64, shipping models.ShippingStatus) *models.Alumni {
	return &models.Alumni{
		ID:             id,
		FirstName:      "สมชาย",
		LastName:       "ใจดี",
		Status:         models.StatusApproved,
		DeliveryOption: models.DeliveryMail,
		ShippingStatus: shipping,
	}
}

func TestUpdateShippingForwardTransition(t *testing.T) {
	var gotStatus models.ShippingStatus
	var gotTracking *string

	store := &mockAlumniStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Alumni, error) {
			return shippableAlumni(id, models.ShippingAwaiting), nil
		},
		updateShippingFn: func(ctx context.Context, id int64, status models.ShippingStatus, tracking, notes *string) (*models.Alumni, error) {
			gotStatus = status
			gotTracking = tracking
			updated := shippableAlumni(id, status)
			updated.TrackingNumber = tracking
			return updated, nil
		},
	}
	svc := NewShippingService(store, zerolog.Nop())

	updated, err := svc.UpdateShipping(context.Background(), 1, &dto.UpdateShippingRequest{
		ShippingStatus: "in_transit",
		TrackingNumber: "  TH123456789  ",
	})
	if err != nil {
		t.Fatalf("UpdateShipping error: %v", err)
	}

	if gotStatus != models.ShippingInTransit {
		t.Errorf("stored status = %s, want in_transit", gotStatus)
	}
	if gotTracking == nil || *gotTracking != "TH123456789" {
		t.Errorf("stored tracking = %v, want trimmed TH123456789", gotTracking)
	}
	if updated.ShippingStatus != models.ShippingInTransit {
		t.Errorf("returned status = %s", updated.ShippingStatus)
	}
}

func TestUpdateShippingBackwardRequiresCorrection(t *testing.T) {
	store := &mockAlumniStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Alumni, error) {
			return shippableAlumni(id, models.ShippingDelivered), nil
		},
		updateShippingFn: func(ctx context.Context, id int64, status models.ShippingStatus, tracking, notes *string) (*models.Alumni, error) {
			return shippableAlumni(id, status), nil
		},
	}
	svc := NewShippingService(store, zerolog.Nop())

	_, err := svc.UpdateShipping(context.Background(), 1, &dto.UpdateShippingRequest{
		ShippingStatus: "awaiting_shipment",
	})
	if !errors.Is(err, apperrors.ErrBackwardTransition) {
		t.Fatalf("got %v, want ErrBackwardTransition", err)
	}

	_, err = svc.UpdateShipping(context.Background(), 1, &dto.UpdateShippingRequest{
		ShippingStatus: "awaiting_shipment",
		Correction:     true,
	})
	if err != nil {
		t.Fatalf("correction flag should permit backward transition: %v", err)
	}
}

func TestUpdateShippingRejectsIneligibleRecords(t *testing.T) {
	tests := []struct {
		name   string
		record *models.Alumni
	}{
		{
			name: "pending registration",
			record: &models.Alumni{
				Status:         models.StatusPending,
				DeliveryOption: models.DeliveryMail,
			},
		},
		{
			name: "pickup delivery",
			record: &models.Alumni{
				Status:         models.StatusApproved,
				DeliveryOption: models.DeliveryPickup,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockAlumniStore{
				getByIDFn: func(ctx context.Context, id int64) (*models.Alumni, error) {
					return tt.record, nil
				},
				updateShippingFn: func(ctx context.Context, id int64, status models.ShippingStatus, tracking, notes *string) (*models.Alumni, error) {
					t.Fatal("UpdateShipping must not reach storage for ineligible records")
					return nil, nil
				},
			}
			svc := NewShippingService(store, zerolog.Nop())

			_, err := svc.UpdateShipping(context.Background(), 1, &dto.UpdateShippingRequest{
				ShippingStatus: "in_transit",
			})
			if !errors.Is(err, apperrors.ErrAlumniNotShippable) {
				t.Errorf("got %v, want ErrAlumniNotShippable", err)
			}
		})
	}
}

func TestUpdateShippingInvalidStatus(t *testing.T) {
	store := &mockAlumniStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Alumni, error) {
			t.Fatal("invalid status must be rejected before loading the record")
			return nil, nil
		},
	}
	svc := NewShippingService(store, zerolog.Nop())

	_, err := svc.UpdateShipping(context.Background(), 1, &dto.UpdateShippingRequest{
		ShippingStatus: "teleported",
	})
	if !errors.Is(err, apperrors.ErrInvalidShippingStatus) {
		t.Errorf("got %v, want ErrInvalidShippingStatus", err)
	}
}

func TestBulkUpdateShippingEmptySelection(t *testing.T) {
	store := &mockAlumniStore{
		bulkUpdateShippingFn: func(ctx context.Context, ids []int64, status models.ShippingStatus, notes *string) (int, error) {
			t.Fatal("empty selection must be rejected before storage access")
			return 0, nil
		},
	}
	svc := NewShippingService(store, zerolog.Nop())

	_, err := svc.BulkUpdateShipping(context.Background(), &dto.BulkShippingRequest{
		AlumniIDs:      []int64{},
		ShippingStatus: "in_transit",
	})
	if !errors.Is(err, apperrors.ErrEmptySelection) {
		t.Errorf("got %v, want ErrEmptySelection", err)
	}
}

func TestBulkUpdateShippingSkipsIneligible(t *testing.T) {
	store := &mockAlumniStore{
		bulkUpdateShippingFn: func(ctx context.Context, ids []int64, status models.ShippingStatus, notes *string) (int, error) {
			// Storage applies eligibility; two of five qualify
			return 2, nil
		},
	}
	svc := NewShippingService(store, zerolog.Nop())

	resp, err := svc.BulkUpdateShipping(context.Background(), &dto.BulkShippingRequest{
		AlumniIDs:      []int64{1, 2, 3, 4, 5},
		ShippingStatus: "delivered",
	})
	if err != nil {
		t.Fatalf("BulkUpdateShipping error: %v", err)
	}
	if resp.UpdatedCount != 2 {
		t.Errorf("UpdatedCount = %d, want 2", resp.UpdatedCount)
	}
	if resp.ShippingStatus != models.ShippingDelivered {
		t.Errorf("ShippingStatus = %s, want delivered", resp.ShippingStatus)
	}
}

func TestBulkUpdateShippingRejectsAwaiting(t *testing.T) {
	store := &mockAlumniStore{
		bulkUpdateShippingFn: func(ctx context.Context, ids []int64, status models.ShippingStatus, notes *string) (int, error) {
			t.Fatal("bulk updates to awaiting_shipment are not allowed")
			return 0, nil
		},
	}
	svc := NewShippingService(store, zerolog.Nop())

	_, err := svc.BulkUpdateShipping(context.Background(), &dto.BulkShippingRequest{
		AlumniIDs:      []int64{1},
		ShippingStatus: "awaiting_shipment",
	})
	if !errors.Is(err, apperrors.ErrInvalidShippingStatus) {
		t.Errorf("got %v, want ErrInvalidShippingStatus", err)
	}
}
