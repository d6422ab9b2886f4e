package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models"
	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/app/repositories"
	"github.com/kritsada/alumnihub/internal/pkg/apperrors"
	"github.com/kritsada/alumnihub/internal/pkg/helpers"
)

// ShippingService handles the shipping workflow over approved mail deliveries
type ShippingService struct {
	repo   AlumniStore
	logger zerolog.Logger
}

// NewShippingService creates a new shipping service instance
func NewShippingService(repo AlumniStore, logger zerolog.Logger) *ShippingService {
	return &ShippingService{
		repo:   repo,
		logger: logger,
	}
}

// ShippingList retrieves a filtered page of shipping-eligible records.
func (s *ShippingService) ShippingList(ctx context.Context, req *dto.ShippingFilterRequest) (*dto.ShippingListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(req.Page, req.PageSize)

	filter := repositories.AlumniFilter{
		Search:         req.Search,
		ShippingStatus: models.ShippingStatus(req.ShippingStatus),
		Department:     req.Department,
		GraduationYear: req.GraduationYear,
		ShippableOnly:  true,
	}

	records, total, err := s.repo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing shipping records: %w", err)
	}

	return &dto.ShippingListResponse{
		Alumni:     records,
		Pagination: helpers.NewPaginationInfo(total, req.Page, limit),
	}, nil
}

// UpdateShipping changes the shipping state of one record. Transitions must
// follow awaiting_shipment -> in_transit -> delivered unless the request
// carries the correction flag. The submitted tracking number is stored
// verbatim; an empty value clears the assignment.
func (s *ShippingService) UpdateShipping(ctx context.Context, id int64, req *dto.UpdateShippingRequest) (*models.Alumni, error) {
	target := models.ShippingStatus(req.ShippingStatus)
	if !models.ValidShippingStatus(target) {
		return nil, apperrors.ErrInvalidShippingStatus
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error loading record: %w", err)
	}

	if !current.ShippableNow() {
		return nil, apperrors.ErrAlumniNotShippable
	}

	if !models.IsForwardTransition(current.ShippingStatus, target) && !req.Correction {
		return nil, apperrors.ErrBackwardTransition
	}

	var tracking *string
	if t := strings.TrimSpace(req.TrackingNumber); t != "" {
		tracking = &t
	}
	var notes *string
	if n := strings.TrimSpace(req.Notes); n != "" {
		notes = &n
	}

	updated, err := s.repo.UpdateShipping(ctx, id, target, tracking, notes)
	if err != nil {
		if errors.Is(err, repositories.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error updating shipping state: %w", err)
	}

	s.logger.Info().
		Int64("alumniId", id).
		Str("shippingStatus", string(target)).
		Bool("correction", req.Correction).
		Msg("Shipping state updated")

	return updated, nil
}

// BulkUpdateShipping applies one status to many records in one transaction.
// An empty selection is rejected before any storage access.
func (s *ShippingService) BulkUpdateShipping(ctx context.Context, req *dto.BulkShippingRequest) (*dto.BulkShippingResponse, error) {
	if len(req.AlumniIDs) == 0 {
		return nil, apperrors.ErrEmptySelection
	}

	target := models.ShippingStatus(req.ShippingStatus)
	// Bulk actions only move records forward
	if target != models.ShippingInTransit && target != models.ShippingDelivered {
		return nil, apperrors.ErrInvalidShippingStatus
	}

	var notes *string
	if n := strings.TrimSpace(req.Notes); n != "" {
		notes = &n
	}

	count, err := s.repo.BulkUpdateShipping(ctx, req.AlumniIDs, target, notes)
	if err != nil {
		return nil, fmt.Errorf("error bulk updating shipping state: %w", err)
	}

	s.logger.Info().
		Int("requested", len(req.AlumniIDs)).
		Int("updated", count).
		Str("shippingStatus", string(target)).
		Msg("Bulk shipping update applied")

	return &dto.BulkShippingResponse{
		UpdatedCount:   count,
		ShippingStatus: target,
	}, nil
}

// ShippingStatistics aggregates shipping-eligible records by status.
func (s *ShippingService) ShippingStatistics(ctx context.Context) (*dto.ShippingStatistics, error) {
	stats, err := s.repo.ShippingStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving shipping statistics: %w", err)
	}
	return stats, nil
}
