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
	"github.com/kritsada/alumnihub/internal/pkg/validation"
)

// AlumniService handles registration, status lookup and record management
type AlumniService struct {
	repo          AlumniStore
	notifications *NotificationService
	logger        zerolog.Logger
}

// NewAlumniService creates a new alumni service instance
func NewAlumniService(repo AlumniStore, notifications *NotificationService, logger zerolog.Logger) *AlumniService {
	return &AlumniService{
		repo:          repo,
		notifications: notifications,
		logger:        logger,
	}
}

// Register creates a pending alumni record from a public registration.
func (s *AlumniService) Register(ctx context.Context, req *dto.RegisterAlumniRequest) (*models.Alumni, error) {
	if !validation.IsValidNationalID(req.NationalID) {
		return nil, apperrors.ErrInvalidNationalID
	}
	if req.Email != "" && !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewBadRequestError("invalid email address")
	}

	alumni := &models.Alumni{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		NationalID:     req.NationalID,
		Address:        strings.TrimSpace(req.Address),
		Phone:          strings.TrimSpace(req.Phone),
		Email:          strings.TrimSpace(req.Email),
		Department:     strings.TrimSpace(req.Department),
		GraduationYear: req.GraduationYear,
		Position:       models.DefaultPosition,
		Status:         models.StatusPending,
		DeliveryOption: models.DeliveryOption(req.DeliveryOption),
		ShippingStatus: models.ShippingAwaiting,
	}

	if err := s.repo.Create(ctx, alumni); err != nil {
		if errors.Is(err, repositories.ErrNationalIDExists) {
			return nil, apperrors.ErrNationalIDExists
		}
		return nil, fmt.Errorf("error registering alumni: %w", err)
	}

	s.notifications.NotifyRegistration(ctx, alumni)

	return alumni, nil
}

// CheckStatus looks up a registration's progress by national ID.
func (s *AlumniService) CheckStatus(ctx context.Context, nationalID string) (*dto.StatusCheckResponse, error) {
	if !validation.IsValidNationalID(nationalID) {
		return nil, apperrors.ErrInvalidNationalID
	}

	alumni, err := s.repo.GetByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, repositories.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error checking status: %w", err)
	}

	resp := &dto.StatusCheckResponse{
		FirstName:      alumni.FirstName,
		LastName:       alumni.LastName,
		Status:         alumni.Status,
		DeliveryOption: alumni.DeliveryOption,
		RegisteredAt:   alumni.CreatedAt,
	}
	// Shipping fields are only meaningful for approved mail deliveries
	if alumni.ShippableNow() {
		resp.ShippingStatus = alumni.ShippingStatus
		resp.TrackingNumber = alumni.TrackingNumber
	}
	return resp, nil
}

// List retrieves a filtered page of alumni records.
func (s *AlumniService) List(ctx context.Context, req *dto.AlumniFilterRequest) (*dto.AlumniListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(req.Page, req.PageSize)

	filter := repositories.AlumniFilter{
		Search:         req.Search,
		Status:         models.Status(req.Status),
		Department:     req.Department,
		GraduationYear: req.GraduationYear,
	}

	records, total, err := s.repo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing alumni: %w", err)
	}

	return &dto.AlumniListResponse{
		Alumni:     records,
		Pagination: helpers.NewPaginationInfo(total, req.Page, limit),
	}, nil
}

// GetByID retrieves one record with its shipping history attached.
func (s *AlumniService) GetByID(ctx context.Context, id int64) (*models.Alumni, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequestError("invalid alumni ID")
	}

	alumni, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni: %w", err)
	}

	history, err := s.repo.GetShippingHistory(ctx, id)
	if err != nil {
		// History is supplementary; log and return the record anyway
		s.logger.Warn().Err(err).Int64("alumniId", id).Msg("Failed to load shipping history")
	} else {
		alumni.ShippingHistory = history
	}

	return alumni, nil
}

// Update edits a record's profile fields.
func (s *AlumniService) Update(ctx context.Context, id int64, req *dto.UpdateAlumniRequest) (*models.Alumni, error) {
	alumni, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	alumni.FirstName = strings.TrimSpace(req.FirstName)
	alumni.LastName = strings.TrimSpace(req.LastName)
	alumni.Address = strings.TrimSpace(req.Address)
	alumni.Phone = strings.TrimSpace(req.Phone)
	alumni.Email = strings.TrimSpace(req.Email)
	alumni.Department = strings.TrimSpace(req.Department)
	alumni.GraduationYear = req.GraduationYear
	alumni.DeliveryOption = models.DeliveryOption(req.DeliveryOption)

	if err := s.repo.Update(ctx, alumni); err != nil {
		if errors.Is(err, repositories.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error updating alumni: %w", err)
	}
	return alumni, nil
}

// UpdateStatus changes a record's approval status and records a notification
// when the status actually changed.
func (s *AlumniService) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	if !models.ValidStatus(status) {
		return apperrors.NewBadRequestError("invalid status value")
	}

	alumni, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAlumniNotFound) {
			return apperrors.ErrAlumniNotFound
		}
		return fmt.Errorf("error retrieving alumni: %w", err)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrAlumniNotFound) {
			return apperrors.ErrAlumniNotFound
		}
		return fmt.Errorf("error updating status: %w", err)
	}

	if alumni.Status != status {
		s.notifications.NotifyStatusUpdated(ctx, alumni, status)
	}
	return nil
}

// UpdatePosition changes a member's association position and records a
// notification when the position actually changed.
func (s *AlumniService) UpdatePosition(ctx context.Context, id int64, position string) (*models.Alumni, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, apperrors.NewBadRequestError("position must not be empty")
	}

	alumni, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni: %w", err)
	}

	previous := alumni.Position
	if err := s.repo.UpdatePosition(ctx, id, position); err != nil {
		if errors.Is(err, repositories.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error updating position: %w", err)
	}
	alumni.Position = position

	if previous != position {
		s.notifications.NotifyPositionUpdated(ctx, alumni, position)
	}
	return alumni, nil
}

// Delete removes a record entirely.
func (s *AlumniService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrAlumniNotFound) {
			return apperrors.ErrAlumniNotFound
		}
		return fmt.Errorf("error deleting alumni: %w", err)
	}
	return nil
}

// Statistics aggregates the registry for the dashboard.
func (s *AlumniService) Statistics(ctx context.Context) (*dto.AlumniStatistics, error) {
	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving statistics: %w", err)
	}
	return stats, nil
}
