package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models"
	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/app/repositories"
	"github.com/kritsada/alumnihub/internal/pkg/apperrors"
	"github.com/kritsada/alumnihub/internal/pkg/labels"
	"github.com/kritsada/alumnihub/internal/pkg/printjob"
)

// LabelService renders printable label documents and runs print jobs
type LabelService struct {
	repo   AlumniStore
	jobs   *printjob.Manager
	logger zerolog.Logger
}

// NewLabelService creates a new label service instance
func NewLabelService(repo AlumniStore, jobs *printjob.Manager, logger zerolog.Logger) *LabelService {
	return &LabelService{
		repo:   repo,
		jobs:   jobs,
		logger: logger,
	}
}

func toRecipient(a *models.Alumni) labels.Recipient {
	r := labels.Recipient{
		FullName: a.FirstName + " " + a.LastName,
		Address:  a.Address,
		Phone:    a.Phone,
	}
	if a.TrackingNumber != nil {
		r.TrackingNumber = *a.TrackingNumber
	}
	return r
}

func (s *LabelService) recipientsByIDs(ctx context.Context, ids []int64) ([]labels.Recipient, error) {
	records, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error loading label recipients: %w", err)
	}
	if len(records) == 0 {
		return nil, apperrors.ErrAlumniNotFound
	}

	recipients := make([]labels.Recipient, 0, len(records))
	for i := range records {
		recipients = append(recipients, toRecipient(&records[i]))
	}
	return recipients, nil
}

// RenderSingle renders one label document for one record.
func (s *LabelService) RenderSingle(ctx context.Context, id int64, t labels.LabelType) ([]byte, error) {
	alumni, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error loading label recipient: %w", err)
	}
	return labels.Render(t, []labels.Recipient{toRecipient(alumni)})
}

// RenderFourUp renders one 4-up sheet for up to four records.
func (s *LabelService) RenderFourUp(ctx context.Context, ids []int64) ([]byte, error) {
	if len(ids) > labels.SheetSize {
		return nil, apperrors.ErrSheetTooLarge
	}
	recipients, err := s.recipientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return labels.Render(labels.TypeFourUp, recipients)
}

// RenderBulk renders one document containing every requested record.
func (s *LabelService) RenderBulk(ctx context.Context, ids []int64, labelType string) ([]byte, error) {
	t := labels.TypeMinimal
	if labelType == "full" {
		t = labels.TypeFull
	}
	recipients, err := s.recipientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return labels.Render(t, recipients)
}

// StartPrintJob partitions the selection into 4-up sheets and starts an
// asynchronous rendering job. Sheet failures are isolated inside the job.
func (s *LabelService) StartPrintJob(ctx context.Context, ids []int64) (*dto.PrintJobResponse, error) {
	if len(ids) == 0 {
		return nil, apperrors.ErrEmptySelection
	}

	batches := labels.PartitionSheets(ids)
	snap := s.jobs.Start(batches, func(ctx context.Context, sheetIDs []int64) ([]byte, error) {
		recipients, err := s.recipientsByIDs(ctx, sheetIDs)
		if err != nil {
			return nil, err
		}
		return labels.Render(labels.TypeFourUp, recipients)
	})

	s.logger.Info().
		Str("jobId", snap.ID).
		Int("selection", len(ids)).
		Int("sheets", len(batches)).
		Msg("Print job started")

	return jobToDTO(snap), nil
}

// GetPrintJob returns the state of a job and its sheets.
func (s *LabelService) GetPrintJob(id string) (*dto.PrintJobResponse, error) {
	snap, err := s.jobs.Get(id)
	if err != nil {
		return nil, err
	}
	return jobToDTO(snap), nil
}

// GetSheetDocument returns the rendered HTML of one completed sheet.
func (s *LabelService) GetSheetDocument(jobID string, index int) ([]byte, error) {
	return s.jobs.Document(jobID, index)
}

func jobToDTO(snap printjob.JobSnapshot) *dto.PrintJobResponse {
	resp := &dto.PrintJobResponse{
		ID:         snap.ID,
		State:      string(snap.State),
		SheetCount: len(snap.Sheets),
		CreatedAt:  snap.CreatedAt,
	}
	for _, sheet := range snap.Sheets {
		resp.Sheets = append(resp.Sheets, dto.PrintSheetResponse{
			Index:     sheet.Index,
			AlumniIDs: sheet.AlumniIDs,
			State:     string(sheet.State),
			Error:     sheet.Err,
		})
	}
	return resp
}
