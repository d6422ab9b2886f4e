package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models"
	"github.com/kritsada/alumnihub/internal/pkg/apperrors"
	"github.com/kritsada/alumnihub/internal/pkg/labels"
	"github.com/kritsada/alumnihub/internal/pkg/printjob"
)

func labelStore() *mockAlumniStore {
	return &mockAlumniStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Alumni, error) {
			return &models.Alumni{
				ID:        id,
				FirstName: "สมชาย",
				LastName:  "ใจดี",
				Address:   "123 ถนนสุขุมวิท",
				Phone:     "0812345678",
			}, nil
		},
		getByIDsFn: func(ctx context.Context, ids []int64) ([]models.Alumni, error) {
			records := make([]models.Alumni, 0, len(ids))
			for _, id := range ids {
				records = append(records, models.Alumni{
					ID:        id,
					FirstName: "สมชาย",
					LastName:  "ใจดี",
					Address:   "123 ถนนสุขุมวิท",
					Phone:     "0812345678",
				})
			}
			return records, nil
		},
	}
}

func newLabelService(store *mockAlumniStore) *LabelService {
	jobs := printjob.NewManager(0, 10, zerolog.Nop())
	return NewLabelService(store, jobs, zerolog.Nop())
}

func TestRenderSingleProducesDocument(t *testing.T) {
	svc := newLabelService(labelStore())

	doc, err := svc.RenderSingle(context.Background(), 1, labels.TypeMinimal)
	if err != nil {
		t.Fatalf("RenderSingle error: %v", err)
	}
	if !strings.Contains(string(doc), "สมชาย ใจดี") {
		t.Error("document missing recipient name")
	}
}

func TestRenderFourUpTooManyRecipients(t *testing.T) {
	svc := newLabelService(labelStore())

	_, err := svc.RenderFourUp(context.Background(), []int64{1, 2, 3, 4, 5})
	if !errors.Is(err, apperrors.ErrSheetTooLarge) {
		t.Errorf("got %v, want ErrSheetTooLarge", err)
	}
}

func TestRenderFourUpUnknownRecords(t *testing.T) {
	store := labelStore()
	store.getByIDsFn = func(ctx context.Context, ids []int64) ([]models.Alumni, error) {
		return nil, nil
	}
	svc := newLabelService(store)

	_, err := svc.RenderFourUp(context.Background(), []int64{1, 2})
	if !errors.Is(err, apperrors.ErrAlumniNotFound) {
		t.Errorf("got %v, want ErrAlumniNotFound", err)
	}
}

func TestStartPrintJobPartitionsSelection(t *testing.T) {
	svc := newLabelService(labelStore())

	job, err := svc.StartPrintJob(context.Background(), []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if err != nil {
		t.Fatalf("StartPrintJob error: %v", err)
	}

	if job.SheetCount != 3 {
		t.Fatalf("SheetCount = %d, want 3", job.SheetCount)
	}
	wantSizes := []int{4, 4, 2}
	for i, sheet := range job.Sheets {
		if len(sheet.AlumniIDs) != wantSizes[i] {
			t.Errorf("sheet %d holds %d ids, want %d", i, len(sheet.AlumniIDs), wantSizes[i])
		}
	}

	// The job renders in the background; all sheets should complete
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		fresh, err := svc.GetPrintJob(job.ID)
		if err != nil {
			t.Fatalf("GetPrintJob error: %v", err)
		}
		if fresh.State == "completed" {
			for _, sheet := range fresh.Sheets {
				if sheet.State != "done" {
					t.Errorf("sheet %d state = %s, want done", sheet.Index, sheet.State)
				}
			}
			doc, err := svc.GetSheetDocument(job.ID, 0)
			if err != nil {
				t.Fatalf("GetSheetDocument error: %v", err)
			}
			if !strings.Contains(string(doc), "สมชาย ใจดี") {
				t.Error("sheet document missing recipient name")
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("print job did not complete in time")
}

func TestStartPrintJobEmptySelection(t *testing.T) {
	svc := newLabelService(labelStore())

	_, err := svc.StartPrintJob(context.Background(), nil)
	if !errors.Is(err, apperrors.ErrEmptySelection) {
		t.Errorf("got %v, want ErrEmptySelection", err)
	}
}

func TestGetPrintJobUnknownID(t *testing.T) {
	svc := newLabelService(labelStore())

	_, err := svc.GetPrintJob("no-such-job")
	if !errors.Is(err, apperrors.ErrPrintJobNotFound) {
		t.Errorf("got %v, want ErrPrintJobNotFound", err)
	}
}
