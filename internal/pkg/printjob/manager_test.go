package printjob

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/pkg/apperrors"
)

func waitForCompletion(t *testing.T, m *Manager, jobID string) JobSnapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snap, err := m.Get(jobID)
		if err != nil {
			t.Fatalf("Get(%s) error: %v", jobID, err)
		}
		if snap.State == JobCompleted {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s did not complete in time", jobID)
	return JobSnapshot{}
}

func TestStartRendersAllSheets(t *testing.T) {
	m := NewManager(0, 10, zerolog.Nop())

	batches := [][]int64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10}}
	snap := m.Start(batches, func(ctx context.Context, ids []int64) ([]byte, error) {
		return []byte(fmt.Sprintf("sheet-%d", ids[0])), nil
	})

	if len(snap.Sheets) != 3 {
		t.Fatalf("got %d sheets, want 3", len(snap.Sheets))
	}

	done := waitForCompletion(t, m, snap.ID)
	for _, sheet := range done.Sheets {
		if sheet.State != SheetDone {
			t.Errorf("sheet %d state = %s, want done", sheet.Index, sheet.State)
		}
	}

	doc, err := m.Document(snap.ID, 2)
	if err != nil {
		t.Fatalf("Document error: %v", err)
	}
	if string(doc) != "sheet-9" {
		t.Errorf("sheet 2 document = %q", doc)
	}
}

func TestSheetFailureDoesNotAbortJob(t *testing.T) {
	m := NewManager(0, 10, zerolog.Nop())

	batches := [][]int64{{1}, {2}, {3}}
	snap := m.Start(batches, func(ctx context.Context, ids []int64) ([]byte, error) {
		if ids[0] == 2 {
			return nil, errors.New("render exploded")
		}
		return []byte("ok"), nil
	})

	done := waitForCompletion(t, m, snap.ID)

	wantStates := []SheetState{SheetDone, SheetFailed, SheetDone}
	for i, sheet := range done.Sheets {
		if sheet.State != wantStates[i] {
			t.Errorf("sheet %d state = %s, want %s", i, sheet.State, wantStates[i])
		}
	}
	if done.Sheets[1].Err != "render exploded" {
		t.Errorf("sheet 1 error = %q", done.Sheets[1].Err)
	}

	if _, err := m.Document(snap.ID, 1); !errors.Is(err, apperrors.ErrSheetNotReady) {
		t.Errorf("Document on failed sheet: got %v, want ErrSheetNotReady", err)
	}
}

func TestDocumentErrors(t *testing.T) {
	m := NewManager(0, 10, zerolog.Nop())

	if _, err := m.Document("no-such-job", 0); !errors.Is(err, apperrors.ErrPrintJobNotFound) {
		t.Errorf("unknown job: got %v, want ErrPrintJobNotFound", err)
	}

	snap := m.Start([][]int64{{1}}, func(ctx context.Context, ids []int64) ([]byte, error) {
		return []byte("ok"), nil
	})
	waitForCompletion(t, m, snap.ID)

	if _, err := m.Document(snap.ID, 5); !errors.Is(err, apperrors.ErrPrintJobNotFound) {
		t.Errorf("out-of-range sheet: got %v, want ErrPrintJobNotFound", err)
	}
}

func TestGetUnknownJob(t *testing.T) {
	m := NewManager(0, 10, zerolog.Nop())
	if _, err := m.Get("missing"); !errors.Is(err, apperrors.ErrPrintJobNotFound) {
		t.Errorf("got %v, want ErrPrintJobNotFound", err)
	}
}

func TestRetentionEvictsOldestJobs(t *testing.T) {
	m := NewManager(0, 2, zerolog.Nop())

	render := func(ctx context.Context, ids []int64) ([]byte, error) {
		return []byte("ok"), nil
	}

	first := m.Start([][]int64{{1}}, render)
	second := m.Start([][]int64{{2}}, render)
	third := m.Start([][]int64{{3}}, render)

	if _, err := m.Get(first.ID); !errors.Is(err, apperrors.ErrPrintJobNotFound) {
		t.Errorf("oldest job should be evicted, got %v", err)
	}
	if _, err := m.Get(second.ID); err != nil {
		t.Errorf("second job should be retained: %v", err)
	}
	if _, err := m.Get(third.ID); err != nil {
		t.Errorf("third job should be retained: %v", err)
	}
}

func TestStaggerDelaysBetweenSheets(t *testing.T) {
	const stagger = 30 * time.Millisecond
	m := NewManager(stagger, 10, zerolog.Nop())

	var timestamps []time.Time
	snap := m.Start([][]int64{{1}, {2}, {3}}, func(ctx context.Context, ids []int64) ([]byte, error) {
		timestamps = append(timestamps, time.Now())
		return []byte("ok"), nil
	})

	waitForCompletion(t, m, snap.ID)

	if len(timestamps) != 3 {
		t.Fatalf("got %d renders, want 3", len(timestamps))
	}
	for i := 1; i < len(timestamps); i++ {
		if gap := timestamps[i].Sub(timestamps[i-1]); gap < stagger {
			t.Errorf("gap between sheet %d and %d = %v, want >= %v", i-1, i, gap, stagger)
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	m := NewManager(0, 10, zerolog.Nop())

	snap := m.Start([][]int64{{1, 2}}, func(ctx context.Context, ids []int64) ([]byte, error) {
		return []byte("ok"), nil
	})

	snap.Sheets[0].AlumniIDs[0] = 99

	fresh := waitForCompletion(t, m, snap.ID)
	if fresh.Sheets[0].AlumniIDs[0] != 1 {
		t.Error("snapshot mutation leaked into manager state")
	}
}
