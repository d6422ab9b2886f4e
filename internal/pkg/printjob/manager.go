// Package printjob runs asynchronous label print jobs: each job renders a
// sequence of sheets, one at a time, with a stagger delay between dispatches.
// Sheet failures are recorded individually and never abort the rest of the job.
package printjob

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/pkg/apperrors"
)

// SheetState is the lifecycle of a single sheet inside a job.
type SheetState string

const (
	SheetPending   SheetState = "pending"
	SheetRendering SheetState = "rendering"
	SheetDone      SheetState = "done"
	SheetFailed    SheetState = "failed"
)

// JobState is the lifecycle of a whole job.
type JobState string

const (
	JobRunning   JobState = "running"
	JobCompleted JobState = "completed"
)

// RenderFunc renders one sheet's HTML document for the given member IDs.
type RenderFunc func(ctx context.Context, alumniIDs []int64) ([]byte, error)

// Sheet is the internal state of one sheet.
type Sheet struct {
	Index     int
	AlumniIDs []int64
	State     SheetState
	Err       string
	document  []byte
}

// Job is the internal state of one print job.
type Job struct {
	ID        string
	State     JobState
	Sheets    []*Sheet
	CreatedAt time.Time
}

// SheetSnapshot is a race-free copy of a sheet's state.
type SheetSnapshot struct {
	Index     int
	AlumniIDs []int64
	State     SheetState
	Err       string
}

// JobSnapshot is a race-free copy of a job's state.
type JobSnapshot struct {
	ID        string
	State     JobState
	Sheets    []SheetSnapshot
	CreatedAt time.Time
}

// Manager owns all in-flight and recently finished print jobs.
// Jobs are derived state: they are held in memory only and lost on restart.
type Manager struct {
	mu      sync.RWMutex
	jobs    map[string]*Job
	order   []string // job IDs, oldest first, for retention
	stagger time.Duration
	maxJobs int
	logger  zerolog.Logger
}

// NewManager creates a print job manager. stagger is the delay between
// successive sheet dispatches; maxJobs bounds retained job history.
func NewManager(stagger time.Duration, maxJobs int, logger zerolog.Logger) *Manager {
	if maxJobs <= 0 {
		maxJobs = 50
	}
	return &Manager{
		jobs:    make(map[string]*Job),
		stagger: stagger,
		maxJobs: maxJobs,
		logger:  logger,
	}
}

// Start creates a job for the given sheet batches and begins rendering them
// in the background. It returns the job snapshot immediately.
func (m *Manager) Start(batches [][]int64, render RenderFunc) JobSnapshot {
	job := &Job{
		ID:        uuid.New().String(),
		State:     JobRunning,
		CreatedAt: time.Now(),
	}
	for i, ids := range batches {
		job.Sheets = append(job.Sheets, &Sheet{
			Index:     i,
			AlumniIDs: ids,
			State:     SheetPending,
		})
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.order = append(m.order, job.ID)
	m.evictLocked()
	snap := snapshotLocked(job)
	m.mu.Unlock()

	go m.run(job, render)
	return snap
}

// run renders the job's sheets sequentially. Detached from any request
// context: the job outlives the HTTP call that started it.
func (m *Manager) run(job *Job, render RenderFunc) {
	ctx := context.Background()

	for i, sheet := range job.Sheets {
		if i > 0 && m.stagger > 0 {
			time.Sleep(m.stagger)
		}

		m.setSheetState(job, sheet, SheetRendering, "", nil)

		doc, err := render(ctx, sheet.AlumniIDs)
		if err != nil {
			m.logger.Error().Err(err).
				Str("jobId", job.ID).
				Int("sheet", sheet.Index).
				Msg("Label sheet rendering failed")
			m.setSheetState(job, sheet, SheetFailed, err.Error(), nil)
			continue
		}
		m.setSheetState(job, sheet, SheetDone, "", doc)
	}

	m.mu.Lock()
	job.State = JobCompleted
	m.mu.Unlock()

	m.logger.Info().
		Str("jobId", job.ID).
		Int("sheets", len(job.Sheets)).
		Msg("Print job completed")
}

func (m *Manager) setSheetState(job *Job, sheet *Sheet, state SheetState, errMsg string, doc []byte) {
	m.mu.Lock()
	sheet.State = state
	sheet.Err = errMsg
	if doc != nil {
		sheet.document = doc
	}
	m.mu.Unlock()
}

// Get returns a snapshot of the job with the given ID.
func (m *Manager) Get(id string) (JobSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[id]
	if !ok {
		return JobSnapshot{}, apperrors.ErrPrintJobNotFound
	}
	return snapshotLocked(job), nil
}

// Document returns the rendered HTML of one completed sheet.
func (m *Manager) Document(id string, index int) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, apperrors.ErrPrintJobNotFound
	}
	if index < 0 || index >= len(job.Sheets) {
		return nil, apperrors.ErrPrintJobNotFound
	}
	sheet := job.Sheets[index]
	if sheet.State != SheetDone {
		return nil, apperrors.ErrSheetNotReady
	}
	return sheet.document, nil
}

// evictLocked drops the oldest jobs beyond the retention bound.
// Caller must hold m.mu.
func (m *Manager) evictLocked() {
	for len(m.order) > m.maxJobs {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.jobs, oldest)
	}
}

func snapshotLocked(job *Job) JobSnapshot {
	snap := JobSnapshot{
		ID:        job.ID,
		State:     job.State,
		CreatedAt: job.CreatedAt,
	}
	for _, sheet := range job.Sheets {
		ids := make([]int64, len(sheet.AlumniIDs))
		copy(ids, sheet.AlumniIDs)
		snap.Sheets = append(snap.Sheets, SheetSnapshot{
			Index:     sheet.Index,
			AlumniIDs: ids,
			State:     sheet.State,
			Err:       sheet.Err,
		})
	}
	return snap
}
