package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mindmorph/internal/content"
)

// Status is the lifecycle state of one pipeline run.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether the status will never change again.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed || s == StatusCancelled
}

// Stage names in execution order.
const (
	StageIngest     = "ingest"
	StageConcepts   = "extract-concepts"
	StageFlashcards = "generate-flashcards"
	StageMCQs       = "generate-mcqs"
	StageFIBs       = "generate-fill-in-blanks"
	StageFinalize   = "finalize"
)

// stagePlan maps each stage to the percentage reported once it completes.
// Progress only ever moves forward through this table.
var stagePlan = []struct {
	name    string
	percent int
}{
	{StageIngest, 10},
	{StageConcepts, 30},
	{StageFlashcards, 55},
	{StageMCQs, 75},
	{StageFIBs, 90},
	{StageFinalize, 100},
}

// Snapshot is a point-in-time view of a run, safe to hand to callers.
type Snapshot struct {
	RunID         string
	ContentUnitID string
	Identity      string
	Status        Status
	Stage         string // stage currently executing, or last completed
	Percent       int
	ArtifactCount int
	Err           error
	StartedAt     time.Time
	CompletedAt   time.Time
}

// Run is the handle for one asynchronous pipeline execution. All reads go
// through Snapshot; the executing goroutine is the only writer.
type Run struct {
	id       string
	unit     *content.Unit
	identity string

	cancel context.CancelFunc
	done   chan struct{}

	mu          sync.Mutex
	status      Status
	stage       string
	percent     int
	artifactIDs []string
	err         error
	startedAt   time.Time
	completedAt time.Time
}

func newRun(unit *content.Unit, identity string, cancel context.CancelFunc) *Run {
	return &Run{
		id:       uuid.NewString(),
		unit:     unit,
		identity: identity,
		cancel:   cancel,
		done:     make(chan struct{}),
		status:   StatusPending,
	}
}

// ID returns the run's unique identifier.
func (r *Run) ID() string { return r.id }

// Snapshot returns the current state of the run. Idempotent; safe to poll.
func (r *Run) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		RunID:         r.id,
		ContentUnitID: r.unit.ID,
		Identity:      r.identity,
		Status:        r.status,
		Stage:         r.stage,
		Percent:       r.percent,
		ArtifactCount: len(r.artifactIDs),
		Err:           r.err,
		StartedAt:     r.startedAt,
		CompletedAt:   r.completedAt,
	}
}

// ArtifactIDs returns the committed batch's artifact IDs once the run has
// succeeded, in batch order. Empty until then.
func (r *Run) ArtifactIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.artifactIDs))
	copy(out, r.artifactIDs)
	return out
}

// Cancel requests cooperative cancellation. The run stops at the next stage
// boundary; an already-terminal run is unaffected.
func (r *Run) Cancel() {
	r.cancel()
}

// Wait blocks until the run reaches a terminal status or ctx expires. It
// returns the run's error, which is nil on success.
func (r *Run) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.Snapshot().Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel closed when the run reaches a terminal status.
func (r *Run) Done() <-chan struct{} { return r.done }

func (r *Run) setStage(stage string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stage = stage
}

// advance marks a stage complete. Percent never moves backwards.
func (r *Run) advance(percent int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if percent > r.percent {
		r.percent = percent
	}
}

func (r *Run) start(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = StatusRunning
	r.startedAt = now
}

func (r *Run) finish(status Status, ids []string, err error, now time.Time) {
	r.mu.Lock()
	r.status = status
	r.artifactIDs = ids
	r.err = err
	r.completedAt = now
	if status == StatusSucceeded {
		r.percent = 100
	}
	r.mu.Unlock()
	close(r.done)
}
