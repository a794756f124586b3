// Package pipeline runs the ordered generation stages over one content unit
// and commits the resulting artifact batch in a single transaction. Runs
// execute asynchronously; callers poll the returned handle for progress.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mindmorph/internal/artifact"
	"github.com/abhisek/mindmorph/internal/content"
	"github.com/abhisek/mindmorph/internal/store"
	"github.com/abhisek/mindmorph/internal/studygen"
)

// historySize bounds how many terminal run snapshots are kept for
// diagnostics. Older entries are overwritten.
const historySize = 32

// BatchWriter commits a full artifact batch atomically.
type BatchWriter interface {
	SaveBatch(ctx context.Context, batch []*artifact.Artifact) error
}

// RunLogger records terminal pipeline outcomes.
type RunLogger interface {
	AppendPipelineRun(ctx context.Context, data store.PipelineRunEventData) error
}

// Runner executes generation pipelines. One Runner serves all identities;
// each Submit spawns an independent run.
type Runner struct {
	gen       *studygen.Generator
	artifacts BatchWriter
	events    RunLogger

	mu      sync.Mutex
	active  map[string]*Run
	history [historySize]Snapshot
	histLen int
	histPos int

	// now is swappable for tests.
	now func() time.Time

	// observer, when set, receives a snapshot at every stage boundary and
	// on termination. Called from the run goroutine; must not block.
	observer func(Snapshot)
}

// NewRunner creates a Runner backed by the given generator and stores.
func NewRunner(gen *studygen.Generator, artifacts BatchWriter, events RunLogger) *Runner {
	return &Runner{
		gen:       gen,
		artifacts: artifacts,
		events:    events,
		active:    make(map[string]*Run),
		now:       time.Now,
	}
}

// Observe registers a callback invoked with a snapshot at every stage
// boundary and once more when a run terminates. Set before any Submit.
func (rn *Runner) Observe(fn func(Snapshot)) {
	rn.observer = fn
}

func (rn *Runner) notify(run *Run) {
	if rn.observer != nil {
		rn.observer(run.Snapshot())
	}
}

// Submit starts a pipeline run for the unit and returns its handle.
// The unit must contain at least one non-empty segment; otherwise
// ErrEmptyContent is returned and no stages run.
func (rn *Runner) Submit(ctx context.Context, identity string, unit *content.Unit) (*Run, error) {
	if unit == nil || !unit.HasContent() {
		return nil, ErrEmptyContent
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	run := newRun(unit, identity, cancel)

	rn.mu.Lock()
	rn.active[run.id] = run
	rn.mu.Unlock()

	go rn.execute(runCtx, run)

	return run, nil
}

// Get returns the handle for an active (not yet reaped) run.
func (rn *Runner) Get(runID string) (*Run, error) {
	rn.mu.Lock()
	defer rn.mu.Unlock()
	run, ok := rn.active[runID]
	if !ok {
		return nil, ErrRunNotFound
	}
	return run, nil
}

// Progress returns the current snapshot for a run by ID, looking through
// active runs first and then the terminal history. Idempotent.
func (rn *Runner) Progress(runID string) (Snapshot, error) {
	rn.mu.Lock()
	if run, ok := rn.active[runID]; ok {
		rn.mu.Unlock()
		return run.Snapshot(), nil
	}
	defer rn.mu.Unlock()
	for i := 0; i < rn.histLen; i++ {
		idx := (rn.histPos - 1 - i + historySize*2) % historySize
		if rn.history[idx].RunID == runID {
			return rn.history[idx], nil
		}
	}
	return Snapshot{}, ErrRunNotFound
}

// History returns snapshots of recently finished runs, newest first.
func (rn *Runner) History() []Snapshot {
	rn.mu.Lock()
	defer rn.mu.Unlock()
	out := make([]Snapshot, 0, rn.histLen)
	for i := 0; i < rn.histLen; i++ {
		idx := (rn.histPos - 1 - i + historySize*2) % historySize
		out = append(out, rn.history[idx])
	}
	return out
}

// execute drives the stage chain. Cancellation is checked before every
// stage; a cancelled or failed run commits nothing.
func (rn *Runner) execute(ctx context.Context, run *Run) {
	started := rn.now()
	run.start(started)

	batch, err := rn.runStages(ctx, run)

	status := StatusSucceeded
	var failedStage string
	var ids []string
	switch {
	case err == nil:
		ids = make([]string, len(batch))
		for i, a := range batch {
			ids[i] = a.ID
		}
	case errors.Is(err, context.Canceled):
		status = StatusCancelled
	default:
		status = StatusFailed
		var serr *StageError
		if errors.As(err, &serr) {
			failedStage = serr.Stage
		}
	}

	finished := rn.now()
	run.finish(status, ids, err, finished)
	rn.notify(run)
	rn.retire(run)

	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	// Run outcome logging is best-effort; a logging failure must not
	// change the run's result.
	_ = rn.events.AppendPipelineRun(context.WithoutCancel(ctx), store.PipelineRunEventData{
		RunID:         run.id,
		ContentUnitID: run.unit.ID,
		Identity:      run.identity,
		SourceKind:    string(run.unit.Source),
		Status:        string(status),
		FailedStage:   failedStage,
		ErrorMessage:  errMsg,
		ArtifactCount: len(ids),
		DurationMs:    finished.Sub(started).Milliseconds(),
	})
}

func (rn *Runner) runStages(ctx context.Context, run *Run) ([]*artifact.Artifact, error) {
	unit := run.unit

	// Ingest: the unit arrives pre-segmented and non-empty; this stage
	// exists so cancellation and progress have a boundary before the
	// first LLM call.
	if err := rn.enterStage(ctx, run, 0); err != nil {
		return nil, err
	}
	segments := unit.Segments
	run.advance(stagePlan[0].percent)

	if err := rn.enterStage(ctx, run, 1); err != nil {
		return nil, err
	}
	concepts, err := rn.gen.Concepts(ctx, segments)
	if err != nil {
		return nil, rn.stageFailure(ctx, StageConcepts, err)
	}
	run.advance(stagePlan[1].percent)

	if err := rn.enterStage(ctx, run, 2); err != nil {
		return nil, err
	}
	cards, err := rn.gen.Flashcards(ctx, concepts, segments)
	if err != nil {
		return nil, rn.stageFailure(ctx, StageFlashcards, err)
	}
	run.advance(stagePlan[2].percent)

	if err := rn.enterStage(ctx, run, 3); err != nil {
		return nil, err
	}
	mcqs, err := rn.gen.MultipleChoice(ctx, concepts, segments)
	if err != nil {
		return nil, rn.stageFailure(ctx, StageMCQs, err)
	}
	run.advance(stagePlan[3].percent)

	if err := rn.enterStage(ctx, run, 4); err != nil {
		return nil, err
	}
	fibs, err := rn.gen.FillInBlanks(ctx, concepts, segments)
	if err != nil {
		return nil, rn.stageFailure(ctx, StageFIBs, err)
	}
	run.advance(stagePlan[4].percent)

	if err := rn.enterStage(ctx, run, 5); err != nil {
		return nil, err
	}
	now := rn.now()
	batch := assembleBatch(unit.ID, cards, mcqs, fibs, now)
	if err := rn.artifacts.SaveBatch(ctx, batch); err != nil {
		return nil, rn.stageFailure(ctx, StageFinalize, fmt.Errorf("commit batch: %w", err))
	}
	run.advance(stagePlan[5].percent)

	return batch, nil
}

// enterStage checks cancellation at the stage boundary and records the
// stage name for pollers.
func (rn *Runner) enterStage(ctx context.Context, run *Run, idx int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	run.setStage(stagePlan[idx].name)
	rn.notify(run)
	return nil
}

// stageFailure wraps a stage error, preferring the cancellation cause when
// the context was cancelled mid-call.
func (rn *Runner) stageFailure(ctx context.Context, stage string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return &StageError{Stage: stage, Err: err}
}

// assembleBatch turns the generated items into artifacts with fresh review
// state. Ordering is deterministic: flashcards, then MCQs, then
// fill-in-blanks, each in generation order which follows concept order.
func assembleBatch(unitID string, cards []studygen.Card, mcqs []studygen.MCQ, fibs []studygen.FIB, now time.Time) []*artifact.Artifact {
	batch := make([]*artifact.Artifact, 0, len(cards)+len(mcqs)+len(fibs))
	order := 0

	add := func(a *artifact.Artifact) {
		a.ID = uuid.NewString()
		a.SourceUnit = unitID
		a.BatchOrder = order
		a.CreatedAt = now
		a.Review = artifact.NewReviewState(now)
		order++
		batch = append(batch, a)
	}

	for _, c := range cards {
		add(&artifact.Artifact{
			Kind:       artifact.KindFlashcard,
			Question:   c.Question,
			Answer:     c.Answer,
			Category:   c.Concept,
			Difficulty: c.Difficulty,
		})
	}
	for _, q := range mcqs {
		add(&artifact.Artifact{
			Kind:       artifact.KindMultipleChoice,
			Question:   q.Question,
			Answer:     q.Options[q.CorrectIndex],
			Options:    q.Options,
			CorrectIdx: q.CorrectIndex,
			Category:   q.Concept,
			Difficulty: q.Difficulty,
		})
	}
	for _, f := range fibs {
		add(&artifact.Artifact{
			Kind:       artifact.KindFillInBlank,
			Question:   f.Sentence,
			Answer:     f.Answer,
			Category:   f.Concept,
			Difficulty: f.Difficulty,
		})
	}
	return batch
}

// retire moves a terminal run from the active map into the history ring.
func (rn *Runner) retire(run *Run) {
	snap := run.Snapshot()
	rn.mu.Lock()
	defer rn.mu.Unlock()
	delete(rn.active, run.id)
	rn.history[rn.histPos%historySize] = snap
	rn.histPos = (rn.histPos + 1) % historySize
	if rn.histLen < historySize {
		rn.histLen++
	}
}
