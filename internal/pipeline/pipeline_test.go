package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/mindmorph/internal/artifact"
	"github.com/abhisek/mindmorph/internal/content"
	"github.com/abhisek/mindmorph/internal/llm"
	"github.com/abhisek/mindmorph/internal/store"
	"github.com/abhisek/mindmorph/internal/studygen"
)

// fakeBatchWriter records committed batches and can be told to fail.
type fakeBatchWriter struct {
	mu      sync.Mutex
	batches [][]*artifact.Artifact
	failErr error
}

func (f *fakeBatchWriter) SaveBatch(_ context.Context, batch []*artifact.Artifact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.batches = append(f.batches, batch)
	return nil
}

func (f *fakeBatchWriter) committed() [][]*artifact.Artifact {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.batches
}

// fakeRunLogger records terminal run events.
type fakeRunLogger struct {
	mu     sync.Mutex
	events []store.PipelineRunEventData
}

func (f *fakeRunLogger) AppendPipelineRun(_ context.Context, data store.PipelineRunEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, data)
	return nil
}

func (f *fakeRunLogger) last(t *testing.T) store.PipelineRunEventData {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		t.Fatal("no pipeline run event recorded")
	}
	return f.events[len(f.events)-1]
}

// happyResponses returns canned LLM responses for all four stages.
func happyResponses() []llm.MockResponse {
	return []llm.MockResponse{
		{Content: json.RawMessage(`{"concepts":[
			{"name":"Photosynthesis","summary":"Plants convert light to chemical energy.","difficulty":"easy","segment":0}
		]}`)},
		{Content: json.RawMessage(`{"cards":[
			{"question":"What do plants convert light into?","answer":"Chemical energy","concept":"Photosynthesis","difficulty":"easy"},
			{"question":"Where does photosynthesis happen?","answer":"Chloroplasts","concept":"Photosynthesis","difficulty":"medium"}
		]}`)},
		{Content: json.RawMessage(`{"questions":[
			{"question":"What is the product of photosynthesis?","options":["Glucose","Nitrogen"],"correct_index":0,"concept":"Photosynthesis","difficulty":"easy"}
		]}`)},
		{Content: json.RawMessage(`{"items":[
			{"sentence":"Plants produce _____ during photosynthesis.","answer":"glucose","concept":"Photosynthesis","difficulty":"easy"}
		]}`)},
	}
}

func newTestRunner(responses ...llm.MockResponse) (*Runner, *fakeBatchWriter, *fakeRunLogger) {
	gen := studygen.New(llm.NewMockProvider(responses...), studygen.DefaultConfig())
	writer := &fakeBatchWriter{}
	logger := &fakeRunLogger{}
	return NewRunner(gen, writer, logger), writer, logger
}

func testUnit(t *testing.T, segments ...string) *content.Unit {
	t.Helper()
	return content.NewUnit(segments, content.SourceText, time.Now())
}

func TestSubmitRejectsEmptyContent(t *testing.T) {
	runner, writer, logger := newTestRunner()

	_, err := runner.Submit(context.Background(), "anon:s", testUnit(t, "", "   "))
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if len(writer.committed()) != 0 {
		t.Error("empty submit must not commit anything")
	}
	logger.mu.Lock()
	defer logger.mu.Unlock()
	if len(logger.events) != 0 {
		t.Error("empty submit must not record a run event")
	}
}

func TestRunSucceedsAndCommitsOneBatch(t *testing.T) {
	runner, writer, logger := newTestRunner(happyResponses()...)

	unit := testUnit(t, "Photosynthesis converts light into chemical energy.")
	run, err := runner.Submit(context.Background(), "anon:s", unit)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := run.Wait(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	snap := run.Snapshot()
	if snap.Status != StatusSucceeded {
		t.Fatalf("status = %s, want succeeded", snap.Status)
	}
	if snap.Percent != 100 {
		t.Errorf("percent = %d, want 100", snap.Percent)
	}
	if snap.ArtifactCount != 4 {
		t.Errorf("artifact count = %d, want 4", snap.ArtifactCount)
	}

	batches := writer.committed()
	if len(batches) != 1 {
		t.Fatalf("committed %d batches, want exactly 1", len(batches))
	}
	batch := batches[0]
	for i, a := range batch {
		if a.BatchOrder != i {
			t.Errorf("artifact %d batch order = %d", i, a.BatchOrder)
		}
		if a.SourceUnit != unit.ID {
			t.Errorf("artifact %d source unit = %q, want %q", i, a.SourceUnit, unit.ID)
		}
		if a.Category != "Photosynthesis" {
			t.Errorf("artifact %d category = %q", i, a.Category)
		}
		if a.Review.Repetitions != 0 || a.Review.IntervalDays != 0 {
			t.Errorf("artifact %d review state not fresh: %+v", i, a.Review)
		}
		if !a.Review.DueAt.Equal(a.CreatedAt) {
			t.Errorf("artifact %d dueAt = %v, want created time %v", i, a.Review.DueAt, a.CreatedAt)
		}
	}
	// Kind ordering: flashcards, then MCQs, then fill-in-blanks.
	wantKinds := []artifact.Kind{
		artifact.KindFlashcard, artifact.KindFlashcard,
		artifact.KindMultipleChoice, artifact.KindFillInBlank,
	}
	for i, k := range wantKinds {
		if batch[i].Kind != k {
			t.Errorf("batch[%d].Kind = %s, want %s", i, batch[i].Kind, k)
		}
	}

	ev := logger.last(t)
	if ev.Status != string(StatusSucceeded) || ev.ArtifactCount != 4 {
		t.Errorf("run event = %+v", ev)
	}
}

func TestStageFailureCommitsNothing(t *testing.T) {
	// Concept extraction succeeds; flashcard generation fails.
	responses := happyResponses()[:1]
	responses = append(responses, llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	runner, writer, logger := newTestRunner(responses...)

	run, err := runner.Submit(context.Background(), "anon:s", testUnit(t, "some text"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	werr := run.Wait(context.Background())
	if werr == nil {
		t.Fatal("expected run error")
	}

	var serr *StageError
	if !errors.As(werr, &serr) {
		t.Fatalf("expected StageError, got %v", werr)
	}
	if serr.Stage != StageFlashcards {
		t.Errorf("failed stage = %q, want %q", serr.Stage, StageFlashcards)
	}
	if len(writer.committed()) != 0 {
		t.Error("failed run must not commit artifacts")
	}

	ev := logger.last(t)
	if ev.Status != string(StatusFailed) || ev.FailedStage != StageFlashcards {
		t.Errorf("run event = %+v", ev)
	}
}

func TestCommitFailureDiscardsBatch(t *testing.T) {
	runner, writer, logger := newTestRunner(happyResponses()...)
	writer.failErr = errors.New("disk full")

	run, err := runner.Submit(context.Background(), "anon:s", testUnit(t, "some text"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	werr := run.Wait(context.Background())

	var serr *StageError
	if !errors.As(werr, &serr) || serr.Stage != StageFinalize {
		t.Fatalf("expected finalize StageError, got %v", werr)
	}
	if ev := logger.last(t); ev.FailedStage != StageFinalize {
		t.Errorf("run event = %+v", ev)
	}
}

func TestCancelBeforeFirstStage(t *testing.T) {
	// No canned responses: if a stage ran it would fail, not cancel.
	runner, writer, _ := newTestRunner()

	run, err := runner.Submit(context.Background(), "anon:s", testUnit(t, "some text"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	run.Cancel()
	_ = run.Wait(context.Background())

	snap := run.Snapshot()
	if snap.Status != StatusCancelled && snap.Status != StatusFailed {
		t.Fatalf("status = %s, want terminal", snap.Status)
	}
	if len(writer.committed()) != 0 {
		t.Error("cancelled run must not commit artifacts")
	}
}

func TestProgressIsMonotone(t *testing.T) {
	runner, _, _ := newTestRunner(happyResponses()...)

	run, err := runner.Submit(context.Background(), "anon:s", testUnit(t, "some text"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	prev := -1
	done := run.Done()
	for {
		snap := run.Snapshot()
		if snap.Percent < prev {
			t.Fatalf("progress went backwards: %d after %d", snap.Percent, prev)
		}
		if snap.Percent < 0 || snap.Percent > 100 {
			t.Fatalf("progress out of range: %d", snap.Percent)
		}
		prev = snap.Percent
		select {
		case <-done:
			if final := run.Snapshot(); final.Percent != 100 {
				t.Fatalf("final percent = %d", final.Percent)
			}
			return
		default:
		}
	}
}

func TestProgressLookupAfterCompletion(t *testing.T) {
	runner, _, _ := newTestRunner(happyResponses()...)

	run, err := runner.Submit(context.Background(), "anon:s", testUnit(t, "some text"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := run.Wait(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Terminal runs are still pollable through the history ring.
	snap, err := runner.Progress(run.ID())
	if err != nil {
		t.Fatalf("progress after completion: %v", err)
	}
	if snap.Status != StatusSucceeded {
		t.Errorf("status = %s, want succeeded", snap.Status)
	}

	if _, err := runner.Progress("no-such-run"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestObserverSeesStagesAndTerminal(t *testing.T) {
	runner, _, _ := newTestRunner(happyResponses()...)

	var mu sync.Mutex
	var seen []Snapshot
	runner.Observe(func(s Snapshot) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	run, err := runner.Submit(context.Background(), "anon:s", testUnit(t, "some text"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := run.Wait(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	// One callback per stage boundary plus the terminal one.
	if len(seen) != len(stagePlan)+1 {
		t.Fatalf("observer called %d times, want %d", len(seen), len(stagePlan)+1)
	}
	for i := 1; i < len(seen); i++ {
		if seen[i].Percent < seen[i-1].Percent {
			t.Fatalf("observer saw progress go backwards: %+v", seen)
		}
	}
	last := seen[len(seen)-1]
	if last.Status != StatusSucceeded || last.Percent != 100 {
		t.Errorf("terminal snapshot = %+v", last)
	}
}

func TestHistoryNewestFirstAndBounded(t *testing.T) {
	runner, _, _ := newTestRunner()

	var last *Run
	for i := 0; i < historySize+5; i++ {
		run, err := runner.Submit(context.Background(), "anon:s", testUnit(t, "text"))
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		// Fails at concept stage (no canned responses); terminal either way.
		_ = run.Wait(context.Background())
		last = run
	}

	hist := runner.History()
	if len(hist) != historySize {
		t.Fatalf("history len = %d, want %d", len(hist), historySize)
	}
	if hist[0].RunID != last.ID() {
		t.Errorf("history[0] = %s, want most recent run %s", hist[0].RunID, last.ID())
	}
}
