package spacedrep

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/mindmorph/internal/artifact"
	"github.com/abhisek/mindmorph/internal/store"
)

// memArtifactRepo is an in-memory ArtifactRepo with the same version-guard
// contract as the SQL-backed one.
type memArtifactRepo struct {
	mu        sync.Mutex
	artifacts map[string]*artifact.Artifact

	// forceConflicts makes every UpdateReview fail with ErrConflict.
	forceConflicts bool
}

func newMemArtifactRepo() *memArtifactRepo {
	return &memArtifactRepo{artifacts: make(map[string]*artifact.Artifact)}
}

func (m *memArtifactRepo) SaveBatch(_ context.Context, batch []*artifact.Artifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range batch {
		cp := *a
		m.artifacts[a.ID] = &cp
	}
	return nil
}

func (m *memArtifactRepo) Get(_ context.Context, id string) (*artifact.Artifact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.artifacts[id]
	if !ok {
		return nil, fmt.Errorf("artifact %s: %w", id, store.ErrNotFound)
	}
	cp := *a
	return &cp, nil
}

func (m *memArtifactRepo) UpdateReview(_ context.Context, id string, prevVersion int64, rs artifact.ReviewState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.artifacts[id]
	if !ok {
		return fmt.Errorf("artifact %s: %w", id, store.ErrNotFound)
	}
	if m.forceConflicts || a.Review.Version != prevVersion {
		return store.ErrConflict
	}
	rs.Version = prevVersion + 1
	a.Review = rs
	return nil
}

func (m *memArtifactRepo) Due(_ context.Context, now time.Time, limit int) ([]*artifact.Artifact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var due []*artifact.Artifact
	for _, a := range m.artifacts {
		if !a.Review.DueAt.After(now) {
			cp := *a
			due = append(due, &cp)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].Review.DueAt.Equal(due[j].Review.DueAt) {
			return due[i].Review.DueAt.Before(due[j].Review.DueAt)
		}
		return due[i].ID < due[j].ID
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (m *memArtifactRepo) Counts(_ context.Context, _ time.Time) (store.DashboardCounts, error) {
	return store.DashboardCounts{}, nil
}

func (m *memArtifactRepo) Purge(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.artifacts)
	m.artifacts = make(map[string]*artifact.Artifact)
	return n, nil
}

type memReviewLog struct {
	mu     sync.Mutex
	events []store.ReviewEventData

	// failErr makes every append fail without recording.
	failErr error
}

func (l *memReviewLog) AppendReview(_ context.Context, data store.ReviewEventData) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	l.events = append(l.events, data)
	return nil
}

func seedArtifact(t *testing.T, repo *memArtifactRepo, id string, now time.Time) {
	t.Helper()
	err := repo.SaveBatch(context.Background(), []*artifact.Artifact{{
		ID:       id,
		Kind:     artifact.KindFlashcard,
		Question: "q",
		Answer:   "a",
		Review:   artifact.NewReviewState(now),
	}})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestRecordAnswerAppliesTransitionAndLogs(t *testing.T) {
	repo := newMemArtifactRepo()
	log := &memReviewLog{}
	sched := NewScheduler(repo, log)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	seedArtifact(t, repo, "card-1", now)

	rs, err := sched.RecordAnswer(context.Background(), "anon:s", "card-1", true, now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rs.Repetitions != 1 || rs.IntervalDays != 1 {
		t.Errorf("state = %+v", rs)
	}

	stored, err := repo.Get(context.Background(), "card-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Review.Repetitions != 1 || stored.Review.Version != 1 {
		t.Errorf("stored review = %+v", stored.Review)
	}

	log.mu.Lock()
	defer log.mu.Unlock()
	if len(log.events) != 1 {
		t.Fatalf("logged %d events, want 1", len(log.events))
	}
	ev := log.events[0]
	if ev.ArtifactID != "card-1" || !ev.Correct || ev.Day != "2025-06-01" {
		t.Errorf("event = %+v", ev)
	}
}

func TestRecordAnswerSurvivesLogFailure(t *testing.T) {
	repo := newMemArtifactRepo()
	log := &memReviewLog{failErr: errors.New("disk full")}
	sched := NewScheduler(repo, log)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	seedArtifact(t, repo, "card-1", now)

	// The transition commits before the log append; a failed append must
	// still report the applied state to the caller.
	rs, err := sched.RecordAnswer(context.Background(), "anon:s", "card-1", true, now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rs.Repetitions != 1 || rs.Version != 1 {
		t.Errorf("state = %+v, want applied transition", rs)
	}

	stored, err := repo.Get(context.Background(), "card-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Review.Repetitions != 1 || stored.Review.Version != 1 {
		t.Errorf("stored review = %+v", stored.Review)
	}
}

func TestRecordAnswerUnknownArtifact(t *testing.T) {
	sched := NewScheduler(newMemArtifactRepo(), &memReviewLog{})

	_, err := sched.RecordAnswer(context.Background(), "anon:s", "ghost", true, time.Now())
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordAnswerGivesUpAfterRetries(t *testing.T) {
	repo := newMemArtifactRepo()
	sched := NewScheduler(repo, &memReviewLog{})
	now := time.Now()
	seedArtifact(t, repo, "card-1", now)
	repo.forceConflicts = true

	_, err := sched.RecordAnswer(context.Background(), "anon:s", "card-1", true, now)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestConcurrentAnswersNeverInterleave(t *testing.T) {
	repo := newMemArtifactRepo()
	log := &memReviewLog{}
	sched := NewScheduler(repo, log)
	now := time.Now()
	seedArtifact(t, repo, "card-1", now)

	// Mixed correctness from many goroutines. Every applied transition
	// must be a full Advance step from some previously-committed state.
	const callers = 10
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		correct := i%2 == 0
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := sched.RecordAnswer(context.Background(), "anon:s", "card-1", correct, now)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	applied := 0
	for err := range errs {
		switch {
		case err == nil:
			applied++
		case errors.Is(err, ErrUnavailable):
			// Losing the race past the retry budget is acceptable.
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stored, err := repo.Get(context.Background(), "card-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Review.Version != int64(applied) {
		t.Errorf("version = %d, want %d (one bump per applied answer)", stored.Review.Version, applied)
	}
	// An interleaved mix would break the lapse accounting: lapses can
	// only grow by exactly one per applied incorrect answer.
	if stored.Review.Lapses < 0 || stored.Review.Lapses > applied {
		t.Errorf("lapses = %d out of range for %d applied answers", stored.Review.Lapses, applied)
	}
}

func TestDueDelegatesWithOrdering(t *testing.T) {
	repo := newMemArtifactRepo()
	sched := NewScheduler(repo, &memReviewLog{})
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// Same dueAt for b and c exercises the ID tie-break.
	for _, spec := range []struct {
		id  string
		due time.Time
	}{
		{"c", now.Add(-1 * time.Hour)},
		{"b", now.Add(-1 * time.Hour)},
		{"a", now.Add(-2 * time.Hour)},
		{"later", now.Add(time.Hour)},
	} {
		seedArtifact(t, repo, spec.id, now)
		repo.mu.Lock()
		repo.artifacts[spec.id].Review.DueAt = spec.due
		repo.mu.Unlock()
	}

	due, err := sched.Due(context.Background(), now, 0)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	var ids []string
	for _, a := range due {
		ids = append(ids, a.ID)
	}
	want := []string{"a", "b", "c"}
	if len(ids) != len(want) {
		t.Fatalf("due ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("due ids = %v, want %v", ids, want)
		}
	}
}
