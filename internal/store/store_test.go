package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/mindmorph/internal/artifact"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testArtifact(id string, due time.Time) *artifact.Artifact {
	return &artifact.Artifact{
		ID:         id,
		Kind:       artifact.KindFlashcard,
		Question:   "What is spaced repetition?",
		Answer:     "Reviewing at growing intervals.",
		Category:   "Learning Science",
		Difficulty: artifact.DifficultyMedium,
		SourceUnit: "unit-1",
		CreatedAt:  due,
		Review: artifact.ReviewState{
			EaseFactor: artifact.InitialEase,
			DueAt:      due,
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSaveBatchAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ArtifactRepo()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	batch := []*artifact.Artifact{
		testArtifact("a-1", now),
		testArtifact("a-2", now),
	}
	if err := repo.SaveBatch(ctx, batch); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	got, err := repo.Get(ctx, "a-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Question != "What is spaced repetition?" {
		t.Errorf("question = %q", got.Question)
	}
	if got.Review.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0", got.Review.Repetitions)
	}
	if !got.Review.DueAt.Equal(now) {
		t.Errorf("dueAt = %v, want %v", got.Review.DueAt, now)
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.ArtifactRepo().Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveBatchRejectsEmpty(t *testing.T) {
	s := openTestStore(t)
	if err := s.ArtifactRepo().SaveBatch(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestDueOrderingAndTieBreak(t *testing.T) {
	s := openTestStore(t)
	repo := s.ArtifactRepo()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// b and c share a due time; a is most overdue; d is not yet due.
	a := testArtifact("a", now.Add(-48*time.Hour))
	b := testArtifact("b", now.Add(-1*time.Hour))
	c := testArtifact("c", now.Add(-1*time.Hour))
	d := testArtifact("d", now.Add(time.Hour))
	if err := repo.SaveBatch(ctx, []*artifact.Artifact{d, c, b, a}); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	due, err := repo.Due(ctx, now, 0)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	var ids []string
	for _, art := range due {
		ids = append(ids, art.ID)
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

	// Limit applies after ordering.
	due, err = repo.Due(ctx, now, 2)
	if err != nil {
		t.Fatalf("due limited: %v", err)
	}
	if len(due) != 2 || due[0].ID != "a" || due[1].ID != "b" {
		t.Fatalf("limited due = %v", due)
	}
}

func TestUpdateReviewVersionGuard(t *testing.T) {
	s := openTestStore(t)
	repo := s.ArtifactRepo()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := repo.SaveBatch(ctx, []*artifact.Artifact{testArtifact("a-1", now)}); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	reviewed := now.Add(time.Minute)
	rs := artifact.ReviewState{
		IntervalDays:   1,
		EaseFactor:     artifact.InitialEase,
		Repetitions:    1,
		DueAt:          reviewed.Add(24 * time.Hour),
		LastReviewedAt: &reviewed,
	}

	if err := repo.UpdateReview(ctx, "a-1", 0, rs); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// Same prior version again: the guard must reject it.
	err := repo.UpdateReview(ctx, "a-1", 0, rs)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Unknown artifact is NotFound, not a conflict.
	err = repo.UpdateReview(ctx, "ghost", 0, rs)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, err := repo.Get(ctx, "a-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Review.Version != 1 {
		t.Errorf("version = %d, want 1", got.Review.Version)
	}
	if got.Review.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", got.Review.Repetitions)
	}
}

func TestUsageConsumeAtomicity(t *testing.T) {
	s := openTestStore(t)
	repo := s.UsageRepo()
	ctx := context.Background()

	if err := repo.Ensure(ctx, "anon:s1", "anonymous", 3); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	for i := 1; i <= 3; i++ {
		used, allowed, err := repo.Consume(ctx, "anon:s1")
		if err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
		if !allowed {
			t.Fatalf("consume %d: expected allowed", i)
		}
		if used != i {
			t.Errorf("consume %d: used = %d", i, used)
		}
	}

	// Fourth call is denied and mutates nothing, repeatedly.
	for i := 0; i < 2; i++ {
		used, allowed, err := repo.Consume(ctx, "anon:s1")
		if err != nil {
			t.Fatalf("denied consume: %v", err)
		}
		if allowed {
			t.Fatal("expected denial past quota")
		}
		if used != 3 {
			t.Errorf("used = %d, want 3", used)
		}
	}
}

func TestUsageUnlimitedQuota(t *testing.T) {
	s := openTestStore(t)
	repo := s.UsageRepo()
	ctx := context.Background()

	if err := repo.Ensure(ctx, "user:u1", "authenticated", -1); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	for i := 0; i < 10; i++ {
		_, allowed, err := repo.Consume(ctx, "user:u1")
		if err != nil {
			t.Fatalf("consume: %v", err)
		}
		if !allowed {
			t.Fatal("unlimited quota must never deny")
		}
	}
}

func TestUsageMigrateCarriesCounter(t *testing.T) {
	s := openTestStore(t)
	repo := s.UsageRepo()
	ctx := context.Background()

	if err := repo.Ensure(ctx, "anon:s1", "anonymous", 3); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, _, err := repo.Consume(ctx, "anon:s1"); err != nil {
			t.Fatalf("consume: %v", err)
		}
	}

	if err := repo.Migrate(ctx, "anon:s1", "user:u1"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	rec, err := repo.Get(ctx, "user:u1")
	if err != nil {
		t.Fatalf("get migrated: %v", err)
	}
	if rec.UsedCount != 2 {
		t.Errorf("used = %d, want 2", rec.UsedCount)
	}
	if rec.Quota != -1 {
		t.Errorf("quota = %d, want -1", rec.Quota)
	}

	if _, err := repo.Get(ctx, "anon:s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected anonymous record removed, got %v", err)
	}

	// Migrating an identity with no record is a no-op.
	if err := repo.Migrate(ctx, "anon:ghost", "user:u1"); err != nil {
		t.Fatalf("migrate missing: %v", err)
	}
}

func TestReviewLogDaysAndTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []ReviewEventData{
		{Identity: "anon:s1", ArtifactID: "a", Kind: "flashcard", Correct: true, Day: "2026-03-01", IntervalDays: 1, EaseFactor: 2.5, Repetitions: 1},
		{Identity: "anon:s1", ArtifactID: "b", Kind: "multiple_choice", Correct: false, Day: "2026-03-01", IntervalDays: 1, EaseFactor: 2.3, Repetitions: 0},
		{Identity: "anon:s1", ArtifactID: "a", Kind: "flashcard", Correct: true, Day: "2026-03-02", IntervalDays: 6, EaseFactor: 2.5, Repetitions: 2},
		{Identity: "anon:other", ArtifactID: "z", Kind: "flashcard", Correct: true, Day: "2026-02-14", IntervalDays: 1, EaseFactor: 2.5, Repetitions: 1},
	}
	for _, e := range events {
		if err := repo.AppendReview(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	days, err := repo.ReviewDays(ctx, "anon:s1")
	if err != nil {
		t.Fatalf("review days: %v", err)
	}
	if len(days) != 2 || days[0] != "2026-03-02" || days[1] != "2026-03-01" {
		t.Fatalf("days = %v", days)
	}

	totals, err := repo.ReviewTotals(ctx, "anon:s1")
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Total != 3 || totals.Correct != 2 {
		t.Errorf("totals = %+v", totals)
	}
	if totals.ByKind["flashcard"] != 2 || totals.ByKind["multiple_choice"] != 1 {
		t.Errorf("byKind = %v", totals.ByKind)
	}
}

func TestSequenceOrdersAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "concept-extract", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendPipelineRun(ctx, PipelineRunEventData{
		RunID: "r1", ContentUnitID: "u1", Identity: "anon:s1",
		SourceKind: "text", Status: "succeeded", ArtifactCount: 4,
	}); err != nil {
		t.Fatalf("append run: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Sequence >= 2 {
		t.Errorf("llm event sequence = %d, want first of the two", events[0].Sequence)
	}
}
