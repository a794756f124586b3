package spacedrep

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/mindmorph/internal/artifact"
)

func TestAdvanceScenario(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	rs := artifact.NewReviewState(now)

	if rs.Repetitions != 0 || rs.IntervalDays != 0 || rs.EaseFactor != 2.5 {
		t.Fatalf("fresh state = %+v", rs)
	}

	rs = Advance(rs, true, now)
	if rs.Repetitions != 1 || rs.IntervalDays != 1 || rs.EaseFactor != 2.5 {
		t.Fatalf("after first correct: %+v", rs)
	}

	rs = Advance(rs, true, now)
	if rs.Repetitions != 2 || rs.IntervalDays != 6 || rs.EaseFactor != 2.5 {
		t.Fatalf("after second correct: %+v", rs)
	}

	rs = Advance(rs, false, now)
	if rs.Repetitions != 0 || rs.IntervalDays != 1 {
		t.Fatalf("after incorrect: %+v", rs)
	}
	if math.Abs(rs.EaseFactor-2.3) > 1e-9 {
		t.Errorf("ease = %v, want 2.3", rs.EaseFactor)
	}
	if rs.Lapses != 1 {
		t.Errorf("lapses = %d, want 1", rs.Lapses)
	}
}

func TestAdvanceIntervalGrowsWithEase(t *testing.T) {
	now := time.Now()
	rs := artifact.NewReviewState(now)

	prev := 0.0
	for i := 0; i < 6; i++ {
		rs = Advance(rs, true, now)
		if rs.IntervalDays < prev {
			t.Fatalf("interval shrank on correct answer: %v after %v", rs.IntervalDays, prev)
		}
		prev = rs.IntervalDays
	}
	// Third correct answer onwards multiplies by the ease factor.
	want := 6 * 2.5 * 2.5 * 2.5 * 2.5
	if math.Abs(rs.IntervalDays-want) > 1e-6 {
		t.Errorf("interval after 6 correct = %v, want %v", rs.IntervalDays, want)
	}
}

func TestAdvanceDeepStreakCapsInterval(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rs := artifact.NewReviewState(now)

	// A long run of correct answers grows the interval geometrically.
	// Every step must keep dueAt in the future and the interval under
	// the cap; without the cap the duration conversion wraps negative
	// around the 13th answer.
	for i := 0; i < 30; i++ {
		rs = Advance(rs, true, now)
		if rs.IntervalDays > artifact.MaxIntervalDays {
			t.Fatalf("interval %v exceeds cap after %d correct answers", rs.IntervalDays, i+1)
		}
		if !rs.DueAt.After(now) {
			t.Fatalf("dueAt %v not after now after %d correct answers (interval %v)", rs.DueAt, i+1, rs.IntervalDays)
		}
	}

	if rs.IntervalDays != artifact.MaxIntervalDays {
		t.Errorf("interval = %v, want clamped to %v", rs.IntervalDays, artifact.MaxIntervalDays)
	}
	wantDue := now.Add(time.Duration(artifact.MaxIntervalDays * hoursPerDay * float64(time.Hour)))
	if !rs.DueAt.Equal(wantDue) {
		t.Errorf("dueAt = %v, want %v", rs.DueAt, wantDue)
	}
}

func TestAdvanceEaseFloor(t *testing.T) {
	now := time.Now()
	rs := artifact.NewReviewState(now)

	for i := 0; i < 10; i++ {
		rs = Advance(rs, false, now)
		if rs.EaseFactor < artifact.MinEase {
			t.Fatalf("ease %v below floor after %d lapses", rs.EaseFactor, i+1)
		}
	}
	if rs.EaseFactor != artifact.MinEase {
		t.Errorf("ease = %v, want clamped to %v", rs.EaseFactor, artifact.MinEase)
	}
	if rs.Lapses != 10 {
		t.Errorf("lapses = %d, want 10", rs.Lapses)
	}
}

func TestAdvanceDueAtFractionalDays(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rs := artifact.ReviewState{IntervalDays: 2, EaseFactor: 1.75, Repetitions: 2}

	next := Advance(rs, true, now)
	wantInterval := 2 * 1.75 // 3.5 days
	if math.Abs(next.IntervalDays-wantInterval) > 1e-9 {
		t.Fatalf("interval = %v, want %v", next.IntervalDays, wantInterval)
	}
	wantDue := now.Add(84 * time.Hour)
	if !next.DueAt.Equal(wantDue) {
		t.Errorf("dueAt = %v, want %v", next.DueAt, wantDue)
	}
	if next.LastReviewedAt == nil || !next.LastReviewedAt.Equal(now) {
		t.Errorf("lastReviewedAt = %v, want %v", next.LastReviewedAt, now)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	rs := artifact.NewReviewState(now)
	orig := rs

	_ = Advance(rs, false, now)
	if rs != orig {
		t.Errorf("input state mutated: %+v", rs)
	}
}
