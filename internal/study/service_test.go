package study

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/mindmorph/internal/artifact"
	"github.com/abhisek/mindmorph/internal/content"
	"github.com/abhisek/mindmorph/internal/entitlement"
	"github.com/abhisek/mindmorph/internal/llm"
	"github.com/abhisek/mindmorph/internal/pipeline"
	"github.com/abhisek/mindmorph/internal/progress"
	"github.com/abhisek/mindmorph/internal/spacedrep"
	"github.com/abhisek/mindmorph/internal/store"
	"github.com/abhisek/mindmorph/internal/studygen"
)

// newTestService wires a full Service over an in-memory database and a
// mock provider preloaded with n successful generation rounds.
func newTestService(t *testing.T, rounds int) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	var responses []llm.MockResponse
	for i := 0; i < rounds; i++ {
		responses = append(responses, generationRound()...)
	}
	gen := studygen.New(llm.NewMockProvider(responses...), studygen.DefaultConfig())

	gate := entitlement.NewGate(s.UsageRepo(), entitlement.DefaultQuota)
	runner := pipeline.NewRunner(gen, s.ArtifactRepo(), s.EventRepo())
	scheduler := spacedrep.NewScheduler(s.ArtifactRepo(), s.EventRepo())
	aggregator := progress.NewAggregator(s.ArtifactRepo(), s.EventRepo())

	return New(gate, runner, scheduler, aggregator, s.ArtifactRepo()), s
}

// generationRound is one full set of canned stage responses.
func generationRound() []llm.MockResponse {
	return []llm.MockResponse{
		{Content: json.RawMessage(`{"concepts":[
			{"name":"Cell Division","summary":"How one cell becomes two.","difficulty":"medium","segment":0}
		]}`)},
		{Content: json.RawMessage(`{"cards":[
			{"question":"What process splits one cell into two?","answer":"Mitosis","concept":"Cell Division","difficulty":"medium"}
		]}`)},
		{Content: json.RawMessage(`{"questions":[
			{"question":"Which phase comes first in mitosis?","options":["Prophase","Telophase"],"correct_index":0,"concept":"Cell Division","difficulty":"hard"}
		]}`)},
		{Content: json.RawMessage(`{"items":[
			{"sentence":"Cell division by _____ produces two identical cells.","answer":"mitosis","concept":"Cell Division","difficulty":"easy"}
		]}`)},
	}
}

func submitAndWait(t *testing.T, svc *Service, id entitlement.Identity) *pipeline.Run {
	t.Helper()
	run, err := svc.SubmitContent(context.Background(), id, []string{"Mitosis splits one cell into two."}, content.SourceText)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := run.Wait(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return run
}

func TestSubmitAnswerDashboardFlow(t *testing.T) {
	svc, _ := newTestService(t, 1)
	id := entitlement.Anonymous("session-a")
	now := time.Now().UTC()

	run := submitAndWait(t, svc, id)

	snap, err := svc.PollProgress(run.ID())
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if snap.Status != pipeline.StatusSucceeded || snap.Percent != 100 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.ArtifactCount != 3 {
		t.Fatalf("artifact count = %d, want 3", snap.ArtifactCount)
	}

	// Freshly generated artifacts are all due immediately.
	due, err := svc.DueNow(context.Background(), now.Add(time.Minute), 0)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 3 {
		t.Fatalf("due = %d artifacts, want 3", len(due))
	}

	// Answer one correctly; it leaves the due queue for a day.
	first := due[0]
	rs, err := svc.Answer(context.Background(), id, first.ID, true, now)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if rs.Repetitions != 1 || rs.IntervalDays != 1 {
		t.Errorf("review state = %+v", rs)
	}

	due, err = svc.DueNow(context.Background(), now.Add(time.Minute), 0)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 2 {
		t.Errorf("due after answer = %d, want 2", len(due))
	}

	stats, err := svc.Dashboard(context.Background(), id, now)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stats.TotalArtifacts != 3 || stats.TotalAnswered != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", stats.StreakDays)
	}
}

func TestQuotaExhaustionAcrossSubmits(t *testing.T) {
	svc, _ := newTestService(t, entitlement.DefaultQuota)
	id := entitlement.Anonymous("session-a")

	for i := 0; i < entitlement.DefaultQuota; i++ {
		submitAndWait(t, svc, id)
	}

	_, err := svc.SubmitContent(context.Background(), id, []string{"more text"}, content.SourceText)
	if !errors.Is(err, entitlement.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestEmptySubmissionDoesNotConsumeQuota(t *testing.T) {
	svc, _ := newTestService(t, 1)
	id := entitlement.Anonymous("session-a")

	_, err := svc.SubmitContent(context.Background(), id, []string{"", "  "}, content.SourceText)
	if !errors.Is(err, pipeline.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}

	// The rejected call must not have cost a use.
	left, err := svc.gate.Remaining(context.Background(), id)
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if left != entitlement.DefaultQuota {
		t.Errorf("remaining = %d, want full quota", left)
	}
}

func TestSignUpLiftsQuota(t *testing.T) {
	svc, _ := newTestService(t, entitlement.DefaultQuota+2)
	anon := entitlement.Anonymous("session-a")

	for i := 0; i < entitlement.DefaultQuota; i++ {
		submitAndWait(t, svc, anon)
	}
	if _, err := svc.SubmitContent(context.Background(), anon, []string{"text"}, content.SourceText); !errors.Is(err, entitlement.ErrQuotaExceeded) {
		t.Fatalf("expected quota exhaustion, got %v", err)
	}

	user, err := svc.SignUp(context.Background(), "session-a", "user-1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}

	// Authenticated identity generates freely.
	submitAndWait(t, svc, user)
	submitAndWait(t, svc, user)
}

func TestAnswerUnknownArtifact(t *testing.T) {
	svc, _ := newTestService(t, 0)

	_, err := svc.Answer(context.Background(), entitlement.Anonymous("s"), "ghost", true, time.Now())
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepeatedCorrectAnswersGrowInterval(t *testing.T) {
	svc, _ := newTestService(t, 1)
	id := entitlement.Anonymous("session-a")
	now := time.Now().UTC()

	submitAndWait(t, svc, id)
	due, err := svc.DueNow(context.Background(), now.Add(time.Minute), 1)
	if err != nil || len(due) == 0 {
		t.Fatalf("due: %v (%d)", err, len(due))
	}
	target := due[0].ID

	var prev artifact.ReviewState
	for i := 0; i < 4; i++ {
		rs, err := svc.Answer(context.Background(), id, target, true, now)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if rs.IntervalDays < prev.IntervalDays {
			t.Fatalf("interval shrank: %v after %v", rs.IntervalDays, prev.IntervalDays)
		}
		prev = rs
	}
	if prev.Repetitions != 4 {
		t.Errorf("repetitions = %d, want 4", prev.Repetitions)
	}
}
