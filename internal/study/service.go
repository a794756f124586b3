// Package study is the facade the presentation layer talks to: submit
// content for generation, poll pipeline progress, answer reviews, query due
// items, and read the dashboard.
package study

import (
	"context"
	"time"

	"github.com/abhisek/mindmorph/internal/artifact"
	"github.com/abhisek/mindmorph/internal/content"
	"github.com/abhisek/mindmorph/internal/entitlement"
	"github.com/abhisek/mindmorph/internal/pipeline"
	"github.com/abhisek/mindmorph/internal/progress"
	"github.com/abhisek/mindmorph/internal/spacedrep"
	"github.com/abhisek/mindmorph/internal/store"
)

// Service wires the gate, pipeline, scheduler, and aggregator behind the
// external call surface.
type Service struct {
	gate      *entitlement.Gate
	runner    *pipeline.Runner
	scheduler *spacedrep.Scheduler
	progress  *progress.Aggregator
	artifacts store.ArtifactRepo
}

// New assembles a Service from its components.
func New(gate *entitlement.Gate, runner *pipeline.Runner, scheduler *spacedrep.Scheduler, aggregator *progress.Aggregator, artifacts store.ArtifactRepo) *Service {
	return &Service{
		gate:      gate,
		runner:    runner,
		scheduler: scheduler,
		progress:  aggregator,
		artifacts: artifacts,
	}
}

// SubmitContent checks the identity's quota and starts a generation run
// over the given segments. Content is validated before the quota is
// consumed, so a rejected empty submission never costs a use.
// Returns entitlement.ErrQuotaExceeded when the identity is out of quota.
func (s *Service) SubmitContent(ctx context.Context, id entitlement.Identity, segments []string, source content.SourceKind) (*pipeline.Run, error) {
	unit := content.NewUnit(segments, source, time.Now())
	if !unit.HasContent() {
		return nil, pipeline.ErrEmptyContent
	}

	if err := s.gate.CheckAndConsume(ctx, id); err != nil {
		return nil, err
	}

	return s.runner.Submit(ctx, id.Key(), unit)
}

// PollProgress returns the current snapshot for a run. Safe to call
// repeatedly; terminal runs remain pollable from the diagnostics ring.
func (s *Service) PollProgress(runID string) (pipeline.Snapshot, error) {
	return s.runner.Progress(runID)
}

// Answer records one review answer and returns the updated review state.
func (s *Service) Answer(ctx context.Context, id entitlement.Identity, artifactID string, correct bool, now time.Time) (artifact.ReviewState, error) {
	return s.scheduler.RecordAnswer(ctx, id.Key(), artifactID, correct, now)
}

// DueNow returns artifacts due for review, most overdue first.
func (s *Service) DueNow(ctx context.Context, now time.Time, limit int) ([]*artifact.Artifact, error) {
	return s.scheduler.Due(ctx, now, limit)
}

// Dashboard returns the identity's progress summary.
func (s *Service) Dashboard(ctx context.Context, id entitlement.Identity, now time.Time) (progress.Stats, error) {
	return s.progress.Summarize(ctx, id.Key(), now)
}

// SignUp migrates an anonymous session's usage record to an authenticated
// identity and returns the new identity. The consumed counter carries over
// but no longer gates anything, since authenticated quota is unlimited.
func (s *Service) SignUp(ctx context.Context, sessionID, userID string) (entitlement.Identity, error) {
	anon := entitlement.Anonymous(sessionID)
	user := entitlement.Authenticated(userID)
	if err := s.gate.Migrate(ctx, anon, user); err != nil {
		return entitlement.Identity{}, err
	}
	return user, nil
}

// Purge deletes every artifact. Explicit destructive operation for the CLI.
func (s *Service) Purge(ctx context.Context) (int, error) {
	return s.artifacts.Purge(ctx)
}
