package spacedrep

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/mindmorph/internal/artifact"
	"github.com/abhisek/mindmorph/internal/store"
)

// maxConflictRetries bounds the compare-and-set retry loop before the
// scheduler gives up and surfaces ErrUnavailable.
const maxConflictRetries = 5

// ErrUnavailable is returned when an update keeps losing the version race
// past the retry budget. Callers may resubmit the answer.
var ErrUnavailable = errors.New("review update contended, try again")

// ReviewLogger appends answers to the review log.
type ReviewLogger interface {
	AppendReview(ctx context.Context, data store.ReviewEventData) error
}

// Scheduler applies review answers and serves due queries. Concurrent
// answers for the same artifact serialize through an optimistic version
// check on the stored review state.
type Scheduler struct {
	artifacts store.ArtifactRepo
	events    ReviewLogger
}

// NewScheduler creates a Scheduler over the given repos.
func NewScheduler(artifacts store.ArtifactRepo, events ReviewLogger) *Scheduler {
	return &Scheduler{artifacts: artifacts, events: events}
}

// RecordAnswer applies one answer to an artifact's review state and returns
// the updated state. The transition is atomic: a concurrent update on the
// same artifact causes a reread and retry, never a partially-applied mix.
// Returns store.ErrNotFound for unknown artifacts.
func (s *Scheduler) RecordAnswer(ctx context.Context, identity, artifactID string, correct bool, now time.Time) (artifact.ReviewState, error) {
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		a, err := s.artifacts.Get(ctx, artifactID)
		if err != nil {
			return artifact.ReviewState{}, err
		}

		next := Advance(a.Review, correct, now)
		err = s.artifacts.UpdateReview(ctx, artifactID, a.Review.Version, next)
		if errors.Is(err, store.ErrConflict) {
			continue
		}
		if err != nil {
			return artifact.ReviewState{}, err
		}
		next.Version = a.Review.Version + 1

		// The log write is outside the guarded update and best effort:
		// the transition is already committed, and the log only feeds
		// stats. A failed append must not mask the applied answer.
		_ = s.events.AppendReview(ctx, store.ReviewEventData{
			Identity:     identity,
			ArtifactID:   artifactID,
			Kind:         string(a.Kind),
			Correct:      correct,
			Day:          now.UTC().Format(time.DateOnly),
			IntervalDays: next.IntervalDays,
			EaseFactor:   next.EaseFactor,
			Repetitions:  next.Repetitions,
		})
		return next, nil
	}
	return artifact.ReviewState{}, ErrUnavailable
}

// Due returns artifacts with dueAt at or before now, most overdue first,
// ties broken by artifact ID. limit <= 0 means no limit. Repeated calls
// with the same now return the same sequence unless state changed.
func (s *Scheduler) Due(ctx context.Context, now time.Time, limit int) ([]*artifact.Artifact, error) {
	return s.artifacts.Due(ctx, now, limit)
}
