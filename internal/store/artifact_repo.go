package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mindmorph/ent"
	entartifact "github.com/abhisek/mindmorph/ent/artifact"
	"github.com/abhisek/mindmorph/internal/artifact"
)

// artifactRepo implements ArtifactRepo using the ent client.
type artifactRepo struct {
	client *ent.Client
}

func (r *artifactRepo) SaveBatch(ctx context.Context, batch []*artifact.Artifact) error {
	if len(batch) == 0 {
		return fmt.Errorf("save batch: empty batch")
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin batch tx: %w", err)
	}

	builders := make([]*ent.ArtifactCreate, len(batch))
	for i, a := range batch {
		b := tx.Artifact.Create().
			SetArtifactID(a.ID).
			SetKind(string(a.Kind)).
			SetQuestion(a.Question).
			SetAnswer(a.Answer).
			SetCorrectIndex(a.CorrectIdx).
			SetCategory(a.Category).
			SetDifficulty(string(a.Difficulty)).
			SetSourceUnitID(a.SourceUnit).
			SetBatchOrder(a.BatchOrder).
			SetCreatedAt(a.CreatedAt).
			SetIntervalDays(a.Review.IntervalDays).
			SetEaseFactor(a.Review.EaseFactor).
			SetRepetitions(a.Review.Repetitions).
			SetLapses(a.Review.Lapses).
			SetDueAt(a.Review.DueAt).
			SetReviewVersion(a.Review.Version)
		if len(a.Options) > 0 {
			b = b.SetOptions(a.Options)
		}
		if a.Review.LastReviewedAt != nil {
			b = b.SetLastReviewedAt(*a.Review.LastReviewedAt)
		}
		builders[i] = b
	}

	if _, err := tx.Artifact.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save artifact batch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit artifact batch: %w", err)
	}
	return nil
}

func (r *artifactRepo) Get(ctx context.Context, artifactID string) (*artifact.Artifact, error) {
	row, err := r.client.Artifact.Query().
		Where(entartifact.ArtifactID(artifactID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("artifact %s: %w", artifactID, ErrNotFound)
		}
		return nil, fmt.Errorf("query artifact: %w", err)
	}
	return entToArtifact(row), nil
}

func (r *artifactRepo) UpdateReview(ctx context.Context, artifactID string, prevVersion int64, rs artifact.ReviewState) error {
	n, err := r.client.Artifact.Update().
		Where(
			entartifact.ArtifactID(artifactID),
			entartifact.ReviewVersion(prevVersion),
		).
		SetIntervalDays(rs.IntervalDays).
		SetEaseFactor(rs.EaseFactor).
		SetRepetitions(rs.Repetitions).
		SetLapses(rs.Lapses).
		SetDueAt(rs.DueAt).
		SetNillableLastReviewedAt(rs.LastReviewedAt).
		SetReviewVersion(prevVersion + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update review state: %w", err)
	}
	if n > 0 {
		return nil
	}

	// Nothing matched: either the artifact is gone or the version moved.
	exists, err := r.client.Artifact.Query().
		Where(entartifact.ArtifactID(artifactID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check artifact exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("artifact %s: %w", artifactID, ErrNotFound)
	}
	return ErrConflict
}

func (r *artifactRepo) Due(ctx context.Context, now time.Time, limit int) ([]*artifact.Artifact, error) {
	query := r.client.Artifact.Query().
		Where(entartifact.DueAtLTE(now)).
		Order(
			ent.Asc(entartifact.FieldDueAt),
			ent.Asc(entartifact.FieldArtifactID),
		)
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due artifacts: %w", err)
	}

	out := make([]*artifact.Artifact, len(rows))
	for i, row := range rows {
		out[i] = entToArtifact(row)
	}
	return out, nil
}

func (r *artifactRepo) Counts(ctx context.Context, now time.Time) (DashboardCounts, error) {
	var c DashboardCounts
	var err error

	c.Total, err = r.client.Artifact.Query().Count(ctx)
	if err != nil {
		return c, fmt.Errorf("count artifacts: %w", err)
	}

	c.Mastered, err = r.client.Artifact.Query().
		Where(
			entartifact.RepetitionsGTE(2),
			entartifact.Lapses(0),
		).
		Count(ctx)
	if err != nil {
		return c, fmt.Errorf("count mastered: %w", err)
	}

	c.New, err = r.client.Artifact.Query().
		Where(entartifact.LastReviewedAtIsNil()).
		Count(ctx)
	if err != nil {
		return c, fmt.Errorf("count new: %w", err)
	}

	c.DueToday, err = r.client.Artifact.Query().
		Where(entartifact.DueAtLTE(now)).
		Count(ctx)
	if err != nil {
		return c, fmt.Errorf("count due today: %w", err)
	}

	c.DueTomorrow, err = r.client.Artifact.Query().
		Where(
			entartifact.DueAtGT(now),
			entartifact.DueAtLTE(now.Add(24*time.Hour)),
		).
		Count(ctx)
	if err != nil {
		return c, fmt.Errorf("count due tomorrow: %w", err)
	}

	return c, nil
}

func (r *artifactRepo) Purge(ctx context.Context) (int, error) {
	n, err := r.client.Artifact.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge artifacts: %w", err)
	}
	return n, nil
}

// entToArtifact converts an ent row to the domain type.
func entToArtifact(row *ent.Artifact) *artifact.Artifact {
	return &artifact.Artifact{
		ID:         row.ArtifactID,
		Kind:       artifact.Kind(row.Kind),
		Question:   row.Question,
		Answer:     row.Answer,
		Options:    row.Options,
		CorrectIdx: row.CorrectIndex,
		Category:   row.Category,
		Difficulty: artifact.Difficulty(row.Difficulty),
		SourceUnit: row.SourceUnitID,
		BatchOrder: row.BatchOrder,
		CreatedAt:  row.CreatedAt,
		Review: artifact.ReviewState{
			IntervalDays:   row.IntervalDays,
			EaseFactor:     row.EaseFactor,
			Repetitions:    row.Repetitions,
			Lapses:         row.Lapses,
			DueAt:          row.DueAt,
			LastReviewedAt: row.LastReviewedAt,
			Version:        row.ReviewVersion,
		},
	}
}
