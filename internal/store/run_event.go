package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPipelineRun(ctx context.Context, data PipelineRunEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PipelineRunEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetContentUnitID(data.ContentUnitID).
		SetIdentity(data.Identity).
		SetSourceKind(data.SourceKind).
		SetStatus(data.Status).
		SetFailedStage(data.FailedStage).
		SetErrorMessage(data.ErrorMessage).
		SetArtifactCount(data.ArtifactCount).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save pipeline run event: %w", err)
	}
	return nil
}
