package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/mindmorph/ent"
	entreview "github.com/abhisek/mindmorph/ent/reviewevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetIdentity(data.Identity).
		SetArtifactID(data.ArtifactID).
		SetKind(data.Kind).
		SetCorrect(data.Correct).
		SetDay(data.Day).
		SetIntervalDays(data.IntervalDays).
		SetEaseFactor(data.EaseFactor).
		SetRepetitions(data.Repetitions).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewDays(ctx context.Context, identity string) ([]string, error) {
	days, err := r.client.ReviewEvent.Query().
		Where(entreview.Identity(identity)).
		Unique(true).
		Select(entreview.FieldDay).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review days: %w", err)
	}

	// Newest first; days are YYYY-MM-DD so lexical order is date order.
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days, nil
}

func (r *eventRepo) ReviewTotals(ctx context.Context, identity string) (ReviewTotals, error) {
	events, err := r.client.ReviewEvent.Query().
		Where(entreview.Identity(identity)).
		All(ctx)
	if err != nil {
		return ReviewTotals{}, fmt.Errorf("query review totals: %w", err)
	}

	totals := ReviewTotals{ByKind: make(map[string]int)}
	for _, e := range events {
		totals.Total++
		totals.ByKind[e.Kind]++
		if e.Correct {
			totals.Correct++
		}
	}
	return totals, nil
}
