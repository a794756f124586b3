// Package progress derives dashboard statistics from the artifact store and
// the review log. Pure read side; nothing here mutates state.
package progress

import (
	"context"
	"math"
	"time"

	"github.com/abhisek/mindmorph/internal/store"
)

// Stats is the dashboard summary for one identity.
type Stats struct {
	MasteryPercentage int // mastered / total, rounded; 0 with no artifacts
	StreakDays        int
	DueToday          int
	DueTomorrow       int
	NewCount          int
	TotalArtifacts    int
	TotalAnswered     int
	Badges            []string // earned badge IDs, table order
}

// ReviewReader is the slice of the event repo the aggregator needs.
type ReviewReader interface {
	ReviewDays(ctx context.Context, identity string) ([]string, error)
	ReviewTotals(ctx context.Context, identity string) (store.ReviewTotals, error)
}

// ArtifactCounter derives the artifact-side dashboard counters.
type ArtifactCounter interface {
	Counts(ctx context.Context, now time.Time) (store.DashboardCounts, error)
}

// Aggregator computes Stats on demand.
type Aggregator struct {
	artifacts ArtifactCounter
	reviews   ReviewReader
	badges    []BadgeRule
}

// NewAggregator creates an Aggregator with the default badge table.
func NewAggregator(artifacts ArtifactCounter, reviews ReviewReader) *Aggregator {
	return &Aggregator{artifacts: artifacts, reviews: reviews, badges: DefaultBadges}
}

// WithBadges replaces the badge threshold table.
func (g *Aggregator) WithBadges(rules []BadgeRule) *Aggregator {
	g.badges = rules
	return g
}

// Summarize computes the dashboard stats for an identity at the given time.
func (g *Aggregator) Summarize(ctx context.Context, identity string, now time.Time) (Stats, error) {
	counts, err := g.artifacts.Counts(ctx, now)
	if err != nil {
		return Stats{}, err
	}
	days, err := g.reviews.ReviewDays(ctx, identity)
	if err != nil {
		return Stats{}, err
	}
	totals, err := g.reviews.ReviewTotals(ctx, identity)
	if err != nil {
		return Stats{}, err
	}

	streak := streakDays(days, now)

	mastery := 0
	if counts.Total > 0 {
		mastery = int(math.Round(float64(counts.Mastered) / float64(counts.Total) * 100))
	}

	metrics := Metrics{
		TotalAnswered:  totals.Total,
		AnsweredByKind: totals.ByKind,
		StreakDays:     streak,
		MasteredCount:  counts.Mastered,
		TotalArtifacts: counts.Total,
	}

	return Stats{
		MasteryPercentage: mastery,
		StreakDays:        streak,
		DueToday:          counts.DueToday,
		DueTomorrow:       counts.DueTomorrow,
		NewCount:          counts.New,
		TotalArtifacts:    counts.Total,
		TotalAnswered:     totals.Total,
		Badges:            evaluate(g.badges, metrics),
	}, nil
}

// streakDays counts consecutive review days ending today or yesterday
// (a streak survives until a full calendar day passes with no reviews).
// days must be YYYY-MM-DD strings, newest first.
func streakDays(days []string, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(days))
	for _, d := range days {
		seen[d] = true
	}

	day := now.UTC().Truncate(24 * time.Hour)
	today := day.Format(time.DateOnly)
	if !seen[today] {
		// No review yet today; the streak may still be alive from
		// yesterday.
		day = day.AddDate(0, 0, -1)
		if !seen[day.Format(time.DateOnly)] {
			return 0
		}
	}

	streak := 0
	for seen[day.Format(time.DateOnly)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
