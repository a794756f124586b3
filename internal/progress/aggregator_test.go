package progress

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/mindmorph/internal/store"
)

type fakeCounter struct {
	counts store.DashboardCounts
}

func (f *fakeCounter) Counts(_ context.Context, _ time.Time) (store.DashboardCounts, error) {
	return f.counts, nil
}

type fakeReviews struct {
	days   []string
	totals store.ReviewTotals
}

func (f *fakeReviews) ReviewDays(_ context.Context, _ string) ([]string, error) {
	return f.days, nil
}

func (f *fakeReviews) ReviewTotals(_ context.Context, _ string) (store.ReviewTotals, error) {
	return f.totals, nil
}

var testNow = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

func TestSummarizeEmptyStore(t *testing.T) {
	agg := NewAggregator(&fakeCounter{}, &fakeReviews{})

	stats, err := agg.Summarize(context.Background(), "anon:s", testNow)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if stats.MasteryPercentage != 0 {
		t.Errorf("mastery = %d, want 0 with no artifacts", stats.MasteryPercentage)
	}
	if stats.StreakDays != 0 || len(stats.Badges) != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSummarizeMasteryRounding(t *testing.T) {
	agg := NewAggregator(
		&fakeCounter{counts: store.DashboardCounts{Total: 3, Mastered: 1}},
		&fakeReviews{},
	)

	stats, err := agg.Summarize(context.Background(), "anon:s", testNow)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	// 1/3 rounds to 33.
	if stats.MasteryPercentage != 33 {
		t.Errorf("mastery = %d, want 33", stats.MasteryPercentage)
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	cases := []struct {
		name string
		days []string
		want int
	}{
		{"no reviews", nil, 0},
		{"today only", []string{"2025-06-10"}, 1},
		{"three consecutive ending today", []string{"2025-06-10", "2025-06-09", "2025-06-08"}, 3},
		{"gap breaks streak", []string{"2025-06-10", "2025-06-08", "2025-06-07"}, 1},
		{"alive from yesterday", []string{"2025-06-09", "2025-06-08"}, 2},
		{"dead after a missed day", []string{"2025-06-08", "2025-06-07"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := streakDays(tc.days, testNow); got != tc.want {
				t.Errorf("streak = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBadgeThresholds(t *testing.T) {
	cases := []struct {
		name string
		m    Metrics
		want []string
	}{
		{"nothing earned", Metrics{TotalAnswered: 99, StreakDays: 4}, nil},
		{"flashcard champ at 100", Metrics{TotalAnswered: 100}, []string{"flashcard_champ"}},
		{
			"quiz master at 50 MCQs",
			Metrics{TotalAnswered: 50, AnsweredByKind: map[string]int{"multiple_choice": 50}},
			[]string{"quiz_master"},
		},
		{"streak slayer at 5 days", Metrics{StreakDays: 5}, []string{"streak_slayer"}},
		{"memory master at 25 mastered", Metrics{MasteredCount: 25}, []string{"memory_master"}},
		{
			"all three",
			Metrics{TotalAnswered: 150, AnsweredByKind: map[string]int{"multiple_choice": 60}, StreakDays: 9},
			[]string{"flashcard_champ", "quiz_master", "streak_slayer"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := evaluate(DefaultBadges, tc.m)
			if len(got) != len(tc.want) {
				t.Fatalf("badges = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("badges = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestSummarizeEarnsBadgesFromLog(t *testing.T) {
	agg := NewAggregator(
		&fakeCounter{counts: store.DashboardCounts{Total: 10, Mastered: 5}},
		&fakeReviews{
			days: []string{"2025-06-10", "2025-06-09", "2025-06-08", "2025-06-07", "2025-06-06"},
			totals: store.ReviewTotals{
				Total:  120,
				ByKind: map[string]int{"flashcard": 70, "multiple_choice": 50},
			},
		},
	)

	stats, err := agg.Summarize(context.Background(), "anon:s", testNow)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	want := []string{"flashcard_champ", "quiz_master", "streak_slayer"}
	if len(stats.Badges) != len(want) {
		t.Fatalf("badges = %v, want %v", stats.Badges, want)
	}
	if stats.MasteryPercentage != 50 || stats.StreakDays != 5 {
		t.Errorf("stats = %+v", stats)
	}
}
