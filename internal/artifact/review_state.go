package artifact

import "time"

// Review scheduling constants (SM-2 variant with binary feedback).
const (
	// InitialEase is the ease factor assigned to new artifacts.
	InitialEase = 2.5

	// MinEase is the floor the ease factor can never drop below.
	MinEase = 1.3

	// EasePenalty is subtracted from the ease factor on a lapse.
	EasePenalty = 0.2

	// FirstInterval and SecondInterval are the fixed intervals (in days)
	// for the first two successful repetitions.
	FirstInterval  = 1.0
	SecondInterval = 6.0

	// MaxIntervalDays caps the expanding interval at one hundred years.
	// Uncapped, the ease recurrence exceeds the representable duration
	// range after roughly a dozen consecutive correct answers.
	MaxIntervalDays = 36500.0
)

// ReviewState is the spaced repetition state attached to every artifact.
// DueAt always equals LastReviewedAt + IntervalDays; a never-reviewed
// artifact is due immediately.
type ReviewState struct {
	IntervalDays   float64
	EaseFactor     float64
	Repetitions    int
	Lapses         int
	DueAt          time.Time
	LastReviewedAt *time.Time

	// Version guards concurrent updates. It is bumped by the store on every
	// committed review and compared on write.
	Version int64
}

// NewReviewState returns the state for a freshly generated artifact:
// due now, zero repetitions, initial ease.
func NewReviewState(now time.Time) ReviewState {
	return ReviewState{
		EaseFactor: InitialEase,
		DueAt:      now,
	}
}

// IsDue reports whether the artifact is due at or before now.
func (rs ReviewState) IsDue(now time.Time) bool {
	return !rs.DueAt.After(now)
}

// OverdueDays returns how many days past due the artifact is, 0 if not due.
func (rs ReviewState) OverdueDays(now time.Time) float64 {
	if now.Before(rs.DueAt) {
		return 0
	}
	return now.Sub(rs.DueAt).Hours() / 24.0
}

// Mastered reports whether this artifact counts toward the mastery
// percentage: at least two successful repetitions and no lapses.
func (rs ReviewState) Mastered() bool {
	return rs.Repetitions >= 2 && rs.Lapses == 0
}
