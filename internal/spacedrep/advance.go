// Package spacedrep schedules artifact reviews with an SM-2 style
// expanding-interval algorithm driven by binary correct/incorrect feedback.
package spacedrep

import (
	"time"

	"github.com/abhisek/mindmorph/internal/artifact"
)

// hoursPerDay converts fractional interval days into a duration.
const hoursPerDay = 24

// Advance computes the next review state from the prior state and one
// answer. Pure function; the caller persists the result.
//
// Correct: repetitions increments and the interval expands (1 day, then
// 6 days, then previous interval times the ease factor, capped at
// artifact.MaxIntervalDays). The ease factor does not change on correct
// answers since feedback is binary.
// Incorrect: repetitions resets, the item comes back tomorrow, the ease
// factor drops by 0.2 with a floor of 1.3, and the lapse is counted.
func Advance(prev artifact.ReviewState, correct bool, now time.Time) artifact.ReviewState {
	next := prev

	if correct {
		next.Repetitions = prev.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = artifact.FirstInterval
		case 2:
			next.IntervalDays = artifact.SecondInterval
		default:
			next.IntervalDays = prev.IntervalDays * prev.EaseFactor
		}
	} else {
		next.Repetitions = 0
		next.IntervalDays = artifact.FirstInterval
		next.EaseFactor = prev.EaseFactor - artifact.EasePenalty
		if next.EaseFactor < artifact.MinEase {
			next.EaseFactor = artifact.MinEase
		}
		next.Lapses = prev.Lapses + 1
	}

	// The cap keeps the day-to-duration conversion below the int64
	// nanosecond limit, so dueAt can never wrap into the past.
	if next.IntervalDays > artifact.MaxIntervalDays {
		next.IntervalDays = artifact.MaxIntervalDays
	}

	next.DueAt = now.Add(time.Duration(next.IntervalDays * hoursPerDay * float64(time.Hour)))
	reviewed := now
	next.LastReviewedAt = &reviewed
	return next
}
