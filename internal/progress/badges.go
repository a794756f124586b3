package progress

import "github.com/abhisek/mindmorph/internal/artifact"

// BadgeRule awards a badge when its predicate holds over the aggregated
// metrics. Rules are data; Summarize never special-cases a badge by name.
type BadgeRule struct {
	ID        string
	Name      string
	Predicate func(m Metrics) bool
}

// Metrics is the input to badge predicates: everything Summarize derives
// before badge evaluation.
type Metrics struct {
	TotalAnswered  int            // all answers ever logged
	AnsweredByKind map[string]int // answers per artifact kind
	StreakDays     int
	MasteredCount  int
	TotalArtifacts int
}

// DefaultBadges is the built-in threshold table.
var DefaultBadges = []BadgeRule{
	{
		ID:   "flashcard_champ",
		Name: "Flashcard Champ",
		Predicate: func(m Metrics) bool {
			return m.TotalAnswered >= 100
		},
	},
	{
		ID:   "quiz_master",
		Name: "Quiz Master",
		Predicate: func(m Metrics) bool {
			return m.AnsweredByKind[string(artifact.KindMultipleChoice)] >= 50
		},
	},
	{
		ID:   "streak_slayer",
		Name: "Streak Slayer",
		Predicate: func(m Metrics) bool {
			return m.StreakDays >= 5
		},
	},
	{
		ID:   "memory_master",
		Name: "Memory Master",
		Predicate: func(m Metrics) bool {
			return m.MasteredCount >= 25
		},
	},
}

// evaluate returns the IDs of all badges whose predicate holds, in table
// order.
func evaluate(rules []BadgeRule, m Metrics) []string {
	var earned []string
	for _, r := range rules {
		if r.Predicate(m) {
			earned = append(earned, r.ID)
		}
	}
	return earned
}
