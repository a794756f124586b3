package artifact

import "time"

// Kind identifies the variant of a study artifact.
type Kind string

const (
	KindFlashcard      Kind = "flashcard"
	KindMultipleChoice Kind = "multiple_choice"
	KindFillInBlank    Kind = "fill_in_blank"
)

// Kinds lists all artifact kinds in pipeline stage order.
var Kinds = []Kind{KindFlashcard, KindMultipleChoice, KindFillInBlank}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindFlashcard, KindMultipleChoice, KindFillInBlank:
		return true
	}
	return false
}

// Difficulty is the closed difficulty scale for generated artifacts.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Artifact is one generated study item. The payload is immutable after the
// pipeline commits it; only Review changes, and only through the scheduler.
type Artifact struct {
	ID         string
	Kind       Kind
	Question   string // for fill-in-blank, the sentence containing the blank
	Answer     string
	Options    []string // multiple_choice only, ordered, 2-6 entries
	CorrectIdx int      // multiple_choice only
	Category   string   // free-text topic label from concept extraction
	Difficulty Difficulty
	SourceUnit string // ContentUnit ID this artifact came from
	BatchOrder int
	CreatedAt  time.Time

	Review ReviewState
}
