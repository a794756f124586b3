// Package studygen turns extracted study text into study items using an LLM
// provider with JSON-schema structured output. Each generation call is one
// pipeline stage; all outputs are structurally validated before use.
package studygen

import "github.com/abhisek/mindmorph/internal/artifact"

// Concept is one key idea pulled out of the source material. Concepts carry
// the category labels every later stage must reuse; no stage may invent its
// own labels.
type Concept struct {
	// Name is the short topic label, e.g. "Supervised Learning".
	Name string

	// Summary is a one-or-two sentence recap of the concept, used as
	// grounding context in the item-generation prompts.
	Summary string

	// Difficulty is the LLM's assessment of how hard the concept is.
	Difficulty artifact.Difficulty

	// Segment is the index of the source segment the concept came from.
	// Concepts are ordered by segment, preserving input order.
	Segment int
}

// Card is a generated flashcard.
type Card struct {
	Question   string
	Answer     string
	Concept    string // must match a Concept.Name
	Difficulty artifact.Difficulty
}

// MCQ is a generated multiple-choice question.
type MCQ struct {
	Question     string
	Options      []string // ordered, 2-6 entries
	CorrectIndex int
	Concept      string
	Difficulty   artifact.Difficulty
}

// FIB is a generated fill-in-the-blank item. The sentence contains exactly
// one blank marker.
type FIB struct {
	Sentence   string
	Answer     string
	Concept    string
	Difficulty artifact.Difficulty
}

// BlankMarker is the placeholder the blanked word is replaced with.
const BlankMarker = "_____"
