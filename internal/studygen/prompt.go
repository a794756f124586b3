package studygen

import (
	"fmt"
	"strings"
)

const conceptSystemPrompt = `You are a study coach turning raw learning material into a concept map.

Rules:
- Extract the key concepts a learner must retain from the given segments.
- Each concept gets a short name, a one-or-two sentence summary, and a difficulty rating.
- Report the zero-based index of the segment each concept came from.
- Order concepts by segment index, then by where they appear within the segment.
- Use plain ASCII text. Keep names under 60 characters.
- Do not invent concepts that are not supported by the material.`

const flashcardSystemPrompt = `You are a study coach writing flashcards from a concept list.

Rules:
- Every card tests recall of one of the provided concepts.
- The "concept" field must exactly match one of the provided concept names.
- Questions must be answerable from the card alone, without the source text.
- Answers are short and factual. No multi-paragraph answers.
- Use plain ASCII text.`

const mcqSystemPrompt = `You are a study coach writing multiple-choice questions from a concept list.

Rules:
- Every question tests one of the provided concepts.
- The "concept" field must exactly match one of the provided concept names.
- Provide 2 to 6 options with exactly one correct answer; report its zero-based index.
- Distractors should reflect plausible misunderstandings, not random values.
- Use plain ASCII text.`

const fibSystemPrompt = `You are a study coach writing fill-in-the-blank items from a concept list.

Rules:
- Every sentence tests one of the provided concepts.
- The "concept" field must exactly match one of the provided concept names.
- Replace exactly one key term in the sentence with _____ (five underscores).
- The answer is the removed term, and must not appear elsewhere in the sentence.
- Use plain ASCII text.`

// buildConceptMessage formats the source segments for concept extraction.
func buildConceptMessage(segments []string, cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extract at most %d concepts from the following material.\n", cfg.MaxConcepts)
	for i, seg := range segments {
		fmt.Fprintf(&b, "\nSegment %d:\n%s\n", i, clip(seg, cfg.MaxSegmentChars))
	}
	return b.String()
}

// buildItemMessage formats concepts plus source material for one of the
// item-generation stages. The kind label only changes the instruction line.
func buildItemMessage(kind string, concepts []Concept, segments []string, cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write at most %d %s covering the concepts below. Cover every concept at least once if the budget allows.\n", cfg.MaxItemsPerKind, kind)

	b.WriteString("\nConcepts:\n")
	for i, c := range concepts {
		fmt.Fprintf(&b, "%d. %s (%s): %s\n", i+1, c.Name, c.Difficulty, c.Summary)
	}

	b.WriteString("\nSource material:\n")
	for i, seg := range segments {
		fmt.Fprintf(&b, "\nSegment %d:\n%s\n", i, clip(seg, cfg.MaxSegmentChars))
	}
	return b.String()
}

// clip truncates s to max characters, appending a marker when cut. A max of
// zero or less means no limit.
func clip(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "\n[truncated]"
}
