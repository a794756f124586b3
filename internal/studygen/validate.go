package studygen

import (
	"fmt"
	"strings"

	"github.com/abhisek/mindmorph/internal/artifact"
)

// ValidationError reports a structural problem in generated output.
// Schema validation already guarantees shape; these checks enforce the
// cross-field constraints a JSON schema cannot express.
type ValidationError struct {
	Stage   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation: %s", e.Stage, e.Message)
}

const (
	maxQuestionLen = 500
	maxAnswerLen   = 300
)

func validateConcepts(concepts []Concept, segmentCount int) error {
	if len(concepts) == 0 {
		return &ValidationError{Stage: "concept", Message: "no concepts extracted"}
	}
	seen := make(map[string]bool, len(concepts))
	for i, c := range concepts {
		if strings.TrimSpace(c.Name) == "" {
			return &ValidationError{Stage: "concept", Message: fmt.Sprintf("concept %d has empty name", i)}
		}
		if !c.Difficulty.Valid() {
			return &ValidationError{Stage: "concept", Message: fmt.Sprintf("concept %q has invalid difficulty %q", c.Name, c.Difficulty)}
		}
		if c.Segment < 0 || c.Segment >= segmentCount {
			return &ValidationError{Stage: "concept", Message: fmt.Sprintf("concept %q references segment %d of %d", c.Name, c.Segment, segmentCount)}
		}
		if seen[c.Name] {
			return &ValidationError{Stage: "concept", Message: fmt.Sprintf("duplicate concept name %q", c.Name)}
		}
		seen[c.Name] = true
	}
	return nil
}

func conceptSet(concepts []Concept) map[string]bool {
	set := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		set[c.Name] = true
	}
	return set
}

func validateCards(cards []Card, concepts []Concept) error {
	if len(cards) == 0 {
		return &ValidationError{Stage: "flashcard", Message: "no cards generated"}
	}
	known := conceptSet(concepts)
	for i, c := range cards {
		if err := checkItemFields("flashcard", i, c.Question, c.Answer, c.Concept, c.Difficulty, known); err != nil {
			return err
		}
	}
	return nil
}

func validateMCQs(mcqs []MCQ, concepts []Concept) error {
	if len(mcqs) == 0 {
		return &ValidationError{Stage: "mcq", Message: "no questions generated"}
	}
	known := conceptSet(concepts)
	for i, q := range mcqs {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return &ValidationError{Stage: "mcq", Message: fmt.Sprintf("question %d correct_index %d out of range for %d options", i, q.CorrectIndex, len(q.Options))}
		}
		if len(q.Options) < 2 || len(q.Options) > 6 {
			return &ValidationError{Stage: "mcq", Message: fmt.Sprintf("question %d has %d options, want 2-6", i, len(q.Options))}
		}
		opts := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if strings.TrimSpace(o) == "" {
				return &ValidationError{Stage: "mcq", Message: fmt.Sprintf("question %d has an empty option", i)}
			}
			if opts[o] {
				return &ValidationError{Stage: "mcq", Message: fmt.Sprintf("question %d has duplicate option %q", i, o)}
			}
			opts[o] = true
		}
		if err := checkItemFields("mcq", i, q.Question, q.Options[q.CorrectIndex], q.Concept, q.Difficulty, known); err != nil {
			return err
		}
	}
	return nil
}

func validateFIBs(fibs []FIB, concepts []Concept) error {
	if len(fibs) == 0 {
		return &ValidationError{Stage: "fill-in-blank", Message: "no items generated"}
	}
	known := conceptSet(concepts)
	for i, f := range fibs {
		if strings.Count(f.Sentence, BlankMarker) != 1 {
			return &ValidationError{Stage: "fill-in-blank", Message: fmt.Sprintf("item %d must contain exactly one %s marker", i, BlankMarker)}
		}
		if err := checkItemFields("fill-in-blank", i, f.Sentence, f.Answer, f.Concept, f.Difficulty, known); err != nil {
			return err
		}
	}
	return nil
}

func checkItemFields(stage string, idx int, question, answer, concept string, diff artifact.Difficulty, known map[string]bool) error {
	if strings.TrimSpace(question) == "" {
		return &ValidationError{Stage: stage, Message: fmt.Sprintf("item %d has empty question", idx)}
	}
	if len(question) > maxQuestionLen {
		return &ValidationError{Stage: stage, Message: fmt.Sprintf("item %d question exceeds %d characters", idx, maxQuestionLen)}
	}
	if strings.TrimSpace(answer) == "" {
		return &ValidationError{Stage: stage, Message: fmt.Sprintf("item %d has empty answer", idx)}
	}
	if len(answer) > maxAnswerLen {
		return &ValidationError{Stage: stage, Message: fmt.Sprintf("item %d answer exceeds %d characters", idx, maxAnswerLen)}
	}
	if !known[concept] {
		return &ValidationError{Stage: stage, Message: fmt.Sprintf("item %d references unknown concept %q", idx, concept)}
	}
	if !diff.Valid() {
		return &ValidationError{Stage: stage, Message: fmt.Sprintf("item %d has invalid difficulty %q", idx, diff)}
	}
	return nil
}
