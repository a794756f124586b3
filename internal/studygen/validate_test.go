package studygen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConceptsDuplicateNames(t *testing.T) {
	concepts := []Concept{
		{Name: "Osmosis", Summary: "s", Difficulty: "easy", Segment: 0},
		{Name: "Osmosis", Summary: "s2", Difficulty: "hard", Segment: 0},
	}
	err := validateConcepts(concepts, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate concept name")
}

func TestValidateConceptsEmptyList(t *testing.T) {
	err := validateConcepts(nil, 1)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "concept", verr.Stage)
}

func TestValidateConceptsInvalidDifficulty(t *testing.T) {
	concepts := []Concept{{Name: "X", Summary: "s", Difficulty: "impossible", Segment: 0}}
	err := validateConcepts(concepts, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid difficulty")
}

func TestValidateCardsLengthLimits(t *testing.T) {
	concepts := []Concept{{Name: "X", Summary: "s", Difficulty: "easy", Segment: 0}}

	longQ := []Card{{Question: strings.Repeat("q", maxQuestionLen+1), Answer: "a", Concept: "X", Difficulty: "easy"}}
	require.Error(t, validateCards(longQ, concepts))

	longA := []Card{{Question: "q", Answer: strings.Repeat("a", maxAnswerLen+1), Concept: "X", Difficulty: "easy"}}
	require.Error(t, validateCards(longA, concepts))

	ok := []Card{{Question: "q", Answer: "a", Concept: "X", Difficulty: "easy"}}
	assert.NoError(t, validateCards(ok, concepts))
}

func TestValidateMCQOptionRules(t *testing.T) {
	concepts := []Concept{{Name: "X", Summary: "s", Difficulty: "easy", Segment: 0}}

	dup := []MCQ{{Question: "q", Options: []string{"same", "same"}, CorrectIndex: 0, Concept: "X", Difficulty: "easy"}}
	err := validateMCQs(dup, concepts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate option")

	blank := []MCQ{{Question: "q", Options: []string{"a", "  "}, CorrectIndex: 0, Concept: "X", Difficulty: "easy"}}
	require.Error(t, validateMCQs(blank, concepts))

	tooMany := []MCQ{{Question: "q", Options: []string{"a", "b", "c", "d", "e", "f", "g"}, CorrectIndex: 0, Concept: "X", Difficulty: "easy"}}
	require.Error(t, validateMCQs(tooMany, concepts))
}

func TestValidateFIBMarkerRules(t *testing.T) {
	concepts := []Concept{{Name: "X", Summary: "s", Difficulty: "easy", Segment: 0}}

	two := []FIB{{Sentence: "_____ and _____ here.", Answer: "a", Concept: "X", Difficulty: "easy"}}
	err := validateFIBs(two, concepts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	ok := []FIB{{Sentence: "Water moves by _____ across membranes.", Answer: "osmosis", Concept: "X", Difficulty: "easy"}}
	assert.NoError(t, validateFIBs(ok, concepts))
}
