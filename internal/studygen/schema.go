package studygen

import "github.com/abhisek/mindmorph/internal/llm"

// ConceptSchema defines the JSON schema for concept extraction responses.
var ConceptSchema = &llm.Schema{
	Name:        "concept-list",
	Description: "Key concepts extracted from study material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concepts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Short topic label, e.g. \"Supervised Learning\"",
						},
						"summary": map[string]any{
							"type":        "string",
							"description": "One or two sentence recap of the concept",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "How hard the concept is for a first-time learner",
						},
						"segment": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Zero-based index of the source segment the concept came from",
						},
					},
					"required":             []any{"name", "summary", "difficulty", "segment"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"concepts"},
		"additionalProperties": false,
	},
}

// FlashcardSchema defines the JSON schema for flashcard generation responses.
var FlashcardSchema = &llm.Schema{
	Name:        "flashcard-list",
	Description: "Question/answer flashcards grounded in the given concepts",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The prompt side of the card",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The answer side of the card",
						},
						"concept": map[string]any{
							"type":        "string",
							"description": "Must exactly match one of the provided concept names",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
					},
					"required":             []any{"question", "answer", "concept", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}

// MCQSchema defines the JSON schema for multiple-choice generation responses.
var MCQSchema = &llm.Schema{
	Name:        "mcq-list",
	Description: "Multiple-choice questions grounded in the given concepts",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    2,
							"maxItems":    6,
							"description": "Answer options, exactly one correct",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Zero-based index into options of the correct answer",
						},
						"concept": map[string]any{
							"type":        "string",
							"description": "Must exactly match one of the provided concept names",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
					},
					"required":             []any{"question", "options", "correct_index", "concept", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// FIBSchema defines the JSON schema for fill-in-the-blank generation responses.
var FIBSchema = &llm.Schema{
	Name:        "fib-list",
	Description: "Fill-in-the-blank sentences grounded in the given concepts",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"sentence": map[string]any{
							"type":        "string",
							"description": "A complete sentence with the key term replaced by _____",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The word or phrase that fills the blank",
						},
						"concept": map[string]any{
							"type":        "string",
							"description": "Must exactly match one of the provided concept names",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
					},
					"required":             []any{"sentence", "answer", "concept", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
