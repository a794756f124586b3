package studygen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mindmorph/internal/artifact"
	"github.com/abhisek/mindmorph/internal/llm"
)

// Generator produces study items from source material via an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// conceptOutput mirrors ConceptSchema.
type conceptOutput struct {
	Concepts []struct {
		Name       string `json:"name"`
		Summary    string `json:"summary"`
		Difficulty string `json:"difficulty"`
		Segment    int    `json:"segment"`
	} `json:"concepts"`
}

// Concepts extracts the key concepts from the given source segments,
// ordered by segment index.
func (g *Generator) Concepts(ctx context.Context, segments []string) ([]Concept, error) {
	ctx = llm.WithPurpose(ctx, "concept-extract")

	resp, err := g.generate(ctx, conceptSystemPrompt, buildConceptMessage(segments, g.config), ConceptSchema)
	if err != nil {
		return nil, err
	}

	var raw conceptOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse concept response: %w", err)
	}

	concepts := make([]Concept, 0, len(raw.Concepts))
	for _, c := range raw.Concepts {
		concepts = append(concepts, Concept{
			Name:       c.Name,
			Summary:    c.Summary,
			Difficulty: artifact.Difficulty(c.Difficulty),
			Segment:    c.Segment,
		})
	}
	if len(concepts) > g.config.MaxConcepts && g.config.MaxConcepts > 0 {
		concepts = concepts[:g.config.MaxConcepts]
	}
	if err := validateConcepts(concepts, len(segments)); err != nil {
		return nil, err
	}
	return concepts, nil
}

// cardOutput mirrors FlashcardSchema.
type cardOutput struct {
	Cards []struct {
		Question   string `json:"question"`
		Answer     string `json:"answer"`
		Concept    string `json:"concept"`
		Difficulty string `json:"difficulty"`
	} `json:"cards"`
}

// Flashcards generates flashcards covering the given concepts.
func (g *Generator) Flashcards(ctx context.Context, concepts []Concept, segments []string) ([]Card, error) {
	ctx = llm.WithPurpose(ctx, "flashcard-gen")

	resp, err := g.generate(ctx, flashcardSystemPrompt, buildItemMessage("flashcards", concepts, segments, g.config), FlashcardSchema)
	if err != nil {
		return nil, err
	}

	var raw cardOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse flashcard response: %w", err)
	}

	cards := make([]Card, 0, len(raw.Cards))
	for _, c := range raw.Cards {
		cards = append(cards, Card{
			Question:   c.Question,
			Answer:     c.Answer,
			Concept:    c.Concept,
			Difficulty: artifact.Difficulty(c.Difficulty),
		})
	}
	cards = capItems(cards, g.config.MaxItemsPerKind)
	if err := validateCards(cards, concepts); err != nil {
		return nil, err
	}
	return cards, nil
}

// mcqOutput mirrors MCQSchema.
type mcqOutput struct {
	Questions []struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		Concept      string   `json:"concept"`
		Difficulty   string   `json:"difficulty"`
	} `json:"questions"`
}

// MultipleChoice generates multiple-choice questions covering the given concepts.
func (g *Generator) MultipleChoice(ctx context.Context, concepts []Concept, segments []string) ([]MCQ, error) {
	ctx = llm.WithPurpose(ctx, "mcq-gen")

	resp, err := g.generate(ctx, mcqSystemPrompt, buildItemMessage("multiple-choice questions", concepts, segments, g.config), MCQSchema)
	if err != nil {
		return nil, err
	}

	var raw mcqOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse mcq response: %w", err)
	}

	mcqs := make([]MCQ, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		mcqs = append(mcqs, MCQ{
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Concept:      q.Concept,
			Difficulty:   artifact.Difficulty(q.Difficulty),
		})
	}
	mcqs = capItems(mcqs, g.config.MaxItemsPerKind)
	if err := validateMCQs(mcqs, concepts); err != nil {
		return nil, err
	}
	return mcqs, nil
}

// fibOutput mirrors FIBSchema.
type fibOutput struct {
	Items []struct {
		Sentence   string `json:"sentence"`
		Answer     string `json:"answer"`
		Concept    string `json:"concept"`
		Difficulty string `json:"difficulty"`
	} `json:"items"`
}

// FillInBlanks generates fill-in-the-blank items covering the given concepts.
func (g *Generator) FillInBlanks(ctx context.Context, concepts []Concept, segments []string) ([]FIB, error) {
	ctx = llm.WithPurpose(ctx, "fib-gen")

	resp, err := g.generate(ctx, fibSystemPrompt, buildItemMessage("fill-in-the-blank items", concepts, segments, g.config), FIBSchema)
	if err != nil {
		return nil, err
	}

	var raw fibOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse fill-in-blank response: %w", err)
	}

	fibs := make([]FIB, 0, len(raw.Items))
	for _, it := range raw.Items {
		fibs = append(fibs, FIB{
			Sentence:   it.Sentence,
			Answer:     it.Answer,
			Concept:    it.Concept,
			Difficulty: artifact.Difficulty(it.Difficulty),
		})
	}
	fibs = capItems(fibs, g.config.MaxItemsPerKind)
	if err := validateFIBs(fibs, concepts); err != nil {
		return nil, err
	}
	return fibs, nil
}

func (g *Generator) generate(ctx context.Context, system, user string, schema *llm.Schema) (*llm.Response, error) {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		Schema:      schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}
	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}
	return resp, nil
}

func capItems[T any](items []T, max int) []T {
	if max > 0 && len(items) > max {
		return items[:max]
	}
	return items
}
