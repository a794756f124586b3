package studygen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mindmorph/internal/llm"
)

func testConcepts() []Concept {
	return []Concept{
		{Name: "Spaced Repetition", Summary: "Reviewing at growing intervals improves retention.", Difficulty: "easy", Segment: 0},
		{Name: "Active Recall", Summary: "Retrieving from memory beats rereading.", Difficulty: "medium", Segment: 1},
	}
}

func TestConceptsParsesAndOrders(t *testing.T) {
	content := json.RawMessage(`{"concepts":[
		{"name":"Spaced Repetition","summary":"Reviewing at growing intervals.","difficulty":"easy","segment":0},
		{"name":"Active Recall","summary":"Retrieving from memory.","difficulty":"medium","segment":1}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	concepts, err := gen.Concepts(context.Background(), []string{"seg one", "seg two"})
	if err != nil {
		t.Fatalf("Concepts: %v", err)
	}
	if len(concepts) != 2 {
		t.Fatalf("got %d concepts, want 2", len(concepts))
	}
	if concepts[0].Name != "Spaced Repetition" || concepts[0].Segment != 0 {
		t.Errorf("unexpected first concept: %+v", concepts[0])
	}

	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "concept-list" {
		t.Errorf("request schema = %+v, want concept-list", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "Segment 1:") {
		t.Errorf("prompt missing segment markers:\n%s", req.Messages[0].Content)
	}
}

func TestConceptsRejectsOutOfRangeSegment(t *testing.T) {
	content := json.RawMessage(`{"concepts":[
		{"name":"Ghost","summary":"Points past the input.","difficulty":"easy","segment":5}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	_, err := gen.Concepts(context.Background(), []string{"only segment"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Stage != "concept" {
		t.Errorf("stage = %q, want concept", verr.Stage)
	}
}

func TestConceptsCapsAtMaxConcepts(t *testing.T) {
	var items []string
	for _, name := range []string{"A", "B", "C", "D"} {
		items = append(items, `{"name":"`+name+`","summary":"s","difficulty":"easy","segment":0}`)
	}
	content := json.RawMessage(`{"concepts":[` + strings.Join(items, ",") + `]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})

	cfg := DefaultConfig()
	cfg.MaxConcepts = 2
	gen := New(mock, cfg)

	concepts, err := gen.Concepts(context.Background(), []string{"seg"})
	if err != nil {
		t.Fatalf("Concepts: %v", err)
	}
	if len(concepts) != 2 {
		t.Errorf("got %d concepts, want 2 after cap", len(concepts))
	}
}

func TestFlashcardsHappyPath(t *testing.T) {
	content := json.RawMessage(`{"cards":[
		{"question":"What does spaced repetition schedule?","answer":"Reviews at growing intervals","concept":"Spaced Repetition","difficulty":"easy"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	cards, err := gen.Flashcards(context.Background(), testConcepts(), []string{"seg"})
	if err != nil {
		t.Fatalf("Flashcards: %v", err)
	}
	if len(cards) != 1 || cards[0].Concept != "Spaced Repetition" {
		t.Errorf("unexpected cards: %+v", cards)
	}
}

func TestFlashcardsRejectUnknownConcept(t *testing.T) {
	content := json.RawMessage(`{"cards":[
		{"question":"Q","answer":"A","concept":"Not A Real Concept","difficulty":"easy"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	_, err := gen.Flashcards(context.Background(), testConcepts(), []string{"seg"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestMultipleChoiceRejectsBadCorrectIndex(t *testing.T) {
	content := json.RawMessage(`{"questions":[
		{"question":"Pick one","options":["a","b"],"correct_index":2,"concept":"Active Recall","difficulty":"medium"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	_, err := gen.MultipleChoice(context.Background(), testConcepts(), []string{"seg"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Stage != "mcq" {
		t.Errorf("stage = %q, want mcq", verr.Stage)
	}
}

func TestMultipleChoiceHappyPath(t *testing.T) {
	content := json.RawMessage(`{"questions":[
		{"question":"Which habit improves retention most?","options":["Rereading","Active recall","Highlighting"],"correct_index":1,"concept":"Active Recall","difficulty":"medium"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	mcqs, err := gen.MultipleChoice(context.Background(), testConcepts(), []string{"seg"})
	if err != nil {
		t.Fatalf("MultipleChoice: %v", err)
	}
	if mcqs[0].CorrectIndex != 1 || len(mcqs[0].Options) != 3 {
		t.Errorf("unexpected mcq: %+v", mcqs[0])
	}
}

func TestFillInBlanksRequiresSingleMarker(t *testing.T) {
	content := json.RawMessage(`{"items":[
		{"sentence":"No marker here at all.","answer":"marker","concept":"Active Recall","difficulty":"easy"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	_, err := gen.FillInBlanks(context.Background(), testConcepts(), []string{"seg"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestFillInBlanksHappyPath(t *testing.T) {
	content := json.RawMessage(`{"items":[
		{"sentence":"_____ means retrieving facts from memory instead of rereading.","answer":"Active recall","concept":"Active Recall","difficulty":"easy"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	fibs, err := gen.FillInBlanks(context.Background(), testConcepts(), []string{"seg"})
	if err != nil {
		t.Fatalf("FillInBlanks: %v", err)
	}
	if fibs[0].Answer != "Active recall" {
		t.Errorf("unexpected fib: %+v", fibs[0])
	}
}

func TestProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Concepts(context.Background(), []string{"seg"}); err == nil {
		t.Fatal("expected error from provider")
	}
}

func TestPromptClipsLongSegments(t *testing.T) {
	long := strings.Repeat("x", 100)
	cfg := DefaultConfig()
	cfg.MaxSegmentChars = 10

	msg := buildConceptMessage([]string{long}, cfg)
	if !strings.Contains(msg, "[truncated]") {
		t.Error("expected truncation marker in prompt")
	}
	if strings.Contains(msg, strings.Repeat("x", 11)) {
		t.Error("segment was not clipped")
	}
}

