package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/skillpath/skillpath/internal/llm"
)

func validLessonJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Goroutines",
		"objective": "Launch and coordinate concurrent work with goroutines.",
		"content": "A goroutine is a lightweight thread managed by the Go runtime...",
		"examples": ["go func() { fmt.Println(\"hello\") }()"],
		"practiceTask": "Write a program that fetches three URLs concurrently."
	}`)
}

func TestService_ParsesValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Generate(context.Background(), Input{SubtopicTitle: "Goroutines", Skill: "Go", Level: "intermediate"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Goroutines" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.Examples) != 1 {
		t.Errorf("examples = %d, want 1", len(got.Examples))
	}
	if got.PracticeTask == "" {
		t.Error("expected practice task")
	}
}

func TestService_ParseFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Here is your lesson: goroutines are...`),
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Generate(context.Background(), Input{SubtopicTitle: "Goroutines", Skill: "Go", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got.Objective, "Goroutines") {
		t.Errorf("fallback objective %q not templated from subtopic", got.Objective)
	}
	if got.Content == "" || got.PracticeTask == "" || len(got.Examples) == 0 {
		t.Error("fallback lesson is missing fields")
	}
}

func TestService_GatewayFailurePropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Generate(context.Background(), Input{SubtopicTitle: "Goroutines", Skill: "Go", Level: "beginner"})
	if err == nil {
		t.Fatal("expected error")
	}
	if got != nil {
		t.Fatal("expected no fallback on gateway failure")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestService_PromptRequestsWordBand(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), Input{SubtopicTitle: "Goroutines", Skill: "Go", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "300-500 words") {
		t.Error("prompt does not request the content length band")
	}
	if req.Schema == nil || req.Schema.Name != "lesson" {
		t.Error("expected schema name 'lesson'")
	}
}
