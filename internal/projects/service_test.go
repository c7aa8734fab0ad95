package projects

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/skillpath/skillpath/internal/llm"
)

func validProjectsJSON() json.RawMessage {
	return json.RawMessage(`[
		{
			"title": "CLI Task Tracker",
			"description": "A command-line tool to track daily tasks.",
			"requirements": ["Add and list tasks", "Persist to a file", "Mark tasks done"],
			"techStack": ["Go"],
			"skills": ["File IO", "CLI design"],
			"difficulty": "beginner"
		},
		{
			"title": "URL Shortener",
			"description": "A small HTTP service that shortens URLs.",
			"requirements": ["HTTP handlers", "In-memory store", "Redirects"],
			"techStack": ["Go", "net/http"],
			"skills": ["HTTP", "Testing"],
			"difficulty": "intermediate"
		}
	]`)
}

func TestService_ParsesValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validProjectsJSON()})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Generate(context.Background(), Input{ModuleTitle: "Go Basics", Skill: "Go", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got[1].Difficulty != DifficultyIntermediate {
		t.Errorf("difficulty = %q", got[1].Difficulty)
	}
}

func TestService_ParseFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`<html>502 Bad Gateway</html>`),
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Generate(context.Background(), Input{ModuleTitle: "Go Basics", Skill: "Go", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 fallback project, got %d", len(got))
	}
	if !strings.Contains(got[0].Title, "Go Basics") {
		t.Errorf("fallback title %q not templated from module", got[0].Title)
	}
	if len(got[0].Requirements) == 0 || len(got[0].TechStack) == 0 {
		t.Error("fallback project is missing fields")
	}
}

func TestService_GatewayFailurePropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Generate(context.Background(), Input{ModuleTitle: "Go Basics", Skill: "Go", Level: "beginner"})
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

func TestService_PromptRequestsTwoToThree(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validProjectsJSON()})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), Input{ModuleTitle: "Go Basics", Skill: "Go", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "2-3 projects") {
		t.Error("prompt does not request 2-3 projects")
	}
}
