package resources

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/skillpath/skillpath/internal/llm"
)

func validResourcesJSON() json.RawMessage {
	return json.RawMessage(`[
		{"type": "book", "title": "The Go Programming Language", "author": "Donovan & Kernighan", "level": "beginner", "estimatedTime": "30 hours", "reason": "The standard reference.", "description": "Comprehensive introduction to Go.", "url": "#"},
		{"type": "course", "title": "A Tour of Go", "author": "The Go Team", "level": "beginner", "reason": "Interactive first contact.", "description": "Official interactive tutorial.", "url": "https://go.dev/tour/"}
	]`)
}

func TestService_ParsesValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validResourcesJSON()})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Generate(context.Background(), Input{TopicTitle: "Syntax", Skill: "Go", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(got))
	}
	if got[0].Type != TypeBook {
		t.Errorf("type = %q, want book", got[0].Type)
	}
	if got[1].URL != "https://go.dev/tour/" {
		t.Errorf("url = %q", got[1].URL)
	}
}

func TestService_ParseFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Here are some great resources:`),
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Generate(context.Background(), Input{TopicTitle: "Syntax", Skill: "Go", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 fallback resource, got %d", len(got))
	}
	if got[0].Type != TypeArticle {
		t.Errorf("fallback type = %q, want article", got[0].Type)
	}
	if got[0].URL != NoURL {
		t.Errorf("fallback url = %q, want %q", got[0].URL, NoURL)
	}
	if strings.Contains(got[0].URL, "example.com") {
		t.Error("fallback must never emit placeholder domains")
	}
}

func TestService_GatewayFailurePropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Generate(context.Background(), Input{TopicTitle: "Syntax", Skill: "Go", Level: "beginner"})
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

func TestService_PromptForbidsPlaceholders(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validResourcesJSON()})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), Input{TopicTitle: "Syntax", Skill: "Go", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "8-10 resources") {
		t.Error("prompt does not request 8-10 items")
	}
	if !strings.Contains(prompt, "example.com") || !strings.Contains(prompt, `"#"`) {
		t.Error("prompt does not forbid placeholder URLs and mandate the sentinel")
	}
}
