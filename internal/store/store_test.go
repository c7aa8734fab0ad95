package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestArtifactSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ArtifactRepo()
	ctx := context.Background()

	// Absent id returns nil without error.
	got, err := repo.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing artifact")
	}

	id := uuid.NewString()
	a := &Artifact{
		ID:      id,
		Kind:    "curriculum",
		Params:  json.RawMessage(`{"skill":"Python","weeks":12}`),
		Payload: json.RawMessage(`{"modules":[]}`),
	}
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected artifact")
	}
	if got.Kind != "curriculum" {
		t.Errorf("kind = %q, want %q", got.Kind, "curriculum")
	}
	if string(got.Payload) != `{"modules":[]}` {
		t.Errorf("payload = %s", got.Payload)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestArtifactSaveRequiresID(t *testing.T) {
	s := openTestStore(t)
	err := s.ArtifactRepo().Save(context.Background(), &Artifact{Kind: "quiz", Payload: []byte(`{}`)})
	if err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestArtifactListRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ArtifactRepo()
	ctx := context.Background()

	kinds := []string{"quiz", "curriculum", "quiz"}
	for _, k := range kinds {
		err := repo.Save(ctx, &Artifact{
			ID:      uuid.NewString(),
			Kind:    k,
			Payload: json.RawMessage(`{}`),
		})
		if err != nil {
			t.Fatalf("save %s: %v", k, err)
		}
	}

	all, err := repo.ListRecent(ctx, "", 10)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 artifacts, got %d", len(all))
	}

	quizzes, err := repo.ListRecent(ctx, "quiz", 10)
	if err != nil {
		t.Fatalf("list quizzes: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("expected 2 quiz artifacts, got %d", len(quizzes))
	}
	for _, a := range quizzes {
		if a.Kind != "quiz" {
			t.Errorf("kind = %q, want quiz", a.Kind)
		}
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "quiz",
		InputTokens:  10,
		OutputTokens: 20,
		LatencyMs:    5,
		Success:      true,
		RequestBody:  "[user]\nhello",
		ResponseBody: `{"ok":true}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "curriculum",
		Success:      false,
		ErrorMessage: "LLM provider unavailable",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "curriculum" {
		t.Errorf("first event purpose = %q, want curriculum", events[0].Purpose)
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Purpose != "quiz" {
		t.Fatalf("expected 1 quiz event, got %d", len(filtered))
	}

	one, err := repo.GetLLMEvent(ctx, filtered[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if one == nil || one.RequestBody == "" {
		t.Fatal("expected event with request body")
	}

	none, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if none != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openrouter", Model: "google/gemini-2.0-flash-exp", Purpose: "quiz", InputTokens: 100, OutputTokens: 50, LatencyMs: 10, Success: true},
		{Provider: "openrouter", Model: "google/gemini-2.0-flash-exp", Purpose: "quiz", InputTokens: 200, OutputTokens: 100, LatencyMs: 30, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "lesson", InputTokens: 300, OutputTokens: 150, LatencyMs: 20, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	// Sorted by purpose: lesson, quiz.
	if byPurpose[1].Purpose != "quiz" || byPurpose[1].Calls != 2 {
		t.Errorf("quiz row = %+v", byPurpose[1])
	}
	if byPurpose[1].InputTokens != 300 || byPurpose[1].OutputTokens != 150 {
		t.Errorf("quiz tokens = %d in / %d out", byPurpose[1].InputTokens, byPurpose[1].OutputTokens)
	}
	if byPurpose[1].AvgLatencyMs != 20 {
		t.Errorf("quiz avg latency = %d, want 20", byPurpose[1].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model rows, got %d", len(byModel))
	}
}
