package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/skillpath/skillpath/internal/llm"
)

// Config controls project-ideas generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2000,
		Temperature: 0.7,
	}
}

// Service generates project ideas through the LLM provider, substituting
// the deterministic fallback when the reply cannot be parsed.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a project-ideas service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces project ideas for the given module.
func (s *Service) Generate(ctx context.Context, in Input) ([]Project, error) {
	ctx = llm.WithPurpose(ctx, "projects")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			return Fallback(in), nil
		}
		return nil, fmt.Errorf("project generation: %w", err)
	}

	var out []Project
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Fallback(in), nil
	}

	return out, nil
}
