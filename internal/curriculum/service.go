package curriculum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/skillpath/skillpath/internal/llm"
)

// Config controls curriculum generation.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2000,
		Temperature: 0.7,
	}
}

// Service generates curricula through the LLM provider, substituting a
// deterministic fallback when the reply cannot be parsed. Only a
// provider-level failure (unavailable, timeout, rate limit) surfaces as
// an error.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a curriculum generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces a curriculum for the given input. The returned plan
// always satisfies the schema shape; on unparseable model output it
// degrades to the fallback rather than failing.
func (s *Service) Generate(ctx context.Context, in Input) (*Curriculum, error) {
	in = in.normalized()
	ctx = llm.WithPurpose(ctx, "curriculum")

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
		return nil, fmt.Errorf("curriculum generation: %w", err)
	}

	var out Curriculum
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Fallback(in), nil
	}

	return &out, nil
}
