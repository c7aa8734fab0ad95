package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/skillpath/skillpath/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// timeout bound and, when eventRepo is non-nil, event logging.
// Generation requests are never retried.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → timeout → logging → base
	wrapped := base
	if eventRepo != nil {
		wrapped = WithLogging(wrapped, eventRepo)
	}
	wrapped = WithTimeout(wrapped, cfg.Timeout)

	return wrapped, nil
}

// NewProviderFromEnv resolves configuration from the environment, emits
// the redacted startup diagnostic, and builds the provider.
func NewProviderFromEnv(ctx context.Context, log *zap.Logger, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	cfg.LogResolved(log)
	return NewProvider(ctx, cfg, eventRepo)
}
