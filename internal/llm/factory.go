package llm

import (
	"context"
	"fmt"

	"github.com/techwell/techwell/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// retry and logging decorators (caller -> retry -> logging -> base).
func NewProvider(ctx context.Context, cfg Config, logs store.LLMLogRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
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

	logged := WithLogging(base, logs)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from TECHWELL_* env vars, falling
// back to probing the standard API key variables when no provider is
// explicitly configured.
func NewProviderFromEnv(ctx context.Context, logs store.LLMLogRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, logs)
}
