package llm

import (
	"context"
	"fmt"

	"github.com/satriahrh/fanfic/config"
	"github.com/satriahrh/fanfic/domain"
)

// New builds the generation client selected by cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig) (domain.Llm, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	case config.ProviderMock:
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("llm provider %q not supported", cfg.Provider)
	}
}
