package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/llm"
)

// NewProvider picks the completion backend named by cfg.LLMProvider.
func NewProvider(ctx context.Context, cfg config.Config) (llm.Completer, error) {
	if cfg.LLMProvider == config.ProviderGemini {
		p, err := llm.NewGeminiProvider(ctx, llm.Options{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.LLMTimeout,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	return llm.NewOpenAIProvider(llm.Options{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.LLMTimeout,
	}), nil
}
