package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/saulo-duarte/quizgen-lambda/internal/apperr"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

// OpenAIProvider works against OpenAI and compatible hosts such as DeepSeek.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	ready  bool
}

func NewOpenAIProvider(opts Options) *OpenAIProvider {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	cfg.HTTPClient = NewHTTPClient(opts.Timeout)

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  opts.Model,
		ready:  opts.APIKey != "",
	}
}

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	if !p.ready {
		return "", apperr.New(apperr.ErrConfiguration, "OPENAI_API_KEY is not set")
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.WithError(err).Error("OpenAI chat completion failed")
		return "", apperr.Wrap(apperr.ErrUpstream, "chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperr.New(apperr.ErrUpstream, "chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
