package llm

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"github.com/saulo-duarte/quizgen-lambda/internal/apperr"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds the client eagerly. Without an API key the provider
// is still returned and fails on first use.
func NewGeminiProvider(ctx context.Context, opts Options) (*GeminiProvider, error) {
	p := &GeminiProvider{model: opts.Model}
	if opts.APIKey == "" {
		return p, nil
	}

	cc := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: NewHTTPClient(opts.Timeout),
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrConfiguration, "failed to create Gemini client", err)
	}
	p.client = client
	return p, nil
}

func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	if p.client == nil {
		return "", apperr.New(apperr.ErrConfiguration, "GEMINI_API_KEY is not set")
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", apperr.Wrap(apperr.ErrUpstream, "content generation failed", err)
	}

	raw := result.Text()
	log.Debugf("Raw Gemini response:\n%s", raw)
	if raw == "" {
		return "", apperr.Wrap(apperr.ErrUpstream, "content generation failed", errors.New("empty model response"))
	}
	return raw, nil
}
