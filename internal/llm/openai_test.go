package llm_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/saulo-duarte/quizgen-lambda/internal/apperr"
	"github.com/saulo-duarte/quizgen-lambda/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIProviderComplete(t *testing.T) {
	var got capturedRequest
	srv := chatServer(t, http.StatusOK, completionBody(`[{"question":"Q"}]`), &got)

	p := llm.NewOpenAIProvider(llm.Options{APIKey: "sk-test", BaseURL: srv.URL, Model: "gpt-4"})
	out, err := p.Complete(context.Background(), "make a quiz")
	require.NoError(t, err)

	assert.Equal(t, `[{"question":"Q"}]`, out)
	assert.Equal(t, "/chat/completions", got.Path)
	assert.Equal(t, "Bearer sk-test", got.Authorization)
	require.Len(t, got.Body.Messages, 1)
	assert.Equal(t, "make a quiz", got.Body.Messages[0].Content)
}

func TestOpenAIProviderUpstreamError(t *testing.T) {
	srv := chatServer(t, http.StatusUnauthorized, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`, nil)

	p := llm.NewOpenAIProvider(llm.Options{APIKey: "sk-bad", BaseURL: srv.URL, Model: "gpt-4"})
	_, err := p.Complete(context.Background(), "make a quiz")

	assert.ErrorIs(t, err, apperr.ErrUpstream)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestOpenAIProviderMissingKey(t *testing.T) {
	p := llm.NewOpenAIProvider(llm.Options{Model: "gpt-4"})
	_, err := p.Complete(context.Background(), "make a quiz")

	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}

func TestGeminiProviderMissingKey(t *testing.T) {
	p, err := llm.NewGeminiProvider(context.Background(), llm.Options{Model: "gemini-2.0-flash"})
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), "make a quiz")
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}
