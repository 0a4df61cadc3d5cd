package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/saulo-duarte/quizgen-lambda/internal/apperr"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

const maxUpstreamBody = 4 << 20

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ChatClient calls an OpenAI-compatible /chat/completions endpoint directly.
type ChatClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewChatClient(opts Options) *ChatClient {
	return &ChatClient{
		apiKey:  opts.APIKey,
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		model:   opts.Model,
		client:  NewHTTPClient(opts.Timeout),
	}
}

func (c *ChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	if c.apiKey == "" {
		return "", apperr.New(apperr.ErrConfiguration, "completion API key is not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", apperr.Wrap(apperr.ErrConfiguration, "invalid completion API URL", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Completion request failed")
		return "", apperr.Wrap(apperr.ErrUpstream, "completion request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return "", apperr.Wrap(apperr.ErrUpstream, "failed to read completion response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := upstreamMessage(raw)
		log.WithField("status", resp.StatusCode).Errorf("Completion API returned an error: %s", msg)
		return "", apperr.Wrap(apperr.ErrUpstream,
			fmt.Sprintf("completion API returned status %d", resp.StatusCode), errors.New(msg))
	}

	var decoded chatResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", apperr.Wrap(apperr.ErrUpstream, "failed to decode completion response", err)
	}
	if len(decoded.Choices) == 0 {
		return "", apperr.New(apperr.ErrUpstream, "completion API returned no choices")
	}

	content := decoded.Choices[0].Message.Content
	log.Debugf("Raw completion content:\n%s", content)
	return content, nil
}

func upstreamMessage(raw []byte) string {
	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return msg
	}
	return "empty response body"
}
