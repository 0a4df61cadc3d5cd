package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(ctx context.Context, cfg config.Config) (*AIQuizContainer, error) {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	service := NewService(provider)
	handler := NewHandler(service, cfg.MaxBodyBytes)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}, nil
}
