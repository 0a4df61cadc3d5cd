package questionbank

import (
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/llm"
	"github.com/saulo-duarte/quizgen-lambda/internal/shuffle"
)

type QuestionBankContainer struct {
	Service Service
	Handler *Handler
}

func NewQuestionBankContainer(cfg config.Config, shuffler *shuffle.Shuffler) *QuestionBankContainer {
	client := llm.NewChatClient(llm.Options{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.LLMTimeout,
	})
	service := NewService(client, shuffler, cfg.MaxQuestions)
	handler := NewHandler(service, cfg.MaxBodyBytes, cfg.MaxUploadBytes)

	return &QuestionBankContainer{
		Service: service,
		Handler: handler,
	}
}
