package container

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/questionbank"
	"github.com/saulo-duarte/quizgen-lambda/internal/router"
	"github.com/saulo-duarte/quizgen-lambda/internal/shuffle"
)

type Container struct {
	Config                config.Config
	AIQuizContainer       *aiquiz.AIQuizContainer
	QuestionBankContainer *questionbank.QuestionBankContainer
}

// NewPromptService wires the /generate-quiz process.
func NewPromptService(ctx context.Context, cfg config.Config) (*Container, error) {
	if cfg.LLMProvider == config.ProviderGemini {
		warnMissingKey(cfg.GeminiAPIKey, "GEMINI_API_KEY")
	} else {
		warnMissingKey(cfg.OpenAIAPIKey, "OPENAI_API_KEY")
	}

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Container{
		Config:          cfg,
		AIQuizContainer: aiQuizContainer,
	}, nil
}

// NewQuizService wires the /generate-questions and /upload-json process.
func NewQuizService(cfg config.Config) *Container {
	warnMissingKey(cfg.OpenAIAPIKey, "OPENAI_API_KEY")

	return &Container{
		Config:                cfg,
		QuestionBankContainer: questionbank.NewQuestionBankContainer(cfg, shuffle.NewTimeSeeded()),
	}
}

func (c *Container) Router() http.Handler {
	rc := router.RouterConfig{
		StaticDir:   c.Config.StaticDir,
		CORSOrigins: c.Config.CORSOrigins,
	}
	if c.AIQuizContainer != nil {
		rc.AIQuizHandler = c.AIQuizContainer.Handler
	}
	if c.QuestionBankContainer != nil {
		rc.QuestionBankHandler = c.QuestionBankContainer.Handler
	}
	return router.New(rc)
}

// Requests still fail with a configuration error; this only surfaces it at boot.
func warnMissingKey(key, name string) {
	if key == "" {
		config.Logger.Warnf("%s is not set; generation requests will fail", name)
	}
}
