package questionbank

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/saulo-duarte/quizgen-lambda/internal/apperr"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/llm"
	"github.com/saulo-duarte/quizgen-lambda/internal/shuffle"
)

const msgMissingFields = "topic and numQuestions are required"

type Service interface {
	GenerateQuestions(ctx context.Context, req GenerateRequest) ([]LetteredQuestion, error)
	ImportQuestions(ctx context.Context, data []byte) ([]json.RawMessage, error)
}

type service struct {
	completer    llm.Completer
	shuffler     *shuffle.Shuffler
	maxQuestions int
}

func NewService(completer llm.Completer, shuffler *shuffle.Shuffler, maxQuestions int) Service {
	return &service{
		completer:    completer,
		shuffler:     shuffler,
		maxQuestions: maxQuestions,
	}
}

// validate runs before any upstream call and returns the requested count.
func (s *service) validate(req GenerateRequest) (int, error) {
	if strings.TrimSpace(req.Topic) == "" || req.NumQuestions == "" {
		return 0, apperr.New(apperr.ErrInvalidShape, msgMissingFields)
	}
	n, err := req.NumQuestions.Int()
	if err != nil || n <= 0 {
		return 0, apperr.New(apperr.ErrInvalidShape, "numQuestions must be a positive integer")
	}
	if s.maxQuestions > 0 && n > s.maxQuestions {
		return 0, apperr.New(apperr.ErrInvalidShape, "numQuestions exceeds the allowed maximum")
	}
	return n, nil
}

func (s *service) GenerateQuestions(ctx context.Context, req GenerateRequest) ([]LetteredQuestion, error) {
	log := config.WithContext(ctx)

	count, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	topic := strings.TrimSpace(req.Topic)

	log.WithField("topic", topic).Infof("Generating %d questions", count)
	text, err := s.completer.Complete(ctx, BuildGenerationPrompt(topic, req.Prompt, count))
	if err != nil {
		return nil, err
	}

	questions, err := ExtractQuestions(text, topic, s.shuffler)
	if err != nil {
		log.WithError(err).Errorf("Failed to extract questions from model output:\n%s", text)
		return nil, err
	}

	log.Infof("Generated %d questions", len(questions))
	return questions, nil
}

func (s *service) ImportQuestions(ctx context.Context, data []byte) ([]json.RawMessage, error) {
	log := config.WithContext(ctx)

	questions, err := ValidateUpload(data, s.shuffler)
	if err != nil {
		log.WithError(err).Warn("Rejected uploaded question bank")
		return nil, err
	}

	log.Infof("Imported %d uploaded questions", len(questions))
	return questions, nil
}
