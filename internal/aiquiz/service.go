package aiquiz

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/saulo-duarte/quizgen-lambda/internal/apperr"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/llm"
)

type Service interface {
	GenerateQuiz(ctx context.Context, topics []string) ([]IndexedQuestion, error)
}

type service struct {
	completer llm.Completer
}

func NewService(completer llm.Completer) Service {
	return &service{completer: completer}
}

func (s *service) GenerateQuiz(ctx context.Context, topics []string) ([]IndexedQuestion, error) {
	log := config.WithContext(ctx)

	topics = cleanTopics(topics)
	if len(topics) == 0 {
		return nil, apperr.New(apperr.ErrInvalidShape, "topics must be a non-empty array of strings")
	}

	raw, err := s.completer.Complete(ctx, BuildQuizPrompt(topics))
	if err != nil {
		return nil, err
	}

	questions, err := decodeQuestions(raw)
	if err != nil {
		log.WithError(err).Errorf("[AIQUIZ] Failed to decode model output:\n%s", raw)
		return nil, err
	}

	log.Infof("[AIQUIZ] Generated %d questions for %d topics", len(questions), len(topics))
	return questions, nil
}

func cleanTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// decodeQuestions expects the reply to be a JSON array, optionally inside a markdown fence.
func decodeQuestions(raw string) ([]IndexedQuestion, error) {
	clean := stripFence(raw)

	var questions []IndexedQuestion
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, apperr.Wrap(apperr.ErrExtraction, "model output is not a JSON array of questions", err)
	}
	if questions == nil {
		return nil, apperr.New(apperr.ErrExtraction, "model output is not a JSON array of questions")
	}
	return questions, nil
}

func stripFence(raw string) string {
	clean := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(clean, "```"); ok {
		if len(rest) >= 4 && strings.EqualFold(rest[:4], "json") {
			rest = rest[4:]
		}
		clean = rest
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}
