package questionbank

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/saulo-duarte/quizgen-lambda/internal/apperr"
	"github.com/saulo-duarte/quizgen-lambda/internal/shuffle"
)

// arrayPattern is greedy: first '[' through last ']'. It is a heuristic, not a parser.
var arrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// generatedQuestion is one element as the model wrote it. The correct option
// arrives either as answer (a letter code) or as correct (a zero-based index).
type generatedQuestion struct {
	Question    string          `json:"question"`
	Options     []string        `json:"options"`
	Answer      json.RawMessage `json:"answer"`
	Correct     json.RawMessage `json:"correct"`
	Series      string          `json:"series"`
	Citation    string          `json:"citation"`
	Explanation string          `json:"explanation"`
}

// letterAnswer and indexAnswer are the two shapes of the correct-answer field.
type (
	letterAnswer string
	indexAnswer  int
)

func (a letterAnswer) letter() (string, error) { return string(a), nil }

func (a indexAnswer) letter() (string, error) {
	if a < 0 || a > 'Z'-'A' {
		return "", fmt.Errorf("answer index %d has no option letter", int(a))
	}
	return string(rune('A' + int(a))), nil
}

type answerKey interface {
	letter() (string, error)
}

// decodeAnswerKey accepts a letter string or an integer index. It returns nil
// when the field is absent, null or blank.
func decodeAnswerKey(raw json.RawMessage) (answerKey, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s = strings.TrimSpace(s); s == "" {
			return nil, nil
		}
		return letterAnswer(s), nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("answer must be a letter or an integer index, got %s", raw)
	}
	return indexAnswer(n), nil
}

func (g generatedQuestion) answerLetter() (string, error) {
	for _, raw := range []json.RawMessage{g.Answer, g.Correct} {
		key, err := decodeAnswerKey(raw)
		if err != nil {
			return "", err
		}
		if key != nil {
			return key.letter()
		}
	}
	return "", fmt.Errorf("question has neither answer nor correct")
}

// ExtractQuestions pulls the question array out of free model text, numbers the
// entries from 1 and shuffles them.
func ExtractQuestions(text, topic string, s *shuffle.Shuffler) ([]LetteredQuestion, error) {
	match := arrayPattern.FindString(text)
	if match == "" {
		return nil, apperr.New(apperr.ErrExtraction, "no JSON array found in model output")
	}

	var items []generatedQuestion
	if err := json.Unmarshal([]byte(match), &items); err != nil {
		return nil, apperr.Wrap(apperr.ErrExtraction, "failed to parse JSON array from model output", err)
	}

	questions := make([]LetteredQuestion, len(items))
	for i, item := range items {
		answer, err := item.answerLetter()
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrExtraction, fmt.Sprintf("question %d has no usable answer", i+1), err)
		}
		series := item.Series
		if series == "" {
			series = topic
		}
		questions[i] = LetteredQuestion{
			ID:          i + 1,
			Question:    item.Question,
			Options:     item.Options,
			Answer:      answer,
			Series:      series,
			Citation:    item.Citation,
			Explanation: item.Explanation,
		}
	}

	return shuffle.Using(s, questions), nil
}
