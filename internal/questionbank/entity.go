package questionbank

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// LetteredQuestion marks the right option by its letter prefix, e.g. "B".
type LetteredQuestion struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Series      string   `json:"series"`
	Citation    string   `json:"citation"`
	Explanation string   `json:"explanation,omitempty"`
}

// QuestionCount accepts numQuestions either as a JSON string ("5") or a number (5).
type QuestionCount string

var errQuestionCountType = errors.New("numQuestions must be a string or a number")

func (c *QuestionCount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = QuestionCount(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errQuestionCountType
	}
	*c = QuestionCount(n.String())
	return nil
}

func (c QuestionCount) Int() (int, error) {
	return strconv.Atoi(string(c))
}

type GenerateRequest struct {
	Topic        string        `json:"topic"`
	Prompt       string        `json:"prompt"`
	NumQuestions QuestionCount `json:"numQuestions"`
}

type GenerateResponse struct {
	Questions []LetteredQuestion `json:"questions"`
}

type UploadResponse struct {
	Questions []json.RawMessage `json:"questions"`
}
