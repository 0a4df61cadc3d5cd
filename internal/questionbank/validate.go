package questionbank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonschema"

	"github.com/saulo-duarte/quizgen-lambda/internal/apperr"
	"github.com/saulo-duarte/quizgen-lambda/internal/shuffle"
)

const (
	msgNotArray     = "JSON must be an array of questions"
	msgItemRequired = "Each question must have question, options (array), and answer fields"
)

// itemSchema only checks presence: question and answer may hold any non-null value.
const itemSchema = `{
  "type": "object",
  "required": ["question", "options", "answer"],
  "properties": {
    "question": {"not": {"type": "null"}},
    "options":  {"type": "array"},
    "answer":   {"not": {"type": "null"}}
  }
}`

var itemValidator = mustCompileSchema(itemSchema)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("questionbank: invalid item schema: %v", err))
	}
	return schema
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ValidateUpload checks an uploaded question bank and returns its elements
// shuffled. One bad element rejects the whole batch.
func ValidateUpload(data []byte, s *shuffle.Shuffler) ([]json.RawMessage, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, apperr.New(apperr.ErrMalformedInput, "uploaded file is not valid UTF-8 text")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperr.Wrap(apperr.ErrMalformedInput, "Invalid JSON", err)
	}
	if _, ok := doc.([]any); !ok {
		return nil, apperr.New(apperr.ErrInvalidShape, msgNotArray)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, apperr.Wrap(apperr.ErrMalformedInput, "Invalid JSON", err)
	}

	var bad []string
	for i, item := range items {
		result, err := itemValidator.Validate(gojsonschema.NewBytesLoader(item))
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrInvalidShape, msgItemRequired, err)
		}
		if !result.Valid() {
			bad = append(bad, fmt.Sprint(i))
		}
	}
	if len(bad) > 0 {
		return nil, apperr.New(apperr.ErrInvalidShape,
			fmt.Sprintf("%s (invalid items: %s)", msgItemRequired, strings.Join(bad, ", ")))
	}

	return shuffle.Using(s, items), nil
}
