package questionbank_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/saulo-duarte/quizgen-lambda/internal/apperr"
	"github.com/saulo-duarte/quizgen-lambda/internal/questionbank"
	"github.com/saulo-duarte/quizgen-lambda/internal/shuffle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUploadAccepts(t *testing.T) {
	data := []byte(`[
	  {"question":"Q1","options":["a","b"],"answer":"A","extra":{"kept":true}},
	  {"question":2,"options":[],"answer":0},
	  {"question":"Q3","options":["x"],"answer":["weird"]}
	]`)

	items, err := questionbank.ValidateUpload(data, shuffle.New(11))
	require.NoError(t, err)
	require.Len(t, items, 3)

	var seen []string
	for _, item := range items {
		var m map[string]any
		require.NoError(t, json.Unmarshal(item, &m))
		seen = append(seen, string(mustJSON(t, m["question"])))
		if m["question"] == "Q1" {
			assert.Equal(t, map[string]any{"kept": true}, m["extra"])
		}
	}
	assert.ElementsMatch(t, []string{`"Q1"`, `2`, `"Q3"`}, seen)
}

func TestValidateUploadEmptyArray(t *testing.T) {
	items, err := questionbank.ValidateUpload([]byte(`[]`), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestValidateUploadStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`[{"question":"Q","options":[],"answer":"A"}]`)...)

	items, err := questionbank.ValidateUpload(data, nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestValidateUploadMalformed(t *testing.T) {
	input := `[{"question": "Q",]`
	var parseErr error
	var v any
	parseErr = json.Unmarshal([]byte(input), &v)
	require.Error(t, parseErr)

	_, err := questionbank.ValidateUpload([]byte(input), nil)

	assert.ErrorIs(t, err, apperr.ErrMalformedInput)
	assert.Contains(t, err.Error(), parseErr.Error())
}

func TestValidateUploadInvalidUTF8(t *testing.T) {
	_, err := questionbank.ValidateUpload([]byte{'[', 0xff, 0xfe, ']'}, nil)
	assert.ErrorIs(t, err, apperr.ErrMalformedInput)
}

func TestValidateUploadShape(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		message string
	}{
		{"object top level", `{"question":"Q","options":[],"answer":"A"}`, "JSON must be an array of questions"},
		{"string top level", `"questions"`, "JSON must be an array of questions"},
		{"null top level", `null`, "JSON must be an array of questions"},
		{"missing answer", `[{"question":"Q","options":["a"]}]`, "Each question must have question, options (array), and answer fields"},
		{"null answer", `[{"question":"Q","options":["a"],"answer":null}]`, "Each question must have question, options (array), and answer fields"},
		{"null question", `[{"question":null,"options":["a"],"answer":"A"}]`, "Each question must have question, options (array), and answer fields"},
		{"options not array", `[{"question":"Q","options":"a,b","answer":"A"}]`, "Each question must have question, options (array), and answer fields"},
		{"element not object", `[1]`, "Each question must have question, options (array), and answer fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := questionbank.ValidateUpload([]byte(tt.data), nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrInvalidShape)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateUploadAllOrNothing(t *testing.T) {
	data := `[
	  {"question":"Q1","options":["a"],"answer":"A"},
	  {"question":"Q2","options":["a"]},
	  {"question":"Q3","options":["a"],"answer":"A"}
	]`

	items, err := questionbank.ValidateUpload([]byte(data), nil)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, apperr.ErrInvalidShape)
	assert.Contains(t, err.Error(), "invalid items: 1")
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestValidateUploadLargeBank(t *testing.T) {
	const n = 5000
	items := make([]string, n)
	for i := range items {
		items[i] = `{"question":"Q","options":["a","b","c","d"],"answer":"A"}`
	}
	items[n-1] = `{"question":"Q","options":"a,b"}`

	_, err := questionbank.ValidateUpload([]byte("["+strings.Join(items, ",")+"]"), nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidShape)
	assert.Contains(t, err.Error(), fmt.Sprintf("(invalid items: %d)", n-1))

	got, err := questionbank.ValidateUpload([]byte("["+strings.Join(items[:n-1], ",")+"]"), shuffle.New(4))
	require.NoError(t, err)
	assert.Len(t, got, n-1)
}
