package questionbank

import (
	"fmt"
	"strings"
)

const generationTemplate = `Generate exactly %d multiple-choice questions about "%s".
%sEach question must have exactly 4 options. Prefix the options with "A) ", "B) ", "C) " and "D) ".
Exactly one option is correct.

Respond with a JSON array only, using this exact schema for every element:
[
  {
    "question": "<question text>",
    "options": ["A) ...", "B) ...", "C) ...", "D) ..."],
    "answer": "<single letter: A, B, C or D>",
    "series": "%s",
    "citation": "<source that supports the answer, or an empty string>"
  }
]`

// BuildGenerationPrompt renders the instruction sent to the completion API.
func BuildGenerationPrompt(topic, prompt string, count int) string {
	instructions := ""
	if p := strings.TrimSpace(prompt); p != "" {
		instructions = fmt.Sprintf("Follow these instructions when writing the questions: %s\n", p)
	}
	return fmt.Sprintf(generationTemplate, count, topic, instructions, topic)
}
