package aiquiz

import (
	"fmt"
	"strings"
)

const quizQuestionCount = 10

const quizPromptTemplate = `
You are an expert in AWS and cloud computing. Your task is to generate a quiz for AWS certification preparation.
Follow the style of Tutorials Dojo practice exams.
Create %d multiple-choice AWS quiz questions based on these topics: %s.
Each question could be scenario-based or theoretical.
Each question should have:
- A question string
- 4 answer options
- An integer index (0-3) of the correct answer
- A brief explanation

Format the output as a JSON array and nothing else:
[
  {
    "question": "...",
    "options": ["...", "...", "...", "..."],
    "correct": 2,
    "explanation": "..."
  }
]
`

func BuildQuizPrompt(topics []string) string {
	return fmt.Sprintf(quizPromptTemplate, quizQuestionCount, strings.Join(topics, ", "))
}
