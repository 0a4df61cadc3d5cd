package aiquiz

// IndexedQuestion marks the right option by its position in Options.
type IndexedQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

type QuizRequest struct {
	Topics []string `json:"topics"`
}

type QuizResponse struct {
	Questions []IndexedQuestion `json:"questions"`
}
