package entities

// AnswerRecord is the result of answering one question: the answer text plus
// the verbatim context excerpts that justify it. Never persisted.
type AnswerRecord struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}
