package service

import (
	"errors"

	"docqa/entities"
)

// ErrEmptyDocument means extraction produced no text, so there is nothing
// to chunk or index. Document processing aborts on it.
var ErrEmptyDocument = errors.New("no extractable text in document")

// QAService is the retrieval-augmented answering pipeline.
type QAService interface {
	// Run answers all questions against an ephemeral index built from text
	// and discarded when the call returns. A per-question answering failure
	// becomes an error-string record and never aborts sibling questions.
	Run(text string, questions []string) ([]entities.AnswerRecord, error)

	// ProcessDocument chunks, embeds and persists text as the single durable
	// index, replacing any prior one. Returns the number of chunks indexed.
	// Nothing is persisted on failure.
	ProcessDocument(text, sourceURL string) (int, error)

	// Query answers one question against the persisted index. A missing
	// index yields a fixed user-facing answer, not an error; any other
	// failure is returned to the caller of this one question.
	Query(question string) (entities.AnswerRecord, error)
}
