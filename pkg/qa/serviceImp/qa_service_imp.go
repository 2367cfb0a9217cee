package serviceImp

import (
	"errors"
	"log"

	"docqa/entities"
	"docqa/pkg/answer"
	"docqa/pkg/chunker"
	"docqa/pkg/index"
	indexSvc "docqa/pkg/index/service"
	"docqa/pkg/qa/service"
)

// NoIndexAnswer is returned verbatim when a query arrives before any
// document was ever processed.
const NoIndexAnswer = "Error: Vector store not found. Please process the document first."

type Svc struct {
	idx     indexSvc.IndexService
	ans     *answer.Answerer
	maxLen  int
	overlap int
	topK    int
}

func New(idx indexSvc.IndexService, ans *answer.Answerer, maxLen, overlap, topK int) *Svc {
	return &Svc{idx: idx, ans: ans, maxLen: maxLen, overlap: overlap, topK: topK}
}

func (s *Svc) Run(text string, questions []string) ([]entities.AnswerRecord, error) {
	chunks := chunker.Split(text, s.maxLen, s.overlap)
	if len(chunks) == 0 {
		return nil, service.ErrEmptyDocument
	}
	ix, err := s.idx.Build(chunks)
	if err != nil {
		return nil, err
	}
	log.Printf("[qa] ephemeral index built: %d chunks", len(chunks))

	records := make([]entities.AnswerRecord, len(questions))
	for i, q := range questions {
		rec, err := s.answerAgainst(ix, q)
		if err != nil {
			log.Printf("[qa] question %d failed: %v", i, err)
			rec = entities.AnswerRecord{Answer: "An error occurred: " + err.Error(), Sources: []string{}}
		}
		records[i] = rec
	}
	return records, nil
}

func (s *Svc) ProcessDocument(text, sourceURL string) (int, error) {
	chunks := chunker.Split(text, s.maxLen, s.overlap)
	if len(chunks) == 0 {
		return 0, service.ErrEmptyDocument
	}
	ix, err := s.idx.Build(chunks)
	if err != nil {
		return 0, err
	}
	if err := s.idx.Persist(ix, sourceURL); err != nil {
		return 0, err
	}
	log.Printf("[qa] persisted index: %d chunks from %s", len(chunks), sourceURL)
	return len(chunks), nil
}

func (s *Svc) Query(question string) (entities.AnswerRecord, error) {
	ix, err := s.idx.Load()
	if errors.Is(err, index.ErrNotFound) {
		return entities.AnswerRecord{Answer: NoIndexAnswer, Sources: []string{}}, nil
	}
	if err != nil {
		return entities.AnswerRecord{}, err
	}
	return s.answerAgainst(ix, question)
}

func (s *Svc) answerAgainst(ix *index.VectorIndex, question string) (entities.AnswerRecord, error) {
	hits, err := s.idx.Retrieve(ix, question, s.topK)
	if err != nil {
		return entities.AnswerRecord{}, err
	}
	ctx := make([]string, len(hits))
	for i, h := range hits {
		ctx[i] = h.Text
	}
	return s.ans.Answer(question, ctx)
}
