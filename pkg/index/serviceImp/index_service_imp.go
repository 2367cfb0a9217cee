package serviceImp

import (
	"fmt"

	"docqa/entities"
	"docqa/pkg/embedder"
	"docqa/pkg/index"
	"docqa/pkg/index/repository"
)

type Svc struct {
	r   repository.IndexRepository
	emb embedder.Embedder
}

func New(r repository.IndexRepository, e embedder.Embedder) *Svc {
	return &Svc{r: r, emb: e}
}

func (s *Svc) Build(chunks []string) (*index.VectorIndex, error) {
	if len(chunks) == 0 {
		return nil, index.ErrEmptyInput
	}
	vecs, err := s.emb.Embed(chunks)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(chunks) {
		return nil, fmt.Errorf("%w: %d vectors for %d chunks", embedder.ErrProvider, len(vecs), len(chunks))
	}
	return &index.VectorIndex{Chunks: chunks, Vectors: vecs}, nil
}

func (s *Svc) Persist(ix *index.VectorIndex, sourceURL string) error {
	if ix == nil || len(ix.Chunks) == 0 {
		return index.ErrEmptyInput
	}
	doc := &entities.IndexDocument{
		SourceURL:  sourceURL,
		ChunkCount: len(ix.Chunks),
		Dimension:  len(ix.Vectors[0]),
	}
	rows := make([]entities.IndexChunk, len(ix.Chunks))
	for i := range ix.Chunks {
		rows[i] = entities.IndexChunk{
			Ord:       i,
			Text:      ix.Chunks[i],
			Embedding: embedder.FloatsToBytes(ix.Vectors[i]),
		}
	}
	if err := s.r.Replace(doc, rows); err != nil {
		return fmt.Errorf("%w: %v", index.ErrStorage, err)
	}
	return nil
}

func (s *Svc) Load() (*index.VectorIndex, error) {
	doc, rows, err := s.r.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", index.ErrStorage, err)
	}
	if doc == nil || len(rows) == 0 {
		return nil, index.ErrNotFound
	}
	ix := &index.VectorIndex{
		Chunks:  make([]string, len(rows)),
		Vectors: make([][]float32, len(rows)),
	}
	for i, row := range rows {
		ix.Chunks[i] = row.Text
		ix.Vectors[i] = embedder.BytesToFloats(row.Embedding)
	}
	return ix, nil
}

func (s *Svc) Retrieve(ix *index.VectorIndex, query string, topK int) ([]index.Hit, error) {
	vecs, err := s.emb.Embed([]string{query})
	if err != nil {
		return nil, err
	}
	return ix.Search(vecs[0], topK), nil
}
