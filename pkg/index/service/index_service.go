package service

import "docqa/pkg/index"

// IndexService builds, persists, loads and queries the semantic index.
type IndexService interface {
	// Build embeds every chunk and assembles an in-memory index.
	// All-or-nothing: any embedding failure discards partial work.
	Build(chunks []string) (*index.VectorIndex, error)
	// Persist atomically replaces the persisted index with ix.
	Persist(ix *index.VectorIndex, sourceURL string) error
	// Load reads back the last persisted index; index.ErrNotFound when none
	// was ever persisted.
	Load() (*index.VectorIndex, error)
	// Retrieve embeds the query and returns the topK most similar chunks.
	Retrieve(ix *index.VectorIndex, query string, topK int) ([]index.Hit, error)
}
