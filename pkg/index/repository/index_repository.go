package repository

import "docqa/entities"

// IndexRepository persists the single semantic index. Replace swaps the
// whole index atomically; Snapshot reads back whatever was last persisted.
type IndexRepository interface {
	Replace(doc *entities.IndexDocument, chunks []entities.IndexChunk) error
	Snapshot() (*entities.IndexDocument, []entities.IndexChunk, error)
}
