package entities

import "time"

// IndexDocument is the metadata row for the single persisted index.
// A successful re-process replaces it together with all of its chunks.
type IndexDocument struct {
	DocID      uint   `gorm:"primaryKey" json:"doc_id"`
	SourceURL  string `json:"source_url"`
	ChunkCount int    `json:"chunk_count"`
	Dimension  int    `json:"dimension"`
	CreatedAt  time.Time
}

type IndexChunk struct {
	ChunkID   uint   `gorm:"primaryKey" json:"chunk_id"`
	DocID     uint   `gorm:"index" json:"doc_id"`
	Ord       int    `json:"ord"`
	Text      string `json:"text"`
	Embedding []byte `json:"-"`
	CreatedAt time.Time
}
