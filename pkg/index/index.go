package index

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptyInput is returned when a build is attempted over zero chunks.
	ErrEmptyInput = errors.New("no chunks to index")
	// ErrNotFound is returned by Load when no index was ever persisted. It is
	// an expected condition, not a storage fault.
	ErrNotFound = errors.New("index not found")
	// ErrStorage marks a durable-storage failure during persist or load.
	ErrStorage = errors.New("index storage error")
)

// VectorIndex holds one embedding per chunk, in original chunk order. It is
// immutable after construction and safe for concurrent searches.
type VectorIndex struct {
	Chunks  []string
	Vectors [][]float32
}

// Hit is one retrieved chunk with its similarity score.
type Hit struct {
	Ord   int
	Text  string
	Score float64
}

// Search returns the k chunks most similar to qvec by cosine similarity,
// ordered by non-increasing score with ties broken by chunk order. Fewer
// than k chunks means all of them are returned.
func (ix *VectorIndex) Search(qvec []float32, k int) []Hit {
	if ix == nil || len(ix.Chunks) == 0 || k <= 0 {
		return nil
	}
	hits := make([]Hit, len(ix.Chunks))
	for i := range ix.Chunks {
		hits[i] = Hit{Ord: i, Text: ix.Chunks[i], Score: cosine(ix.Vectors[i], qvec)}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k]
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := 0; i < len(a) && i < len(b); i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
