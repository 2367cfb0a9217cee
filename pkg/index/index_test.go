package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex() *VectorIndex {
	return &VectorIndex{
		Chunks: []string{"north", "east", "diagonal", "north again"},
		Vectors: [][]float32{
			{0, 1},
			{1, 0},
			{1, 1},
			{0, 2},
		},
	}
}

func TestSearch_OrdersByScore(t *testing.T) {
	ix := newTestIndex()
	hits := ix.Search([]float32{0, 1}, 3)

	require.Len(t, hits, 3)
	// both pure-north vectors score 1.0; stable sort keeps chunk order
	assert.Equal(t, "north", hits[0].Text)
	assert.Equal(t, "north again", hits[1].Text)
	assert.Equal(t, "diagonal", hits[2].Text)
	for i := 1; i < len(hits); i++ {
		assert.LessOrEqual(t, hits[i].Score, hits[i-1].Score)
	}
}

func TestSearch_KLargerThanIndex(t *testing.T) {
	ix := newTestIndex()
	hits := ix.Search([]float32{1, 0}, 10)
	assert.Len(t, hits, len(ix.Chunks))
}

func TestSearch_AtMostK(t *testing.T) {
	ix := newTestIndex()
	assert.Len(t, ix.Search([]float32{1, 1}, 2), 2)
	assert.Empty(t, ix.Search([]float32{1, 1}, 0))
}

func TestSearch_NilAndEmpty(t *testing.T) {
	var ix *VectorIndex
	assert.Nil(t, ix.Search([]float32{1}, 3))
	assert.Nil(t, (&VectorIndex{}).Search([]float32{1}, 3))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{2, 0}, []float32{5, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosine([]float32{1, 0}, []float32{-3, 0}), 1e-9)
	assert.Zero(t, cosine([]float32{0, 0}, []float32{1, 1}))
}
