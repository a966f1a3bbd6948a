package search

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	v := []float32{0.5, 0.3, 0.2}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarity_OppositeVectors(t *testing.T) {
	a := []float32{1, 2}
	b := []float32{-1, -2}
	assert.InDelta(t, -1.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	a := []float32{0, 0, 0}
	b := []float32{1, 2, 3}
	assert.Equal(t, 0.0, CosineSimilarity(a, b))
	assert.Equal(t, 0.0, CosineSimilarity(b, a))
	assert.Equal(t, 0.0, CosineSimilarity(a, a))
}

func TestCosineSimilarity_LengthMismatch(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, CosineSimilarity(nil, []float32{1}))
}

func TestRank_SortedDescendingAndTruncated(t *testing.T) {
	engine := NewEngine()
	query := []float32{1, 0}

	candidates := []Candidate{
		{ID: uuid.New(), Vector: []float32{0, 1}},      // orthogonal, 0.0
		{ID: uuid.New(), Vector: []float32{1, 0}},      // identical, 1.0
		{ID: uuid.New(), Vector: []float32{1, 1}},      // ~0.707
		{ID: uuid.New(), Vector: []float32{-1, 0}},     // opposite, -1.0
		{ID: uuid.New(), Vector: []float32{0.9, 0.1}},  // high
		{ID: uuid.New(), Vector: []float32{0.1, 0.9}},  // low
	}

	matches := engine.Rank(query, candidates, 4)
	require.Len(t, matches, 4)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
	assert.Equal(t, candidates[1].ID, matches[0].ID)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
}

func TestRank_ZeroVectorCandidateDoesNotPanic(t *testing.T) {
	engine := NewEngine()
	id := uuid.New()

	matches := engine.Rank([]float32{1, 2, 3}, []Candidate{{ID: id, Vector: []float32{0, 0, 0}}}, 5)
	require.Len(t, matches, 1)
	assert.Equal(t, id, matches[0].ID)
	assert.Equal(t, 0.0, matches[0].Score)
}

func TestRank_StableOnExactTies(t *testing.T) {
	engine := NewEngine()
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()

	// Same direction, different magnitude: identical cosine scores.
	candidates := []Candidate{
		{ID: first, Vector: []float32{2, 2}},
		{ID: second, Vector: []float32{1, 1}},
		{ID: third, Vector: []float32{4, 4}},
	}

	matches := engine.Rank([]float32{1, 1}, candidates, 3)
	require.Len(t, matches, 3)
	assert.Equal(t, first, matches[0].ID)
	assert.Equal(t, second, matches[1].ID)
	assert.Equal(t, third, matches[2].ID)
}

func TestRank_EmptyAndDegenerateInputs(t *testing.T) {
	engine := NewEngine()

	assert.Empty(t, engine.Rank([]float32{1}, nil, 5))
	assert.Empty(t, engine.Rank([]float32{1}, []Candidate{{ID: uuid.New(), Vector: []float32{1}}}, 0))

	matches := engine.Rank([]float32{1}, []Candidate{{ID: uuid.New(), Vector: []float32{1}}}, 10)
	assert.Len(t, matches, 1)
}
