package search

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Candidate is one stored vector considered for ranking. Candidates are
// always passed as an explicit slice so the brute-force engine can be swapped
// for an indexed nearest-neighbor structure without touching callers.
type Candidate struct {
	ID     uuid.UUID
	Vector []float32
}

// Match is a ranked candidate
type Match struct {
	ID    uuid.UUID
	Score float64
}

// Ranker orders candidates by similarity to a query vector
type Ranker interface {
	Rank(query []float32, candidates []Candidate, topK int) []Match
}

// Engine is the brute-force cosine similarity ranker, O(N*D) per query
type Engine struct{}

// NewEngine creates a brute-force similarity engine
func NewEngine() *Engine {
	return &Engine{}
}

// Rank scores every candidate against the query and returns the topK best,
// descending by score. Exact ties keep their input order. Zero vectors score
// 0.0 rather than erroring.
func (e *Engine) Rank(query []float32, candidates []Candidate, topK int) []Match {
	if topK <= 0 || len(candidates) == 0 {
		return []Match{}
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, Match{
			ID:    c.ID,
			Score: CosineSimilarity(query, c.Vector),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// CosineSimilarity computes dot(a,b) / (|a|*|b|). It is defined as 0.0 for
// zero vectors and mismatched lengths instead of being an error.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
