package search

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
)

const (
	// DefaultSearchTopK is the result count for free-text search
	DefaultSearchTopK = 5
	// DefaultSimilarTopK is the result count for similar-meeting lookups
	DefaultSimilarTopK = 3

	excerptLength = 200
)

// Embedder maps query text to a fixed-length vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingCache caches query vectors for repeated searches. Implementations
// must be best-effort: a miss or backend failure only costs a provider call.
type EmbeddingCache interface {
	Get(ctx context.Context, text string) ([]float32, bool)
	Set(ctx context.Context, text string, vector []float32)
}

// Result is one ranked search hit
type Result struct {
	MeetingID       uuid.UUID `json:"meeting_id"`
	Title           string    `json:"title"`
	Excerpt         string    `json:"excerpt"`
	SimilarityScore float64   `json:"similarity_score"`
	CreatedAt       time.Time `json:"created_at"`
}

// Service orchestrates semantic retrieval: it obtains a query vector, loads
// the candidate set and delegates ranking to the similarity engine.
type Service struct {
	meetingRepo repositories.MeetingRepository
	embedder    Embedder
	ranker      Ranker
	cache       EmbeddingCache
	logger      *zap.Logger
}

// NewService constructs the retrieval service. cache may be nil.
func NewService(
	meetingRepo repositories.MeetingRepository,
	embedder Embedder,
	ranker Ranker,
	cache EmbeddingCache,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		embedder:    embedder,
		ranker:      ranker,
		cache:       cache,
		logger:      logger,
	}
}

// Search runs a free-text semantic search over all indexed meetings. An
// empty corpus yields an empty result, not an error. Provider failures are
// surfaced to the caller without retry.
func (s *Service) Search(ctx context.Context, query string, topK int) ([]Result, error) {
	if topK <= 0 {
		topK = DefaultSearchTopK
	}

	queryVector, err := s.queryEmbedding(ctx, query)
	if err != nil {
		return nil, apperrors.ErrProviderFailed("embedding", err)
	}

	meetings, err := s.meetingRepo.ListEmbedded(ctx)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list embedded meetings", err)
	}
	if len(meetings) == 0 {
		return []Result{}, nil
	}

	results := s.rankAndFormat(queryVector, meetings, topK)

	if s.logger != nil {
		s.logger.Info("semantic search completed",
			zap.Int("candidates", len(meetings)),
			zap.Int("results", len(results)),
		)
	}
	return results, nil
}

// FindSimilar returns the meetings nearest to an existing one. A target
// without an embedding is simply not yet indexed and yields an empty result.
// The target itself is never a candidate.
func (s *Service) FindSimilar(ctx context.Context, meetingID uuid.UUID, topK int) ([]Result, error) {
	if topK <= 0 {
		topK = DefaultSimilarTopK
	}

	target, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("get meeting", err)
	}
	if target == nil {
		return nil, apperrors.ErrNotFound("Meeting").WithDetail("meeting_id", meetingID.String())
	}
	if !target.HasEmbedding() {
		return []Result{}, nil
	}

	meetings, err := s.meetingRepo.ListEmbedded(ctx)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list embedded meetings", err)
	}

	candidates := make([]*entities.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if m.ID != meetingID {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return []Result{}, nil
	}

	return s.rankAndFormat(target.EmbeddingVector(), candidates, topK), nil
}

func (s *Service) rankAndFormat(queryVector []float32, meetings []*entities.Meeting, topK int) []Result {
	byID := make(map[uuid.UUID]*entities.Meeting, len(meetings))
	candidates := make([]Candidate, 0, len(meetings))
	for _, m := range meetings {
		byID[m.ID] = m
		candidates = append(candidates, Candidate{ID: m.ID, Vector: m.EmbeddingVector()})
	}

	matches := s.ranker.Rank(queryVector, candidates, topK)

	results := make([]Result, 0, len(matches))
	for _, match := range matches {
		m := byID[match.ID]
		results = append(results, Result{
			MeetingID:       m.ID,
			Title:           m.Title,
			Excerpt:         summaryExcerpt(m.Summary),
			SimilarityScore: match.Score,
			CreatedAt:       m.CreatedAt,
		})
	}
	return results
}

func (s *Service) queryEmbedding(ctx context.Context, query string) ([]float32, error) {
	if s.cache != nil {
		if vector, ok := s.cache.Get(ctx, query); ok {
			return vector, nil
		}
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, query, vector)
	}
	return vector, nil
}

// summaryExcerpt returns the first 200 characters of the summary with an
// ellipsis marker when truncated, and an empty string when the summary is
// absent (never null in output).
func summaryExcerpt(summary *string) string {
	if summary == nil {
		return ""
	}
	runes := []rune(*summary)
	if len(runes) <= excerptLength {
		return *summary
	}
	return string(runes[:excerptLength]) + "..."
}
