package search

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

type fakeMeetingRepo struct {
	meetings []*entities.Meeting
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error {
	f.meetings = append(f.meetings, m)
	return nil
}

func (f *fakeMeetingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	for _, m := range f.meetings {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMeetingRepo) List(ctx context.Context) ([]*entities.Meeting, error) {
	return f.meetings, nil
}

func (f *fakeMeetingRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range f.meetings {
		for _, id := range ids {
			if m.ID == id {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) ListEmbedded(ctx context.Context) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range f.meetings {
		if m.HasEmbedding() {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) UpdateEnrichment(ctx context.Context, id uuid.UUID, e *entities.Enrichment) error {
	for _, m := range f.meetings {
		if m.ID == id {
			m.Apply(e)
			return nil
		}
	}
	return fmt.Errorf("meeting %s not found", id)
}

type fakeEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

func embeddedMeeting(title, summary string, vector []float32) *entities.Meeting {
	m := entities.NewMeeting(title, title+".mp3", "")
	if summary != "" {
		m.Summary = &summary
	}
	v := pgvector.NewVector(vector)
	m.Embedding = &v
	return m
}

func TestSearch_EmptyCorpusIsSuccess(t *testing.T) {
	svc := NewService(&fakeMeetingRepo{}, &fakeEmbedder{vector: []float32{1, 0}}, NewEngine(), nil, nil)

	results, err := svc.Search(context.Background(), "quarterly planning", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_RanksAndShapesResults(t *testing.T) {
	near := embeddedMeeting("sprint review", "short summary", []float32{1, 0})
	far := embeddedMeeting("budget", "other", []float32{0, 1})
	unindexed := entities.NewMeeting("no embedding yet", "a.mp3", "")

	repo := &fakeMeetingRepo{meetings: []*entities.Meeting{far, near, unindexed}}
	svc := NewService(repo, &fakeEmbedder{vector: []float32{1, 0}}, NewEngine(), nil, nil)

	results, err := svc.Search(context.Background(), "sprint", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, near.ID, results[0].MeetingID)
	assert.Equal(t, "sprint review", results[0].Title)
	assert.Equal(t, "short summary", results[0].Excerpt)
	assert.InDelta(t, 1.0, results[0].SimilarityScore, 1e-9)
	assert.Equal(t, far.ID, results[1].MeetingID)
}

func TestSearch_ExcerptTruncatedAt200Chars(t *testing.T) {
	long := strings.Repeat("a", 250)
	m := embeddedMeeting("long", long, []float32{1, 0})
	svc := NewService(&fakeMeetingRepo{meetings: []*entities.Meeting{m}}, &fakeEmbedder{vector: []float32{1, 0}}, NewEngine(), nil, nil)

	results, err := svc.Search(context.Background(), "q", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, strings.Repeat("a", 200)+"...", results[0].Excerpt)
}

func TestSearch_MissingSummaryYieldsEmptyExcerpt(t *testing.T) {
	m := embeddedMeeting("untitled", "", []float32{1, 0})
	svc := NewService(&fakeMeetingRepo{meetings: []*entities.Meeting{m}}, &fakeEmbedder{vector: []float32{1, 0}}, NewEngine(), nil, nil)

	results, err := svc.Search(context.Background(), "q", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "", results[0].Excerpt)
}

func TestSearch_ProviderFailureSurfaced(t *testing.T) {
	m := embeddedMeeting("a", "s", []float32{1, 0})
	embedder := &fakeEmbedder{err: fmt.Errorf("quota exceeded")}
	svc := NewService(&fakeMeetingRepo{meetings: []*entities.Meeting{m}}, embedder, NewEngine(), nil, nil)

	_, err := svc.Search(context.Background(), "q", 5)
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_PROVIDER_FAILED, appErr.Code)
	assert.Equal(t, 1, embedder.calls)
}

func TestSearch_DefaultTopK(t *testing.T) {
	repo := &fakeMeetingRepo{}
	for i := 0; i < 10; i++ {
		repo.meetings = append(repo.meetings, embeddedMeeting(fmt.Sprintf("m%d", i), "s", []float32{1, float32(i) * 0.01}))
	}
	svc := NewService(repo, &fakeEmbedder{vector: []float32{1, 0}}, NewEngine(), nil, nil)

	results, err := svc.Search(context.Background(), "q", 0)
	require.NoError(t, err)
	assert.Len(t, results, DefaultSearchTopK)
}

func TestFindSimilar_ExcludesTarget(t *testing.T) {
	target := embeddedMeeting("target", "s", []float32{1, 0})
	twin := embeddedMeeting("twin", "s", []float32{1, 0})
	other := embeddedMeeting("other", "s", []float32{0, 1})

	repo := &fakeMeetingRepo{meetings: []*entities.Meeting{target, twin, other}}
	svc := NewService(repo, &fakeEmbedder{}, NewEngine(), nil, nil)

	results, err := svc.FindSimilar(context.Background(), target.ID, 3)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NotEqual(t, target.ID, r.MeetingID)
	}
	assert.Equal(t, twin.ID, results[0].MeetingID)
}

func TestFindSimilar_UnknownMeeting(t *testing.T) {
	svc := NewService(&fakeMeetingRepo{}, &fakeEmbedder{}, NewEngine(), nil, nil)

	_, err := svc.FindSimilar(context.Background(), uuid.New(), 3)
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_NOT_FOUND, appErr.Code)
}

func TestFindSimilar_UnindexedTargetYieldsEmptyResult(t *testing.T) {
	target := entities.NewMeeting("not yet enriched", "a.mp3", "")
	other := embeddedMeeting("other", "s", []float32{1, 0})
	repo := &fakeMeetingRepo{meetings: []*entities.Meeting{target, other}}
	svc := NewService(repo, &fakeEmbedder{}, NewEngine(), nil, nil)

	results, err := svc.FindSimilar(context.Background(), target.ID, 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

type fakeCache struct {
	store map[string][]float32
}

func (f *fakeCache) Get(ctx context.Context, text string) ([]float32, bool) {
	v, ok := f.store[text]
	return v, ok
}

func (f *fakeCache) Set(ctx context.Context, text string, vector []float32) {
	f.store[text] = vector
}

func TestSearch_CacheSkipsProvider(t *testing.T) {
	m := embeddedMeeting("a", "s", []float32{1, 0})
	embedder := &fakeEmbedder{vector: []float32{1, 0}}
	cache := &fakeCache{store: map[string][]float32{}}
	svc := NewService(&fakeMeetingRepo{meetings: []*entities.Meeting{m}}, embedder, NewEngine(), cache, nil)

	_, err := svc.Search(context.Background(), "repeated query", 5)
	require.NoError(t, err)
	_, err = svc.Search(context.Background(), "repeated query", 5)
	require.NoError(t, err)

	assert.Equal(t, 1, embedder.calls)
}
