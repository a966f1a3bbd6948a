package insights

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

type fakeMeetingRepo struct {
	meetings []*entities.Meeting
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error { return nil }

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
	return nil, nil
}

func (f *fakeMeetingRepo) UpdateEnrichment(ctx context.Context, id uuid.UUID, e *entities.Enrichment) error {
	return nil
}

func meetingWithItems(title string, items []entities.ActionItem, decisions []entities.Decision) *entities.Meeting {
	m := entities.NewMeeting(title, title+".mp3", "")
	m.ActionItems = items
	m.Decisions = decisions
	return m
}

func TestAggregate_GroupsActionItemsByOwnerInMeetingOrder(t *testing.T) {
	m1 := meetingWithItems("kickoff",
		[]entities.ActionItem{{Task: "write proposal", Owner: "John"}},
		nil)
	m2 := meetingWithItems("followup",
		[]entities.ActionItem{{Task: "review proposal", Owner: "John"}},
		[]entities.Decision{{Decision: "ship in Q3"}})

	repo := &fakeMeetingRepo{meetings: []*entities.Meeting{m1, m2}}
	svc := NewService(repo, nil)

	insights, err := svc.Aggregate(context.Background(), []uuid.UUID{m1.ID, m2.ID})
	require.NoError(t, err)

	assert.Equal(t, 2, insights.TotalMeetings)
	assert.Equal(t, 2, insights.TotalActionItems)
	assert.Equal(t, 1, insights.TotalDecisions)

	johns := insights.ActionItemsByOwner["John"]
	require.Len(t, johns, 2)
	assert.Equal(t, "write proposal", johns[0].Task)
	assert.Equal(t, "review proposal", johns[1].Task)
}

func TestAggregate_UnassignedSentinel(t *testing.T) {
	m := meetingWithItems("standup",
		[]entities.ActionItem{{Task: "fix flaky test"}, {Task: "deploy", Owner: "Ana"}},
		nil)
	repo := &fakeMeetingRepo{meetings: []*entities.Meeting{m}}
	svc := NewService(repo, nil)

	insights, err := svc.Aggregate(context.Background(), []uuid.UUID{m.ID})
	require.NoError(t, err)

	require.Len(t, insights.ActionItemsByOwner[entities.OwnerUnassigned], 1)
	assert.Equal(t, "fix flaky test", insights.ActionItemsByOwner[entities.OwnerUnassigned][0].Task)
	require.Len(t, insights.ActionItemsByOwner["Ana"], 1)
}

func TestAggregate_UnknownIDsSilentlySkipped(t *testing.T) {
	m := meetingWithItems("planning", []entities.ActionItem{{Task: "a"}}, nil)
	repo := &fakeMeetingRepo{meetings: []*entities.Meeting{m}}
	svc := NewService(repo, nil)

	insights, err := svc.Aggregate(context.Background(), []uuid.UUID{uuid.New(), m.ID, uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, 1, insights.TotalMeetings)
	assert.Equal(t, 1, insights.TotalActionItems)
	require.Len(t, insights.Meetings, 1)
	assert.Equal(t, m.ID, insights.Meetings[0].ID)
}

func TestAggregate_EmptyInput(t *testing.T) {
	svc := NewService(&fakeMeetingRepo{}, nil)

	insights, err := svc.Aggregate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, insights.TotalMeetings)
	assert.Empty(t, insights.ActionItemsByOwner)
	assert.Empty(t, insights.Meetings)
}
