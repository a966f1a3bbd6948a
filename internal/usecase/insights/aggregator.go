package insights

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
)

// Service aggregates structured meeting fields across a set of meetings.
// No ranking, no external calls.
type Service struct {
	meetingRepo repositories.MeetingRepository
	logger      *zap.Logger
}

// NewService constructs the insights service
func NewService(meetingRepo repositories.MeetingRepository, logger *zap.Logger) *Service {
	return &Service{meetingRepo: meetingRepo, logger: logger}
}

// Aggregate groups action items by owner and counts decisions across the
// requested meetings. Unknown ids are silently skipped; totals reflect only
// the meetings actually found. Concatenation follows input meeting order.
func (s *Service) Aggregate(ctx context.Context, meetingIDs []uuid.UUID) (*entities.CrossMeetingInsights, error) {
	found, err := s.meetingRepo.ListByIDs(ctx, meetingIDs)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list meetings by ids", err)
	}

	byID := make(map[uuid.UUID]*entities.Meeting, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}

	insights := &entities.CrossMeetingInsights{
		ActionItemsByOwner: make(map[string][]entities.ActionItem),
		Meetings:           make([]entities.MeetingRef, 0, len(found)),
	}

	for _, id := range meetingIDs {
		m, ok := byID[id]
		if !ok {
			continue
		}

		insights.TotalMeetings++
		insights.TotalDecisions += len(m.Decisions)
		insights.Meetings = append(insights.Meetings, entities.MeetingRef{
			ID:    m.ID,
			Title: m.Title,
			Date:  m.CreatedAt,
		})

		for _, item := range m.ActionItems {
			owner := item.Owner
			if owner == "" {
				owner = entities.OwnerUnassigned
			}
			insights.ActionItemsByOwner[owner] = append(insights.ActionItemsByOwner[owner], item)
			insights.TotalActionItems++
		}
	}

	if s.logger != nil {
		s.logger.Info("cross-meeting insights aggregated",
			zap.Int("requested", len(meetingIDs)),
			zap.Int("found", insights.TotalMeetings),
		)
	}
	return insights, nil
}
