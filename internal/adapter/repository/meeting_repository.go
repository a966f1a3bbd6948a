package repository

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	repo "github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
)

type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a meeting repository backed by GORM
func NewMeetingRepository(db *gorm.DB) repo.MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

func (r *meetingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

func (r *meetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *meetingRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Meeting, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *meetingRepository) ListEmbedded(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Where("embedding IS NOT NULL").
		Order("created_at ASC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *meetingRepository) UpdateEnrichment(ctx context.Context, id uuid.UUID, enrichment *entities.Enrichment) error {
	// Single transaction so concurrent readers never observe a
	// partially enriched row.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update := entities.Meeting{
			Transcription:    &enrichment.Transcription,
			Summary:          &enrichment.Summary,
			ActionItems:      enrichment.ActionItems,
			Decisions:        enrichment.Decisions,
			Embedding:        &enrichment.Embedding,
			VisualSummaryURL: enrichment.VisualSummaryURL,
			AnalysisRaw:      enrichment.AnalysisRaw,
		}
		res := tx.Model(&entities.Meeting{}).
			Where("id = ?", id).
			Select("transcription", "summary", "action_items", "decisions",
				"embedding", "visual_summary_url", "analysis_raw", "updated_at").
			Updates(update)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
