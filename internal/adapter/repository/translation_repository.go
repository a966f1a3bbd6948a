package repository

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	repo "github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
)

type translationRepository struct {
	db *gorm.DB
}

// NewTranslationRepository creates a translation repository backed by GORM
func NewTranslationRepository(db *gorm.DB) repo.TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) Create(ctx context.Context, translation *entities.Translation) error {
	return r.db.WithContext(ctx).Create(translation).Error
}

func (r *translationRepository) GetByMeetingAndLanguage(ctx context.Context, meetingID uuid.UUID, targetLanguage string) (*entities.Translation, error) {
	var translation entities.Translation
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND target_language = ?", meetingID, targetLanguage).
		First(&translation).Error
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &translation, nil
}

func (r *translationRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Translation, error) {
	var translations []*entities.Translation
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&translations).Error
	if err != nil {
		return nil, err
	}
	return translations, nil
}
