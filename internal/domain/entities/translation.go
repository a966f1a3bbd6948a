package entities

import (
	"time"

	"github.com/google/uuid"
)

// Translation is a cached translation of a meeting transcription.
// At most one logical row exists per (meeting_id, target_language);
// lookup-before-create enforces this, not a DB constraint.
type Translation struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID      uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	TargetLanguage string    `json:"target_language" gorm:"type:varchar(20);not null"`
	TranslatedText string    `json:"translated_text" gorm:"type:text;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Translation
func (Translation) TableName() string {
	return "translations"
}

// NewTranslation creates a new Translation entity
func NewTranslation(meetingID uuid.UUID, targetLanguage, translatedText string) *Translation {
	return &Translation{
		ID:             uuid.New(),
		MeetingID:      meetingID,
		TargetLanguage: targetLanguage,
		TranslatedText: translatedText,
		CreatedAt:      time.Now().UTC(),
	}
}
