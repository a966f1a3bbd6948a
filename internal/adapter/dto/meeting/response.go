package meeting

import (
	"time"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// MeetingResponse is the public shape of a meeting. The embedding vector is
// internal and never serialized.
type MeetingResponse struct {
	ID               string                `json:"id"`
	Title            string                `json:"title"`
	AudioURL         string                `json:"audio_url"`
	Language         string                `json:"language"`
	Transcription    *string               `json:"transcription,omitempty"`
	Summary          *string               `json:"summary,omitempty"`
	ActionItems      []entities.ActionItem `json:"action_items"`
	Decisions        []entities.Decision   `json:"decisions"`
	VisualSummaryURL *string               `json:"visual_summary_url,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// ListMeetingsResponse wraps the meeting collection
type ListMeetingsResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
	Total    int               `json:"total"`
}

// TranslationResponse is the public shape of a stored translation
type TranslationResponse struct {
	ID             string    `json:"id"`
	MeetingID      string    `json:"meeting_id"`
	TargetLanguage string    `json:"target_language"`
	TranslatedText string    `json:"translated_text"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListTranslationsResponse wraps all translations of one meeting
type ListTranslationsResponse struct {
	Translations []TranslationResponse `json:"translations"`
	Total        int                   `json:"total"`
}
