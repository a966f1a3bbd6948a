package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// ActionItem is a single task extracted from a meeting transcript
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner,omitempty"`
	Deadline string `json:"deadline,omitempty"`
}

// Decision is a decision made during a meeting
type Decision struct {
	Decision string `json:"decision"`
	Context  string `json:"context,omitempty"`
}

// Meeting is the stored meeting record. A meeting is created with title and
// audio reference only; the remaining fields are filled by enrichment.
// The embedding is internal and never serialized to API callers.
type Meeting struct {
	ID               uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title            string           `json:"title" gorm:"type:varchar(500);not null;index"`
	AudioFilename    string           `json:"audio_filename,omitempty" gorm:"type:varchar(500)"`
	AudioURL         string           `json:"audio_url,omitempty" gorm:"type:text"`
	Language         string           `json:"language" gorm:"type:varchar(20);default:'en'"`
	Transcription    *string          `json:"transcription,omitempty" gorm:"type:text"`
	Summary          *string          `json:"summary,omitempty" gorm:"type:text"`
	ActionItems      []ActionItem     `json:"action_items,omitempty" gorm:"type:jsonb;serializer:json"`
	Decisions        []Decision       `json:"decisions,omitempty" gorm:"type:jsonb;serializer:json"`
	Embedding        *pgvector.Vector `json:"-" gorm:"type:vector(1536)"`
	VisualSummaryURL *string          `json:"visual_summary_url,omitempty" gorm:"type:text"`
	AnalysisRaw      datatypes.JSON   `json:"-" gorm:"type:jsonb"`
	CreatedAt        time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a new pre-enrichment meeting record
func NewMeeting(title, audioFilename, audioURL string) *Meeting {
	return &Meeting{
		ID:            uuid.New(),
		Title:         title,
		AudioFilename: audioFilename,
		AudioURL:      audioURL,
		Language:      "en",
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
}

// HasEmbedding reports whether the meeting has been indexed. A meeting
// without an embedding is excluded from similarity candidate sets.
func (m *Meeting) HasEmbedding() bool {
	return m.Embedding != nil && len(m.Embedding.Slice()) > 0
}

// EmbeddingVector returns the raw vector, or nil when not yet indexed
func (m *Meeting) EmbeddingVector() []float32 {
	if m.Embedding == nil {
		return nil
	}
	return m.Embedding.Slice()
}

// Enrichment holds the fields produced by one enrichment run. It is
// accumulated in memory and committed as a single unit; a failed run
// commits nothing.
type Enrichment struct {
	Transcription    string
	Summary          string
	ActionItems      []ActionItem
	Decisions        []Decision
	Embedding        pgvector.Vector
	VisualSummaryURL *string
	AnalysisRaw      datatypes.JSON
}

// Apply merges the enrichment into the meeting in memory
func (m *Meeting) Apply(e *Enrichment) {
	transcription := e.Transcription
	summary := e.Summary
	embedding := e.Embedding
	m.Transcription = &transcription
	m.Summary = &summary
	m.ActionItems = e.ActionItems
	m.Decisions = e.Decisions
	m.Embedding = &embedding
	m.VisualSummaryURL = e.VisualSummaryURL
	m.AnalysisRaw = e.AnalysisRaw
}
