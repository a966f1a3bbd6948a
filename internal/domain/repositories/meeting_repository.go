package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// MeetingRepository defines persistence operations for meetings.
// Lookups return (nil, nil) when no row matches.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *entities.Meeting) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)
	// List returns all meetings, newest first.
	List(ctx context.Context) ([]*entities.Meeting, error)
	// ListByIDs returns the meetings that exist among the given ids.
	// Unknown ids are skipped, not an error.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Meeting, error)
	// ListEmbedded returns all meetings that have a computed embedding,
	// the candidate set for similarity ranking.
	ListEmbedded(ctx context.Context) ([]*entities.Meeting, error)
	// UpdateEnrichment commits all enrichment fields in a single
	// transaction. Readers see the pre-enrichment or fully enriched row,
	// never an intermediate state.
	UpdateEnrichment(ctx context.Context, id uuid.UUID, enrichment *entities.Enrichment) error
}

// TranslationRepository defines persistence operations for translations
type TranslationRepository interface {
	Create(ctx context.Context, translation *entities.Translation) error
	GetByMeetingAndLanguage(ctx context.Context, meetingID uuid.UUID, targetLanguage string) (*entities.Translation, error)
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Translation, error)
}
