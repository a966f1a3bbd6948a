package presenter

import (
	insightsDTO "github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/insights"
	meetingDTO "github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/meeting"
	searchDTO "github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/search"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	searchUsecase "github.com/johnquangdev/meeting-intelligence/internal/usecase/search"
)

// ToMeetingResponse maps a meeting entity to its public shape
func ToMeetingResponse(m *entities.Meeting) meetingDTO.MeetingResponse {
	actionItems := m.ActionItems
	if actionItems == nil {
		actionItems = []entities.ActionItem{}
	}
	decisions := m.Decisions
	if decisions == nil {
		decisions = []entities.Decision{}
	}

	return meetingDTO.MeetingResponse{
		ID:               m.ID.String(),
		Title:            m.Title,
		AudioURL:         m.AudioURL,
		Language:         m.Language,
		Transcription:    m.Transcription,
		Summary:          m.Summary,
		ActionItems:      actionItems,
		Decisions:        decisions,
		VisualSummaryURL: m.VisualSummaryURL,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToListMeetingsResponse maps a meeting collection
func ToListMeetingsResponse(meetings []*entities.Meeting) meetingDTO.ListMeetingsResponse {
	out := make([]meetingDTO.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToMeetingResponse(m))
	}
	return meetingDTO.ListMeetingsResponse{Meetings: out, Total: len(out)}
}

// ToTranslationResponse maps a translation entity
func ToTranslationResponse(t *entities.Translation) meetingDTO.TranslationResponse {
	return meetingDTO.TranslationResponse{
		ID:             t.ID.String(),
		MeetingID:      t.MeetingID.String(),
		TargetLanguage: t.TargetLanguage,
		TranslatedText: t.TranslatedText,
		CreatedAt:      t.CreatedAt,
	}
}

// ToListTranslationsResponse maps a translation collection
func ToListTranslationsResponse(translations []*entities.Translation) meetingDTO.ListTranslationsResponse {
	out := make([]meetingDTO.TranslationResponse, 0, len(translations))
	for _, t := range translations {
		out = append(out, ToTranslationResponse(t))
	}
	return meetingDTO.ListTranslationsResponse{Translations: out, Total: len(out)}
}

// ToSearchResponse maps ranked search results
func ToSearchResponse(results []searchUsecase.Result) searchDTO.SearchResponse {
	out := make([]searchDTO.ResultItem, 0, len(results))
	for _, r := range results {
		out = append(out, searchDTO.ResultItem{
			MeetingID:       r.MeetingID.String(),
			Title:           r.Title,
			Excerpt:         r.Excerpt,
			SimilarityScore: r.SimilarityScore,
			CreatedAt:       r.CreatedAt,
		})
	}
	return searchDTO.SearchResponse{Results: out, Total: len(out)}
}

// ToCrossMeetingResponse maps aggregated insights
func ToCrossMeetingResponse(in *entities.CrossMeetingInsights) insightsDTO.CrossMeetingResponse {
	meetings := make([]insightsDTO.MeetingRef, 0, len(in.Meetings))
	for _, m := range in.Meetings {
		meetings = append(meetings, insightsDTO.MeetingRef{
			ID:    m.ID.String(),
			Title: m.Title,
			Date:  m.Date,
		})
	}
	return insightsDTO.CrossMeetingResponse{
		TotalMeetings:      in.TotalMeetings,
		TotalActionItems:   in.TotalActionItems,
		TotalDecisions:     in.TotalDecisions,
		ActionItemsByOwner: in.ActionItemsByOwner,
		Meetings:           meetings,
	}
}
