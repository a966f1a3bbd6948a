package meeting

// TranslateRequest asks for a meeting transcription in another language
type TranslateRequest struct {
	MeetingID      string `json:"meeting_id" validate:"required,uuid"`
	TargetLanguage string `json:"target_language" validate:"required,min=2,max=8"`
}
