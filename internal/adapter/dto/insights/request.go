package insights

// CrossMeetingRequest selects the meetings to aggregate over
type CrossMeetingRequest struct {
	MeetingIDs []string `json:"meeting_ids" validate:"required,min=1,dive,uuid"`
}
