package insights

import (
	"time"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// MeetingRef identifies one aggregated meeting
type MeetingRef struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// CrossMeetingResponse is the aggregated view across the selected meetings
type CrossMeetingResponse struct {
	TotalMeetings      int                              `json:"total_meetings"`
	TotalActionItems   int                              `json:"total_action_items"`
	TotalDecisions     int                              `json:"total_decisions"`
	ActionItemsByOwner map[string][]entities.ActionItem `json:"action_items_by_owner"`
	Meetings           []MeetingRef                     `json:"meetings"`
}
