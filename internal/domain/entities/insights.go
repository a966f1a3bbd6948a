package entities

import (
	"time"

	"github.com/google/uuid"
)

// OwnerUnassigned is the bucket for action items without an owner
const OwnerUnassigned = "Unassigned"

// MeetingRef is a lightweight reference to a meeting in aggregated output
type MeetingRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// CrossMeetingInsights aggregates structured fields across a set of meetings
type CrossMeetingInsights struct {
	TotalMeetings      int                     `json:"total_meetings"`
	TotalActionItems   int                     `json:"total_action_items"`
	TotalDecisions     int                     `json:"total_decisions"`
	ActionItemsByOwner map[string][]ActionItem `json:"action_items_by_owner"`
	Meetings           []MeetingRef            `json:"meetings"`
}
