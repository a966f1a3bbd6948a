package search

import "time"

// ResultItem is one ranked match
type ResultItem struct {
	MeetingID       string    `json:"meeting_id"`
	Title           string    `json:"title"`
	Excerpt         string    `json:"excerpt"`
	SimilarityScore float64   `json:"similarity_score"`
	CreatedAt       time.Time `json:"created_at"`
}

// SearchResponse wraps ranked results
type SearchResponse struct {
	Results []ResultItem `json:"results"`
	Total   int          `json:"total"`
}
