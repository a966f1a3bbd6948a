package search

// SearchRequest is a semantic search over the meeting corpus
type SearchRequest struct {
	Query string `json:"query" validate:"required,min=1"`
	TopK  int    `json:"top_k" validate:"omitempty,min=1,max=50"`
}
