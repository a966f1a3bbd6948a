package entities

// AnalysisResult is the structured output of the LLM meeting analysis.
// Summary is required; the lists may be empty for short meetings.
type AnalysisResult struct {
	Summary     string       `json:"summary"`
	ActionItems []ActionItem `json:"action_items"`
	Decisions   []Decision   `json:"decisions"`
}
