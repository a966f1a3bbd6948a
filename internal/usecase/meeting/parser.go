package meeting

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// Parser handles parsing and validation of analysis provider responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseAnalysis parses the JSON analysis output into an AnalysisResult and
// validates the required shape. The summary field is mandatory; the lists
// may be empty but are always initialized.
func (p *Parser) ParseAnalysis(jsonString string) (*entities.AnalysisResult, error) {
	jsonString = extractJSON(jsonString)

	var result entities.AnalysisResult
	if err := json.Unmarshal([]byte(jsonString), &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	if result.Summary == "" {
		return nil, fmt.Errorf("missing summary in analysis response")
	}

	if result.ActionItems == nil {
		result.ActionItems = make([]entities.ActionItem, 0)
	}
	if result.Decisions == nil {
		result.Decisions = make([]entities.Decision, 0)
	}

	return &result, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
