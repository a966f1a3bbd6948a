package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysis_PlainJSON(t *testing.T) {
	parser := NewParser()

	result, err := parser.ParseAnalysis(`{"summary":"Sprint planning done.","action_items":[{"task":"groom backlog","owner":"Lee","deadline":"2026-09-05"}],"decisions":[{"decision":"two week sprints","context":"team vote"}]}`)
	require.NoError(t, err)

	assert.Equal(t, "Sprint planning done.", result.Summary)
	require.Len(t, result.ActionItems, 1)
	assert.Equal(t, "groom backlog", result.ActionItems[0].Task)
	assert.Equal(t, "Lee", result.ActionItems[0].Owner)
	require.Len(t, result.Decisions, 1)
	assert.Equal(t, "two week sprints", result.Decisions[0].Decision)
}

func TestParseAnalysis_MarkdownCodeBlock(t *testing.T) {
	parser := NewParser()

	raw := "```json\n{\"summary\":\"Wrapped in a code block.\"}\n```"
	result, err := parser.ParseAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, "Wrapped in a code block.", result.Summary)
}

func TestParseAnalysis_BareCodeBlock(t *testing.T) {
	parser := NewParser()

	raw := "```\n{\"summary\":\"Bare fence.\"}\n```"
	result, err := parser.ParseAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, "Bare fence.", result.Summary)
}

func TestParseAnalysis_MissingSummaryRejected(t *testing.T) {
	parser := NewParser()

	_, err := parser.ParseAnalysis(`{"action_items":[{"task":"x"}]}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing summary")
}

func TestParseAnalysis_InvalidJSONRejected(t *testing.T) {
	parser := NewParser()

	_, err := parser.ParseAnalysis(`the meeting went well, thanks for asking`)
	require.Error(t, err)
}

func TestParseAnalysis_NilListsInitialized(t *testing.T) {
	parser := NewParser()

	result, err := parser.ParseAnalysis(`{"summary":"No lists."}`)
	require.NoError(t, err)
	assert.NotNil(t, result.ActionItems)
	assert.Empty(t, result.ActionItems)
	assert.NotNil(t, result.Decisions)
	assert.Empty(t, result.Decisions)
}
