package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorcv/backend/models"
)

func TestToolRegistry(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(NewMatchScoreTool())
	registry.Register(NewCareerAdviceTool())

	tool, ok := registry.Get("score_job_match")
	require.True(t, ok)
	assert.Equal(t, "score_job_match", tool.Name())

	_, ok = registry.Get("no_such_tool")
	assert.False(t, ok)

	assert.Len(t, registry.List(), 2)

	defs := registry.GetToolDefinitions()
	require.Len(t, defs, 2)
	for _, def := range defs {
		assert.NotEmpty(t, def["name"])
		assert.NotEmpty(t, def["description"])
		assert.NotNil(t, def["parameters"])
	}
}

func execTool(t *testing.T, tool Tool, input interface{}) ToolResult {
	t.Helper()

	inputJSON, err := json.Marshal(input)
	require.NoError(t, err)

	resultJSON, err := tool.Execute(context.Background(), inputJSON)
	require.NoError(t, err)

	var result ToolResult
	require.NoError(t, json.Unmarshal(resultJSON, &result))
	return result
}

func TestMatchScoreTool(t *testing.T) {
	tool := NewMatchScoreTool()

	result := execTool(t, tool, MatchScoreInput{
		JobAd: models.JobAd{
			CompanyName:    "Acme Corp",
			JobTitle:       "Backend Engineer",
			JobDescription: "We need a Python developer with AWS experience",
		},
		ResumeText: "Experienced Python developer, also skilled in SQL",
	})

	require.True(t, result.Success)

	var output MatchScoreOutput
	require.NoError(t, json.Unmarshal(result.Data, &output))

	assert.Equal(t, 55, output.MatchScore)
	assert.Equal(t, []string{"python"}, output.MatchingSkills)
	assert.Equal(t, []string{"aws"}, output.MissingSkills)
}

func TestMatchScoreTool_InvalidInput(t *testing.T) {
	tool := NewMatchScoreTool()

	resultJSON, err := tool.Execute(context.Background(), json.RawMessage(`not json`))
	require.NoError(t, err)

	var result ToolResult
	require.NoError(t, json.Unmarshal(resultJSON, &result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid input")
}

func TestCareerAdviceTool(t *testing.T) {
	tool := NewCareerAdviceTool()

	result := execTool(t, tool, CareerAdviceInput{
		JobAd: models.JobAd{
			CompanyName:    "Acme Corp",
			JobTitle:       "Backend Engineer",
			JobDescription: "We need a Python developer with AWS experience",
		},
		ResumeText: "Experienced Python developer, also skilled in SQL",
	})

	require.True(t, result.Success)

	var output CareerAdviceOutput
	require.NoError(t, json.Unmarshal(result.Data, &output))

	assert.Contains(t, output.Advice, "Career Advice for Backend Engineer at Acme Corp")
	assert.Contains(t, output.Advice, "Your Match Score: 55% alignment")
	assert.Contains(t, output.Advice, "INTERVIEW PREPARATION")
}
