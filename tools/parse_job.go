package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tailorcv/backend/gemini"
)

// ParseJobAdTool extracts structured job ad fields using Gemini
type ParseJobAdTool struct {
	geminiClient *gemini.Client
}

// NewParseJobAdTool creates a new job ad parsing tool
func NewParseJobAdTool(geminiClient *gemini.Client) *ParseJobAdTool {
	return &ParseJobAdTool{
		geminiClient: geminiClient,
	}
}

func (t *ParseJobAdTool) Name() string {
	return "parse_job_ad"
}

func (t *ParseJobAdTool) Description() string {
	return `Parse raw job advertisement text into structured fields.
Input should include the full job ad text.
Returns the company name, job title, and job description.`
}

func (t *ParseJobAdTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"jobAdText": map[string]interface{}{
				"type":        "string",
				"description": "Raw job advertisement text to parse",
			},
		},
		"required": []string{"jobAdText"},
	}
}

// ParseJobAdInput represents the input for job ad parsing
type ParseJobAdInput struct {
	JobAdText string `json:"jobAdText"`
}

func (t *ParseJobAdTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var parseInput ParseJobAdInput
	if err := json.Unmarshal(input, &parseInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	if parseInput.JobAdText == "" {
		return NewErrorResult("jobAdText is required")
	}

	jobAd, err := t.geminiClient.ParseJobAd(ctx, parseInput.JobAdText)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("parsing failed: %v", err))
	}

	return NewSuccessResult(jobAd)
}
