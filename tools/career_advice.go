package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tailorcv/backend/advice"
	"github.com/tailorcv/backend/models"
)

// CareerAdviceTool generates a full career advice report for a job ad
type CareerAdviceTool struct{}

// NewCareerAdviceTool creates a new career advice tool
func NewCareerAdviceTool() *CareerAdviceTool {
	return &CareerAdviceTool{}
}

func (t *CareerAdviceTool) Name() string {
	return "generate_career_advice"
}

func (t *CareerAdviceTool) Description() string {
	return `Generate a tailored career advice report for a job application.
Input should include the job ad and the resume text.
Returns a report covering skill gaps, interview preparation, and an overall match score.`
}

func (t *CareerAdviceTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"jobAd": map[string]interface{}{
				"type":        "object",
				"description": "Job ad with companyName, jobTitle, and jobDescription",
			},
			"resumeText": map[string]interface{}{
				"type":        "string",
				"description": "Resume text to analyze against the job ad",
			},
		},
		"required": []string{"jobAd", "resumeText"},
	}
}

// CareerAdviceInput represents the input for advice generation
type CareerAdviceInput struct {
	JobAd      models.JobAd `json:"jobAd"`
	ResumeText string       `json:"resumeText"`
}

// CareerAdviceOutput represents the generated report
type CareerAdviceOutput struct {
	Advice string `json:"advice"`
}

func (t *CareerAdviceTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var adviceInput CareerAdviceInput
	if err := json.Unmarshal(input, &adviceInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	report := advice.GenerateAdvice(adviceInput.JobAd, adviceInput.ResumeText)

	return NewSuccessResult(CareerAdviceOutput{Advice: report})
}
