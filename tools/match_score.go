package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tailorcv/backend/advice"
	"github.com/tailorcv/backend/models"
)

// MatchScoreTool computes the deterministic match score between a job ad
// and resume text
type MatchScoreTool struct{}

// NewMatchScoreTool creates a new match scoring tool
func NewMatchScoreTool() *MatchScoreTool {
	return &MatchScoreTool{}
}

func (t *MatchScoreTool) Name() string {
	return "score_job_match"
}

func (t *MatchScoreTool) Description() string {
	return `Score how well a resume matches a job posting.
Input should include the job ad and the resume text.
Returns a match score (0-100) plus the matching and missing skills.`
}

func (t *MatchScoreTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"jobAd": map[string]interface{}{
				"type":        "object",
				"description": "Job ad with companyName, jobTitle, and jobDescription",
			},
			"resumeText": map[string]interface{}{
				"type":        "string",
				"description": "Resume text to score against the job ad",
			},
		},
		"required": []string{"jobAd", "resumeText"},
	}
}

// MatchScoreInput represents the input for match scoring
type MatchScoreInput struct {
	JobAd      models.JobAd `json:"jobAd"`
	ResumeText string       `json:"resumeText"`
}

// MatchScoreOutput represents the scoring result
type MatchScoreOutput struct {
	MatchScore     int      `json:"matchScore"`
	MatchingSkills []string `json:"matchingSkills"`
	MissingSkills  []string `json:"missingSkills"`
}

func (t *MatchScoreTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var scoreInput MatchScoreInput
	if err := json.Unmarshal(input, &scoreInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	jobSkills := advice.ExtractSkills(scoreInput.JobAd.JobDescription, advice.SkillVocabulary)
	resumeSkills := advice.ExtractSkills(scoreInput.ResumeText, advice.SkillVocabulary)
	matching := advice.FindMatchingSkills(jobSkills, resumeSkills)
	missing := advice.FindMissingSkills(jobSkills, resumeSkills)

	score := advice.ComputeMatchScore(scoreInput.ResumeText, scoreInput.JobAd.JobDescription, matching, jobSkills)

	return NewSuccessResult(MatchScoreOutput{
		MatchScore:     score,
		MatchingSkills: matching,
		MissingSkills:  missing,
	})
}
