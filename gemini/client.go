package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/tailorcv/backend/config"
	"github.com/tailorcv/backend/models"
)

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)

	// Configure model parameters
	model.SetTemperature(0.2) // Lower temperature for more consistent outputs
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)

	return &Client{
		client:    client,
		model:     model,
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// ParseResumeCorpus extracts structured resume fields from a free-form text
// corpus (pasted resume text or parsed upload content)
func (c *Client) ParseResumeCorpus(ctx context.Context, corpus string) (*models.ResumeFields, error) {
	prompt := parseResumePrompt + corpus

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))
	if text == "" {
		return nil, fmt.Errorf("no response from Gemini")
	}

	var fields models.ResumeFields
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		log.Printf("[Gemini] Failed to parse resume corpus response: %s", text)
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	log.Printf("[Gemini] Parsed resume corpus: name=%s, skills=%d, jobs=%d",
		fields.FullName, len(fields.Skills), len(fields.WorkExperience))

	return &fields, nil
}

// ParseJobAd extracts company name, job title, and job description from raw
// job-ad text
func (c *Client) ParseJobAd(ctx context.Context, jobAdText string) (*models.JobAd, error) {
	prompt := parseJobAdPrompt + "\n\nJob Ad:\n" + jobAdText

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))
	if text == "" {
		return nil, fmt.Errorf("no response from Gemini")
	}

	var jobAd models.JobAd
	if err := json.Unmarshal([]byte(text), &jobAd); err != nil {
		log.Printf("[Gemini] Failed to parse job ad response: %s", text)
		return nil, fmt.Errorf("failed to parse job ad JSON: %w", err)
	}

	return &jobAd, nil
}

// GenerateTailoredResume produces a job-tailored resume as structured fields
// from the user's stored resume profile and a job ad text
func (c *Client) GenerateTailoredResume(ctx context.Context, fields *models.ResumeFields, jobAdText string) (*models.ResumeFields, error) {
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume fields: %w", err)
	}

	prompt := generateResumePrompt +
		fmt.Sprintf("\n\nHere is a JSON object representing the user's information:\n\n%s", fieldsJSON) +
		fmt.Sprintf("\n\nHere is the text of the job ad:%s\n\n", jobAdText)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))
	if text == "" {
		return nil, fmt.Errorf("no response from Gemini")
	}

	var tailored models.ResumeFields
	if err := json.Unmarshal([]byte(text), &tailored); err != nil {
		log.Printf("[Gemini] Failed to parse tailored resume response: %s", text)
		return nil, fmt.Errorf("failed to parse tailored resume JSON: %w", err)
	}

	return &tailored, nil
}

// GeneratePlainTextResume renders a tailored resume JSON object as plain text
func (c *Client) GeneratePlainTextResume(ctx context.Context, resumeJSON string) (string, error) {
	prompt := plaintextResumePrompt + fmt.Sprintf("\n\n%s\n", resumeJSON) +
		"\nGenerate a resume in plain text. Do not include any explanation, markdown, rich text, or commentary in your response.\n"

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}

	return text, nil
}

// GenerateLaTeXResume substitutes a tailored resume JSON object into a LaTeX
// template, returning a complete LaTeX document ready for typesetting
func (c *Client) GenerateLaTeXResume(ctx context.Context, resumeJSON, templateText string) (string, error) {
	prompt := plaintextResumePrompt + fmt.Sprintf("\n\n%s\n", resumeJSON) +
		"\nAnd here is the LaTeX format:\n" +
		fmt.Sprintf("\n%s\n", templateText) +
		"\nGenerate a complete LaTeX doc (with the given layout) with the appropriately substituted info from the format.\n"

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}

	// The model wraps LaTeX output in a markdown code fence and sometimes
	// emits non-breaking spaces that break pdflatex.
	text = strings.ReplaceAll(text, " ", " ")
	return cleanLaTeX(text), nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}

func cleanLaTeX(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```latex")
	text = strings.TrimPrefix(text, "```tex")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
