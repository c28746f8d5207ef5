package models

// AdviceRequest represents the career advice request body
// @Description Career advice request with job ad and resume text
type AdviceRequest struct {
	JobAd      *JobAd `json:"jobAd"`
	ResumeText string `json:"resumeText" example:"Experienced Python developer, also skilled in SQL"`
	UserID     string `json:"userId" example:"uid123"`
}

// AdviceResponse represents the career advice response
// @Description Generated career advice report
type AdviceResponse struct {
	Advice    string `json:"advice"`
	Timestamp string `json:"timestamp" example:"2024-03-10T09:00:00.000Z"`
}

// ParseJobAdRequest represents a request to parse raw job ad text
// @Description Raw job ad text to parse into structured fields
type ParseJobAdRequest struct {
	JobAdText string `json:"jobAdText" binding:"required" example:"Acme Corp is hiring a Backend Engineer..."`
}

// UpdateJobAdRequest represents a request to edit a stored job ad
// @Description Edited job ad fields
type UpdateJobAdRequest struct {
	CompanyName    string `json:"companyName" binding:"required"`
	JobTitle       string `json:"jobTitle" binding:"required"`
	JobDescription string `json:"jobDescription" binding:"required"`
}

// MarkAppliedRequest represents a request to mark a job ad as applied
// @Description Resume artifact used for the application
type MarkAppliedRequest struct {
	ResumeID      string `json:"resumeID" binding:"required"`
	ResumeContent string `json:"resumeContent" binding:"required"` // base64-encoded file content
	FileExtension string `json:"fileExtension" binding:"required" example:"pdf"`
}

// ParseResumeRequest represents a request to parse a resume text corpus
// @Description Free-form resume text corpus
type ParseResumeRequest struct {
	Corpus string `json:"corpus" binding:"required" example:"John Doe\njohn@example.com\nSoftware Engineer..."`
}

// ParseResumeResponse represents the parsed resume profile
// @Description Parsed resume profile
type ParseResumeResponse struct {
	ResumeFields ResumeFields `json:"resumeFields"`
	Message      string       `json:"message,omitempty"`
}

// Resume generation output formats
const (
	ResumeFormatText  = "text"
	ResumeFormatJSON  = "json"
	ResumeFormatLaTeX = "latex"
)

// GenerateResumeRequest represents a tailored resume generation request
// @Description Tailored resume generation request
type GenerateResumeRequest struct {
	JobID  string `json:"jobID" binding:"required"`
	Format string `json:"format" binding:"required" example:"text"` // text, json, latex
	// TemplateID selects the LaTeX template; required when format is latex
	TemplateID string `json:"templateID,omitempty"`
}

// GenerateResumeResponse represents the generated resume content
// @Description Generated resume content
type GenerateResumeResponse struct {
	ResumeID string        `json:"resumeID"`
	Format   string        `json:"format" example:"text"`
	Content  string        `json:"content,omitempty"`
	Resume   *ResumeFields `json:"resume,omitempty"` // populated for the json format
}

// FormatResumeRequest represents a LaTeX-to-PDF rendering request
// @Description LaTeX source to render into a PDF
type FormatResumeRequest struct {
	TemplateName string `json:"templateName"`
	TemplateID   string `json:"templateID"`
	TemplateText string `json:"templateText"`
	UserID       string `json:"userID"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"email is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
