package models

// JobAd represents a job advertisement stored in the user's document
// @Description Job advertisement with application tracking state
type JobAd struct {
	JobID          string `json:"jobID,omitempty" firestore:"jobID" example:"8f5b1c2e-1f7a-4f2e-9f6c-8f4b2a1c3d4e"`
	CompanyName    string `json:"companyName" firestore:"companyName" example:"Acme Corp"`
	JobTitle       string `json:"jobTitle" firestore:"jobTitle" example:"Backend Engineer"`
	JobDescription string `json:"jobDescription" firestore:"jobDescription" example:"We need a Python developer with AWS experience"`
	DateSubmitted  string `json:"dateSubmitted,omitempty" firestore:"dateSubmitted" example:"2024-03-10T09:00:00Z"`
	Applied        bool   `json:"applied" firestore:"applied" example:"false"`
}

// UsedResume describes a stored resume artifact that was used to apply to a job.
// The resumeID/jobID pair comes from custom object metadata in Cloud Storage.
type UsedResume struct {
	Name     string `json:"name" example:"8f5b1c2e.pdf"`
	Path     string `json:"path" example:"users/uid123/resumes/8f5b1c2e.pdf"`
	ResumeID string `json:"resumeID"`
	JobID    string `json:"jobID"`
}

// LatexTemplate describes a LaTeX resume template stored in Cloud Storage
type LatexTemplate struct {
	TemplateName string `json:"templateName" example:"oneColV1"`
	TemplateID   string `json:"templateID"`
	Path         string `json:"path" example:"users/uid123/templates/oneColV1.tex"`
}
