package models

import "encoding/json"

// FlexibleStringSlice can unmarshal from either a string or []string.
// The LLM occasionally returns a lone string where an array is expected.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// If both fail, return empty slice
	*f = []string{}
	return nil
}

// ResumeContact holds the contact portion of a resume profile
type ResumeContact struct {
	Email    FlexibleStringSlice `json:"email,omitempty" firestore:"email"`
	Phone    FlexibleStringSlice `json:"phone,omitempty" firestore:"phone"`
	Location string              `json:"location,omitempty" firestore:"location"`
}

// WorkExperience represents a single work history entry
type WorkExperience struct {
	JobTitle         string   `json:"jobTitle" firestore:"jobTitle"`
	Company          string   `json:"company" firestore:"company"`
	StartDate        string   `json:"startDate" firestore:"startDate"` // YYYY-MM
	EndDate          string   `json:"endDate" firestore:"endDate"`     // YYYY-MM or "Present"
	JobSummary       string   `json:"jobSummary,omitempty" firestore:"jobSummary"`
	Responsibilities []string `json:"responsibilities,omitempty" firestore:"responsibilities"`
}

// Education represents a single educational qualification
type Education struct {
	Degree      string `json:"degree" firestore:"degree"`
	Institution string `json:"institution" firestore:"institution"`
	StartDate   string `json:"startDate" firestore:"startDate"` // YYYY-MM
	EndDate     string `json:"endDate" firestore:"endDate"`     // YYYY-MM or "Present"
	GPA         string `json:"gpa,omitempty" firestore:"gpa"`
}

// ResumeFields is the structured resume profile stored on the user document
// and exchanged with the LLM when generating tailored resumes
// @Description Structured resume profile
type ResumeFields struct {
	FullName       string           `json:"fullName,omitempty" firestore:"fullName"`
	Contact        ResumeContact    `json:"contact,omitempty" firestore:"contact"`
	Summary        string           `json:"summary,omitempty" firestore:"summary"`
	WorkExperience []WorkExperience `json:"workExperience,omitempty" firestore:"workExperience"`
	Education      []Education      `json:"education,omitempty" firestore:"education"`
	Skills         []string         `json:"skills,omitempty" firestore:"skills"`
}
