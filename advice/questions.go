package advice

import (
	"fmt"

	"github.com/tailorcv/backend/models"
)

// InterviewQuestions groups the generated preparation prompts
type InterviewQuestions struct {
	Behavioral []string `json:"behavioral"`
	Technical  []string `json:"technical"`
}

// behavioralQuestions are identical for every job ad.
var behavioralQuestions = []string{
	"Tell me about a time when you had to overcome a significant challenge at work.",
	"Describe a situation where you had to work with a difficult team member.",
	"Give me an example of when you had to learn a new skill quickly.",
	"Tell me about a time when you had to meet a tight deadline.",
	"Describe a situation where you had to make a difficult decision with limited information.",
}

// GenerateInterviewQuestions returns five fixed behavioral prompts and five
// role-specific prompts with the job title and company name interpolated
// verbatim. Deterministic, no failure modes.
func GenerateInterviewQuestions(jobAd models.JobAd) InterviewQuestions {
	behavioral := make([]string, len(behavioralQuestions))
	copy(behavioral, behavioralQuestions)

	technical := []string{
		fmt.Sprintf("What interests you most about working as a %s?", jobAd.JobTitle),
		fmt.Sprintf("How would you approach a typical day in this %s role?", jobAd.JobTitle),
		fmt.Sprintf("What do you know about %s and why do you want to work here?", jobAd.CompanyName),
		"How do you stay current with industry trends and developments?",
		"Describe your experience with the key responsibilities mentioned in this job description.",
	}

	return InterviewQuestions{Behavioral: behavioral, Technical: technical}
}
