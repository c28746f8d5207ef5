package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendResource(t *testing.T) {
	tests := []struct {
		skill string
		want  string
	}{
		{"javascript", "FreeCodeCamp, Coursera JavaScript courses, or React documentation"},
		{"react", "FreeCodeCamp, Coursera JavaScript courses, or React documentation"},
		{"python", "Python.org tutorial, Codecademy Python course, or Coursera Python specialization"},
		{"aws", "AWS Free Tier, AWS Cloud Practitioner certification, or A Cloud Guru"},
		{"project management", "Google Project Management Certificate, PMP certification, or Coursera Project Management courses"},
		{"data analysis", "Google Data Analytics Certificate, Coursera Data Science specialization, or Kaggle Learn"},
		{"analytics", "Google Data Analytics Certificate, Coursera Data Science specialization, or Kaggle Learn"},
		{"electrical", "NECA training programs, electrical apprenticeship, or local trade school courses"},
		{"plumbing", "plumbing apprenticeship, vocational training, or local trade school programs"},
		{"hvac", "HVAC certification programs, EPA 608 certification, or trade school training"},
		{"nursing", "nursing degree programs, CNA certification, or continuing education courses"},
		{"medical records", "medical training programs, healthcare certifications, or continuing education"},
		{"welding", "LinkedIn Learning, Coursera, or Udemy courses"},
		{"", "LinkedIn Learning, Coursera, or Udemy courses"},
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			assert.Equal(t, tt.want, RecommendResource(tt.skill))
		})
	}
}

func TestRecommendResource_CaseInsensitive(t *testing.T) {
	assert.Equal(t, RecommendResource("python"), RecommendResource("PYTHON"))
}

// A skill matching several categories maps to the earliest one.
func TestRecommendResource_FirstMatchWins(t *testing.T) {
	// "data" precedes "medical" in the category table.
	got := RecommendResource("medical data analysis")
	assert.Equal(t, "Google Data Analytics Certificate, Coursera Data Science specialization, or Kaggle Learn", got)
}
