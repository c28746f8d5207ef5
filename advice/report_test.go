package advice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorcv/backend/models"
)

var strongMatchJob = models.JobAd{
	CompanyName:    "Acme Corp",
	JobTitle:       "Python Developer",
	JobDescription: "Role: Python Developer\nRequires python experience and a bachelor degree",
}

const strongMatchResume = "Senior python developer with 5 years experience and a bachelor degree"

var weakMatchJob = models.JobAd{
	CompanyName:    "Acme Corp",
	JobTitle:       "Cloud Engineer",
	JobDescription: "We need a Python developer with AWS experience",
}

func TestGenerateAdvice_Deterministic(t *testing.T) {
	first := GenerateAdvice(strongMatchJob, strongMatchResume)
	second := GenerateAdvice(strongMatchJob, strongMatchResume)
	assert.Equal(t, first, second)
}

func TestGenerateAdvice_SectionsPresent(t *testing.T) {
	report := GenerateAdvice(strongMatchJob, strongMatchResume)

	for _, section := range []string{
		"Career Advice for Python Developer at Acme Corp",
		"RESUME ANALYSIS & IMPROVEMENT SUGGESTIONS",
		"Skills Assessment:",
		"Key Skills You're Missing:",
		"Skills You Should Highlight:",
		"Resume Improvement Tips:",
		"TARGETING THIS SPECIFIC JOB",
		"ADDRESSING SKILL GAPS",
		"Learning Recommendations:",
		"INTERVIEW PREPARATION",
		"Behavioral Questions:",
		"Role-Specific Questions:",
		"Interview Strategy:",
		"APPLICATION STRATEGY",
		"Next Steps:",
	} {
		assert.Contains(t, report, section)
	}
}

func TestGenerateAdvice_StrongMatch(t *testing.T) {
	// Every scoring signal fires, so the score clamps at 95.
	report := GenerateAdvice(strongMatchJob, strongMatchResume)

	assert.Contains(t, report, "Your Match Score: 95% alignment with this position")
	assert.Contains(t, report, "Excellent! Your resume shows strong alignment with this Python Developer role.")
	assert.Contains(t, report, "Strong match! This looks like an excellent opportunity.")
	assert.Contains(t, report, "To be in the top 1% of candidates for this Python Developer role:")
	assert.Contains(t, report, "Network with professionals in similar roles at Acme Corp or similar companies")
	assert.NotContains(t, report, "Important: This role requires specific expertise")
	assert.Contains(t, report, "You have most of the key skills mentioned in the job posting.")
}

func TestGenerateAdvice_WeakMatch(t *testing.T) {
	// Empty resume against a skill-bearing job description: score clamps at 5,
	// so both the low assessment band and the stretch-role block fire.
	report := GenerateAdvice(weakMatchJob, "")

	assert.Contains(t, report, "Your resume shows limited alignment with this Cloud Engineer position.")
	assert.Contains(t, report, "Important: This role requires specific expertise in Cloud Engineer")
	assert.Contains(t, report, "This position requires significant additional experience or skills.")
	assert.NotContains(t, report, "top 1%")
	// Scenario: no matching skills means the highlight section shows its fallback.
	assert.Contains(t, report, "Consider adding more specific technical skills and relevant experience to your resume.")
	assert.Contains(t, report, "• python")
	assert.Contains(t, report, "• aws")
}

// The stretch-role block (<40) and the advancement block (>=70) can never
// appear in the same report.
func TestGenerateAdvice_ExclusiveConditionalBlocks(t *testing.T) {
	cases := []struct {
		name       string
		jobAd      models.JobAd
		resumeText string
	}{
		{"strong", strongMatchJob, strongMatchResume},
		{"weak", weakMatchJob, ""},
		{"empty", models.JobAd{CompanyName: "Acme Corp", JobTitle: "Analyst"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := GenerateAdvice(tc.jobAd, tc.resumeText)
			stretch := strings.Contains(report, "Important: This role requires specific expertise")
			advancement := strings.Contains(report, "To be in the top 1% of candidates")
			assert.False(t, stretch && advancement, "stretch and advancement blocks must be mutually exclusive")
		})
	}
}

func TestGenerateAdvice_EmptyInputs(t *testing.T) {
	// Both texts empty: no skills, fallback score of 50, mid-band narratives.
	jobAd := models.JobAd{CompanyName: "Acme Corp", JobTitle: "Analyst"}
	report := GenerateAdvice(jobAd, "")

	assert.Contains(t, report, "Your Match Score: 50% alignment with this position")
	assert.Contains(t, report, "Your resume shows some relevant experience for this Analyst role")
	assert.Contains(t, report, "This role might be a stretch, but it could be a great growth opportunity.")
	assert.Contains(t, report, "Good luck with your application to Acme Corp!")
}

func TestGenerateAdvice_ListCaps(t *testing.T) {
	jobAd := models.JobAd{
		CompanyName:    "MegaCorp",
		JobTitle:       "Platform Engineer",
		JobDescription: "javascript python java react sql aws azure docker kubernetes git linux mongodb",
	}

	report := GenerateAdvice(jobAd, "")

	missingSection := sectionBetween(t, report, "Key Skills You're Missing:\n", "\nSkills You Should Highlight:")
	assert.LessOrEqual(t, strings.Count(missingSection, "• "), 6)

	learningSection := sectionBetween(t, report, "consider developing these skills:\n", "\n\n")
	assert.LessOrEqual(t, strings.Count(learningSection, "• "), 4)
}

func sectionBetween(t *testing.T, report, start, end string) string {
	t.Helper()
	_, after, found := strings.Cut(report, start)
	require.True(t, found, "report missing %q", start)
	section, _, found := strings.Cut(after, end)
	require.True(t, found, "report missing %q after %q", end, start)
	return section
}

// Threshold bands are kept as explicit tables so boundary behavior can be
// checked in isolation.
func TestScoreBands(t *testing.T) {
	tests := []struct {
		score      int
		assessment string
		strategy   string
	}{
		{0, "limited alignment", "long-term goal"},
		{29, "limited alignment", "long-term goal"},
		{30, "some relevant experience", "long-term goal"},
		{39, "some relevant experience", "long-term goal"},
		{40, "some relevant experience", "might be a stretch"},
		{59, "some relevant experience", "might be a stretch"},
		{60, "good alignment", "Good potential match"},
		{79, "good alignment", "Good potential match"},
		{80, "strong alignment", "Strong match!"},
		{85, "strong alignment", "Strong match!"},
		{100, "strong alignment", "Strong match!"},
	}

	for _, tt := range tests {
		assert.Contains(t, bandText(skillsAssessmentBands, tt.score), tt.assessment, "score %d", tt.score)
		assert.Contains(t, bandText(applicationStrategyBands, tt.score), tt.strategy, "score %d", tt.score)
	}
}

func TestScoreBands_Exhaustive(t *testing.T) {
	for score := 0; score <= 100; score++ {
		assessmentHits, strategyHits := 0, 0
		for _, band := range skillsAssessmentBands {
			if score >= band.lowerBound && score <= band.upperBound {
				assessmentHits++
			}
		}
		for _, band := range applicationStrategyBands {
			if score >= band.lowerBound && score <= band.upperBound {
				strategyHits++
			}
		}
		require.Equal(t, 1, assessmentHits, "score %d must hit exactly one assessment band", score)
		require.Equal(t, 1, strategyHits, "score %d must hit exactly one strategy band", score)
	}
}
