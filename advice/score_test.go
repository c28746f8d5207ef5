package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreFor(t *testing.T, resumeText, jobDescription string) int {
	t.Helper()
	jobSkills := ExtractSkills(jobDescription, SkillVocabulary)
	resumeSkills := ExtractSkills(resumeText, SkillVocabulary)
	matching := FindMatchingSkills(jobSkills, resumeSkills)
	return ComputeMatchScore(resumeText, jobDescription, matching, jobSkills)
}

func TestComputeMatchScore_EmptyInputsFallback(t *testing.T) {
	// No title label, no experience/education keywords, no job skills:
	// the fallback branch returns the neutral default.
	score := ComputeMatchScore("", "", nil, nil)
	assert.Equal(t, 50, score)
}

func TestComputeMatchScore_NormalPathClampedLow(t *testing.T) {
	// "position" matches the title-label pattern without a captured phrase,
	// contributing nothing; "experience" alone puts us on the normal path.
	score := scoreFor(t, "", "Great position with experience")
	assert.Equal(t, 5, score)
}

func TestComputeMatchScore_NormalPathClampedHigh(t *testing.T) {
	jobDescription := "Role: Python Developer\nRequires python experience and a bachelor degree"
	resumeText := "Senior python developer with 5 years experience and a bachelor degree"

	// Every signal fires: raw ratio is 100, clamped to 95.
	score := scoreFor(t, resumeText, jobDescription)
	assert.Equal(t, 95, score)
}

func TestComputeMatchScore_HalfKeywordOverlap(t *testing.T) {
	// "experience" appears in both texts, "background" only in the job:
	// score/maxScore = 5/10.
	score := scoreFor(t, "experience with several things", "experience and background required")
	assert.Equal(t, 50, score)
}

func TestComputeMatchScore_SkillRatio(t *testing.T) {
	jobSkills := []string{"python", "aws"}

	full := ComputeMatchScore("irrelevant", "irrelevant", []string{"python", "aws"}, jobSkills)
	half := ComputeMatchScore("irrelevant", "irrelevant", []string{"python"}, jobSkills)
	none := ComputeMatchScore("irrelevant", "irrelevant", nil, jobSkills)

	// Only the skill-ratio category is active: maxScore is 50 and the
	// ratio maps directly onto the clamped [5,95] range.
	assert.Equal(t, 95, full)
	assert.Equal(t, 50, half)
	assert.Equal(t, 5, none)
}

func TestComputeMatchScore_Bounds(t *testing.T) {
	cases := []struct {
		resumeText     string
		jobDescription string
	}{
		{"", ""},
		{"", "We need a Python developer with AWS experience"},
		{"Experienced Python developer, also skilled in SQL", "We need a Python developer with AWS experience"},
		{"python aws docker kubernetes", "Role: DevOps Engineer\npython aws docker kubernetes experience degree"},
		{"nothing relevant", "degree bachelor master certification diploma years experience background worked employed"},
	}

	for _, tc := range cases {
		score := scoreFor(t, tc.resumeText, tc.jobDescription)
		assert.GreaterOrEqual(t, score, 0, "resume=%q job=%q", tc.resumeText, tc.jobDescription)
		assert.LessOrEqual(t, score, 100, "resume=%q job=%q", tc.resumeText, tc.jobDescription)
	}
}

// Holding the job description fixed, adding job-skill keywords to the resume
// never lowers the score.
func TestComputeMatchScore_Monotonic(t *testing.T) {
	jobDescription := "We need python, aws and docker experience"
	jobSkills := ExtractSkills(jobDescription, SkillVocabulary)
	require.NotEmpty(t, jobSkills)

	resumes := []string{
		"experience with python",
		"experience with python and aws",
		"experience with python and aws and docker",
	}

	prev := -1
	for _, resumeText := range resumes {
		score := scoreFor(t, resumeText, jobDescription)
		assert.GreaterOrEqual(t, score, prev, "resume=%q", resumeText)
		prev = score
	}
}

func TestComputeMatchScore_TitleLabelBonus(t *testing.T) {
	jobDescription := "Role: Senior Electrician\nMust hold relevant licenses"
	withTitle := scoreFor(t, "senior electrician with licenses", jobDescription)
	withoutTitle := scoreFor(t, "junior plumber", jobDescription)

	assert.Greater(t, withTitle, withoutTitle)
}
