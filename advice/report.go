package advice

import (
	"fmt"
	"strings"

	"github.com/tailorcv/backend/models"
)

// scoreBand maps an inclusive match-score range to a fixed narrative
// paragraph. Band text may interpolate the job title via %s.
type scoreBand struct {
	lowerBound int
	upperBound int
	text       string
}

// skillsAssessmentBands drive the opening narrative of the report.
var skillsAssessmentBands = []scoreBand{
	{0, 29, "Your resume shows limited alignment with this %s position. The job requires specialized skills and experience that aren't clearly evident in your current resume. This doesn't mean you can't apply, but you'll need to strengthen your application significantly."},
	{30, 59, "Your resume shows some relevant experience for this %s role, but there are several key areas where you could improve your match with the job requirements."},
	{60, 79, "Your resume demonstrates good alignment with this %s position. You have many of the required skills, and with some targeted improvements, you could be a strong candidate."},
	{80, 100, "Excellent! Your resume shows strong alignment with this %s role. You have most of the required skills and experience. Focus on fine-tuning your application to stand out from other qualified candidates."},
}

// applicationStrategyBands drive the closing application-strategy paragraph.
var applicationStrategyBands = []scoreBand{
	{0, 39, "This position requires significant additional experience or skills. Consider it a long-term goal and focus on building the necessary qualifications first."},
	{40, 59, "This role might be a stretch, but it could be a great growth opportunity. Focus on demonstrating your ability to learn and adapt quickly."},
	{60, 79, "Good potential match. With some resume improvements and targeted preparation, you could be a competitive candidate."},
	{80, 100, "Strong match! This looks like an excellent opportunity. Apply with confidence and focus on showcasing your most relevant achievements."},
}

// Score thresholds for the standalone conditional blocks. The stretch block
// fires below 40, the advancement block at 70 and above; the two can never
// co-occur.
const (
	stretchRoleThreshold  = 40
	topCandidateThreshold = 70
)

// Display caps for the report's list sections.
const (
	maxListedSkills        = 6
	maxLearningSuggestions = 4
)

func bandText(bands []scoreBand, score int) string {
	for _, band := range bands {
		if score >= band.lowerBound && score <= band.upperBound {
			return band.text
		}
	}
	// Bands are exhaustive over [0,100]; unreachable for valid scores.
	return bands[len(bands)-1].text
}

// GenerateAdvice assembles the full career-advice report for a job ad and
// resume text: skill extraction, matching, scoring, interview questions, and
// the templated multi-section narrative. Output is deterministic for fixed
// inputs and tolerates empty job descriptions and resume text.
func GenerateAdvice(jobAd models.JobAd, resumeText string) string {
	jobSkills := ExtractSkills(jobAd.JobDescription, SkillVocabulary)
	resumeSkills := ExtractSkills(resumeText, SkillVocabulary)
	matchingSkills := FindMatchingSkills(jobSkills, resumeSkills)
	missingSkills := FindMissingSkills(jobSkills, resumeSkills)
	questions := GenerateInterviewQuestions(jobAd)
	matchScore := ComputeMatchScore(resumeText, jobAd.JobDescription, matchingSkills, jobSkills)

	var b strings.Builder

	fmt.Fprintf(&b, "Career Advice for %s at %s\n\n", jobAd.JobTitle, jobAd.CompanyName)

	b.WriteString("RESUME ANALYSIS & IMPROVEMENT SUGGESTIONS\n\n")

	b.WriteString("Skills Assessment:\n")
	fmt.Fprintf(&b, bandText(skillsAssessmentBands, matchScore), jobAd.JobTitle)
	b.WriteString("\n\n")

	b.WriteString("Key Skills You're Missing:\n")
	if len(missingSkills) > 0 {
		for _, skill := range capSkills(missingSkills, maxListedSkills) {
			fmt.Fprintf(&b, "• %s\n", skill)
		}
	} else {
		b.WriteString("You have most of the key skills mentioned in the job posting.\n")
	}
	b.WriteString("\n")

	b.WriteString("Skills You Should Highlight:\n")
	if len(matchingSkills) > 0 {
		for _, skill := range capSkills(matchingSkills, maxListedSkills) {
			fmt.Fprintf(&b, "• %s - Make sure this is prominently featured\n", skill)
		}
	} else {
		b.WriteString("Consider adding more specific technical skills and relevant experience to your resume.\n")
	}
	b.WriteString("\n")

	b.WriteString("Resume Improvement Tips:\n")
	b.WriteString("• Add specific metrics and numbers to your accomplishments (e.g., \"increased efficiency by 25%\", \"managed team of 8 people\")\n")
	b.WriteString("• Use strong action verbs to start each bullet point (achieved, implemented, led, optimized)\n")
	b.WriteString("• Keep your most relevant experience at the top\n")
	b.WriteString("• Tailor your professional summary to match this specific role\n")
	b.WriteString("• Ensure consistent formatting and remove any typos\n\n")

	b.WriteString("TARGETING THIS SPECIFIC JOB\n\n")
	fmt.Fprintf(&b, "To better target this %s position:\n", jobAd.JobTitle)
	fmt.Fprintf(&b, "• Rewrite your professional summary to emphasize experience directly relevant to %s\n", jobAd.JobTitle)
	b.WriteString("• Reorganize your skills section to put the most job-relevant skills first\n")
	b.WriteString("• Lead with accomplishments that directly relate to the responsibilities mentioned in this job posting\n")
	b.WriteString("• Use keywords from the job description naturally throughout your resume\n\n")

	if matchScore < stretchRoleThreshold {
		fmt.Fprintf(&b, "Important: This role requires specific expertise in %s that may not be reflected in your current resume. Consider gaining relevant experience through:\n", jobAd.JobTitle)
		b.WriteString("• Volunteer work or internships in related fields\n")
		b.WriteString("• Taking on projects that demonstrate relevant skills\n")
		b.WriteString("• Pursuing relevant certifications or training programs\n\n")
	}

	b.WriteString("ADDRESSING SKILL GAPS\n\n")

	b.WriteString("Learning Recommendations:\n")
	if len(missingSkills) > 0 {
		b.WriteString("To strengthen your candidacy, consider developing these skills:\n")
		for _, skill := range capSkills(missingSkills, maxLearningSuggestions) {
			fmt.Fprintf(&b, "• %s: %s\n", skill, RecommendResource(skill))
		}
	} else {
		b.WriteString("Since you have most required skills, focus on:\n")
		b.WriteString("• Staying current with industry trends and best practices\n")
		b.WriteString("• Developing leadership and soft skills\n")
		b.WriteString("• Obtaining relevant certifications to stand out from other candidates\n")
	}
	b.WriteString("\n")

	if matchScore >= topCandidateThreshold {
		fmt.Fprintf(&b, "To be in the top 1%% of candidates for this %s role:\n", jobAd.JobTitle)
		b.WriteString("• Obtain industry-recognized certifications relevant to this position\n")
		b.WriteString("• Develop expertise in emerging technologies or methodologies in your field\n")
		b.WriteString("• Build a portfolio of impressive projects that demonstrate your capabilities\n")
		fmt.Fprintf(&b, "• Network with professionals in similar roles at %s or similar companies\n", jobAd.CompanyName)
		b.WriteString("• Consider writing blog posts or giving presentations about your expertise\n\n")
	}

	b.WriteString("INTERVIEW PREPARATION\n\n")
	b.WriteString("Key Questions to Prepare For:\n\n")

	b.WriteString("Behavioral Questions:\n")
	for i, q := range questions.Behavioral {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	b.WriteString("\n")

	b.WriteString("Role-Specific Questions:\n")
	for i, q := range questions.Technical {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	b.WriteString("\n")

	b.WriteString("Interview Strategy:\n")
	b.WriteString("• Prepare specific examples using the STAR method (Situation, Task, Action, Result)\n")
	fmt.Fprintf(&b, "• Research %s's recent news, values, and company culture\n", jobAd.CompanyName)
	b.WriteString("• Prepare thoughtful questions about the role, team, and company direction\n")
	b.WriteString("• Practice explaining your experience in terms that relate to this specific job\n\n")

	b.WriteString("APPLICATION STRATEGY\n\n")
	fmt.Fprintf(&b, "Your Match Score: %d%% alignment with this position\n\n", matchScore)
	b.WriteString(bandText(applicationStrategyBands, matchScore))
	b.WriteString("\n\n")

	b.WriteString("Next Steps:\n")
	b.WriteString("1. Update your resume using the suggestions above\n")
	b.WriteString("2. Apply for this position and similar roles\n")
	b.WriteString("3. Continue developing the missing skills identified\n")
	b.WriteString("4. Network with professionals in this field\n")
	b.WriteString("5. Keep track of your applications and follow up appropriately\n\n")

	fmt.Fprintf(&b, "Remember: Every application is a learning opportunity. Use this feedback to continuously improve your job search strategy. Good luck with your application to %s!", jobAd.CompanyName)

	return strings.TrimSpace(b.String())
}

func capSkills(skills []string, limit int) []string {
	if len(skills) > limit {
		return skills[:limit]
	}
	return skills
}
