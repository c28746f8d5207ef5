package advice

import (
	"math"
	"regexp"
	"strings"
)

// titleLabelPattern looks for an explicit title label in the job description,
// e.g. "Role: Senior Electrician". The capture group only fires on the "role:"
// alternative; a bare "position" or "job title" mention matches with an empty
// phrase, contributing nothing to either score. Free-form descriptions rarely
// contain such a label, so the title bonus is frequently inactive.
var titleLabelPattern = regexp.MustCompile(`(?i)job title|position|role:\s*([^.\n]+)`)

// experienceKeywords signal that the job description cares about prior
// industry experience; each is worth 5 points when echoed by the resume.
var experienceKeywords = []string{"years", "experience", "background", "worked", "employed"}

// educationKeywords signal educational requirements; each is worth 10 points
// when echoed by the resume.
var educationKeywords = []string{"degree", "bachelor", "master", "certification", "diploma"}

// ComputeMatchScore estimates resume-to-job fit as an integer in [0,100]
// from four weighted signal categories: title-keyword overlap, experience
// keywords, the matched-skill ratio, and education keywords. Each category
// grows maxScore only when the job description carries its signal, so a job
// description with no recognizable signals degrades to a skill-overlap
// fallback instead of dividing by zero. The normal path is clamped to
// [5,95]; the fallback path returns 50 when no job skills were identified
// and is otherwise capped at 90.
func ComputeMatchScore(resumeText, jobDescription string, matchingSkills, jobSkills []string) int {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobDescription)

	var score, maxScore float64

	// Title-keyword bonus: words from the labeled title phrase that are
	// longer than 3 characters and appear in the resume.
	if m := titleLabelPattern.FindStringSubmatch(jobDescription); m != nil {
		titleKeywords := strings.Fields(strings.ToLower(m[1]))
		for _, word := range titleKeywords {
			if len(word) > 3 && strings.Contains(resumeLower, word) {
				score += 15
			}
		}
		maxScore += float64(len(titleKeywords)) * 15
	}

	// Experience-keyword bonus
	for _, keyword := range experienceKeywords {
		if strings.Contains(jobLower, keyword) {
			maxScore += 5
			if strings.Contains(resumeLower, keyword) {
				score += 5
			}
		}
	}

	// Skill-ratio bonus
	if len(jobSkills) > 0 {
		score += float64(len(matchingSkills)) / float64(len(jobSkills)) * 50
		maxScore += 50
	}

	// Education-keyword bonus
	for _, keyword := range educationKeywords {
		if strings.Contains(jobLower, keyword) {
			maxScore += 10
			if strings.Contains(resumeLower, keyword) {
				score += 10
			}
		}
	}

	// No scoring signals at all: fall back to raw skill overlap.
	if maxScore == 0 {
		if len(jobSkills) == 0 {
			return 50 // neutral default
		}
		ratio := float64(len(matchingSkills)) / math.Max(float64(len(jobSkills)), 1) * 100
		return int(math.Round(math.Min(90, ratio)))
	}

	finalScore := math.Min(95, math.Max(5, score/maxScore*100))
	return int(math.Round(finalScore))
}
