package advice

import "strings"

// ExtractSkills returns the vocabulary phrases contained in text, compared
// case-insensitively by substring. The result follows vocabulary order and
// contains each phrase at most once, even when the vocabulary repeats it.
func ExtractSkills(text string, vocabulary []string) []string {
	textLower := strings.ToLower(text)

	skills := make([]string, 0)
	seen := make(map[string]bool)

	for _, skill := range vocabulary {
		if seen[skill] {
			continue
		}
		if strings.Contains(textLower, strings.ToLower(skill)) {
			skills = append(skills, skill)
			seen[skill] = true
		}
	}

	return skills
}

// FindMatchingSkills returns the job skills that also appear in resumeSkills,
// compared case-insensitively. Order follows jobSkills; duplicates removed.
func FindMatchingSkills(jobSkills, resumeSkills []string) []string {
	matching := make([]string, 0)
	seen := make(map[string]bool)

	for _, jobSkill := range jobSkills {
		for _, resumeSkill := range resumeSkills {
			if strings.EqualFold(jobSkill, resumeSkill) {
				key := strings.ToLower(jobSkill)
				if !seen[key] {
					matching = append(matching, jobSkill)
					seen[key] = true
				}
			}
		}
	}

	return matching
}

// FindMissingSkills returns the job skills with no case-insensitive
// counterpart in resumeSkills, preserving jobSkills order.
func FindMissingSkills(jobSkills, resumeSkills []string) []string {
	resumeSkillsLower := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeSkillsLower[strings.ToLower(skill)] = true
	}

	missing := make([]string, 0)
	for _, jobSkill := range jobSkills {
		if !resumeSkillsLower[strings.ToLower(jobSkill)] {
			missing = append(missing, jobSkill)
		}
	}

	return missing
}
