package advice

import "strings"

// resourceCategory maps skill-name keywords to a fixed learning-resource
// suggestion. Categories are checked in order and the first match wins.
type resourceCategory struct {
	keywords []string
	resource string
}

var resourceCategories = []resourceCategory{
	{[]string{"javascript", "react"}, "FreeCodeCamp, Coursera JavaScript courses, or React documentation"},
	{[]string{"python"}, "Python.org tutorial, Codecademy Python course, or Coursera Python specialization"},
	{[]string{"aws"}, "AWS Free Tier, AWS Cloud Practitioner certification, or A Cloud Guru"},
	{[]string{"project management"}, "Google Project Management Certificate, PMP certification, or Coursera Project Management courses"},
	{[]string{"data", "analytics"}, "Google Data Analytics Certificate, Coursera Data Science specialization, or Kaggle Learn"},
	{[]string{"electrical"}, "NECA training programs, electrical apprenticeship, or local trade school courses"},
	{[]string{"plumbing"}, "plumbing apprenticeship, vocational training, or local trade school programs"},
	{[]string{"hvac"}, "HVAC certification programs, EPA 608 certification, or trade school training"},
	{[]string{"nursing"}, "nursing degree programs, CNA certification, or continuing education courses"},
	{[]string{"medical"}, "medical training programs, healthcare certifications, or continuing education"},
}

// genericResource is suggested when no category keyword matches the skill.
const genericResource = "LinkedIn Learning, Coursera, or Udemy courses"

// RecommendResource returns a learning-resource suggestion for the given
// skill. Matching is case-insensitive substring containment against the
// ordered category table; first match wins.
func RecommendResource(skill string) string {
	skillLower := strings.ToLower(skill)
	for _, category := range resourceCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(skillLower, keyword) {
				return category.resource
			}
		}
	}
	return genericResource
}
