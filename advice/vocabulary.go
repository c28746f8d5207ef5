// Package advice implements the deterministic resume/job matching and
// advice-generation engine. Every function is a pure computation over its
// inputs: no I/O, no shared state, safe for concurrent use.
package advice

// SkillVocabulary is the fixed catalogue of known skill phrases used for
// keyword-based extraction. The same list is applied to both job descriptions
// and resume text so membership tests stay symmetric; extraction preserves
// this iteration order.
var SkillVocabulary = []string{
	// Technical Skills
	"javascript", "python", "java", "react", "node.js", "sql", "html", "css", "typescript",
	"aws", "azure", "docker", "kubernetes", "git", "linux", "windows", "mongodb", "postgresql",
	"api", "rest", "graphql", "microservices", "cloud", "devops", "ci/cd", "jenkins",
	"machine learning", "ai", "data analysis", "excel", "powerbi", "tableau", "analytics",

	// Trade Skills
	"electrical", "plumbing", "hvac", "carpentry", "welding", "construction", "maintenance",
	"mechanical", "automotive", "painting", "roofing", "flooring", "installation", "repair",
	"wiring", "circuit", "voltage", "blueprint", "safety", "osha", "power tools", "hand tools",

	// Healthcare Skills
	"nursing", "medical", "patient care", "cpr", "first aid", "healthcare", "clinical",
	"pharmacy", "dental", "physical therapy", "mental health", "medical records", "hipaa",

	// Business Skills
	"project management", "agile", "scrum", "leadership", "team management", "communication",
	"problem solving", "analytical", "strategic planning", "budget management", "sales",
	"marketing", "customer service", "negotiation", "presentation", "training", "coaching",
	"stakeholder management", "process improvement", "quality assurance", "compliance",

	// Education Skills
	"teaching", "curriculum", "lesson planning", "classroom management", "assessment",
	"special education", "tutoring", "educational technology", "student engagement",

	// Finance Skills
	"accounting", "bookkeeping", "financial analysis", "budgeting", "tax preparation",
	"auditing", "financial planning", "investment", "banking", "payroll", "quickbooks",

	// Legal Skills
	"legal research", "contract review", "litigation", "compliance", "regulatory",
	"paralegal", "legal writing", "case management", "court procedures",

	// Creative Skills
	"graphic design", "web design", "photography", "video editing", "content creation",
	"copywriting", "social media", "branding", "adobe", "photoshop", "illustrator",

	// Service Skills
	"customer service", "food service", "retail", "hospitality", "cleaning", "security",
	"logistics", "warehouse", "inventory", "shipping", "receiving", "forklift",
}
