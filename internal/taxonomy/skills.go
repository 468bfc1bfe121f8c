package taxonomy

// Skill is a named skill with the substring keywords that attribute it.
// Matching is literal substring search over lower-cased video text, not
// token-based: "ai" matches inside "train". That behavior is intentional
// and pinned by tests.
type Skill struct {
	Name     string
	Keywords []string
}

// Skill names referenced by topic clustering and the career knowledge base.
const (
	SkillProgramming = "Programming"
	SkillDataScience = "Data Science"
	SkillDesign      = "Design"
	SkillMarketing   = "Marketing"
	SkillBusiness    = "Business"
	SkillDevOps      = "DevOps"
)

var skills = []Skill{
	{
		Name: SkillProgramming,
		Keywords: []string{
			"python", "javascript", "java", "react", "node", "programming",
			"coding", "development", "api", "framework", "typescript", "vue", "angular",
		},
	},
	{
		Name: SkillDataScience,
		Keywords: []string{
			"machine learning", "ml", "ai", "data science", "pandas", "numpy",
			"tensorflow", "pytorch", "statistics", "analysis", "visualization",
		},
	},
	{
		Name: SkillDesign,
		Keywords: []string{
			"design", "figma", "ui", "ux", "photoshop", "illustrator",
			"sketch", "prototyping", "wireframe",
		},
	},
	{
		Name: SkillMarketing,
		Keywords: []string{
			"marketing", "seo", "advertising", "social media", "content",
			"branding", "strategy",
		},
	},
	{
		Name: SkillBusiness,
		Keywords: []string{
			"business", "entrepreneurship", "startup", "finance",
			"management", "leadership",
		},
	},
	{
		Name: SkillDevOps,
		Keywords: []string{
			"docker", "kubernetes", "aws", "cloud", "ci/cd", "devops", "infrastructure",
		},
	},
}

// Skills returns the skill taxonomy in fixed declaration order.
func Skills() []Skill {
	return skills
}
