// Package careers holds the static career knowledge base: each definition
// lists required skills with importance weights and category affinities.
// Reference data only; not user-specific and never edited at runtime.
package careers

// CareerSkill is a required skill with an importance weight in [0,1].
type CareerSkill struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// CategoryAffinity is a watch-history category with an importance weight in
// [0,1]. Affinities are an ordered list, not a map: declaration order drives
// scoring iteration and contributing-factor order.
type CategoryAffinity struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// CareerDefinition describes one candidate career.
type CareerDefinition struct {
	Title           string             `json:"title"`
	RequiredSkills  []CareerSkill      `json:"requiredSkills"`
	CategoryWeights []CategoryAffinity `json:"categoryWeights"`
	Description     string             `json:"description"`
	TypicalPaths    []string           `json:"typicalPaths"`
}

var knowledgeBase = []CareerDefinition{
	{
		Title: "Data Scientist",
		RequiredSkills: []CareerSkill{
			{Name: "Data Science", Weight: 0.4},
			{Name: "Programming", Weight: 0.3},
			{Name: "Statistics", Weight: 0.2},
			{Name: "Visualization", Weight: 0.1},
		},
		CategoryWeights: []CategoryAffinity{
			{Name: "Science & Technology", Weight: 0.5},
			{Name: "Education", Weight: 0.3},
		},
		Description:  "Analyze complex data to extract insights and build predictive models",
		TypicalPaths: []string{"Python", "Statistics", "Machine Learning", "Data Visualization"},
	},
	{
		Title: "Software Engineer",
		RequiredSkills: []CareerSkill{
			{Name: "Programming", Weight: 0.5},
			{Name: "DevOps", Weight: 0.2},
			{Name: "Problem Solving", Weight: 0.3},
		},
		CategoryWeights: []CategoryAffinity{
			{Name: "Science & Technology", Weight: 0.6},
			{Name: "Education", Weight: 0.4},
		},
		Description:  "Design, develop, and maintain software applications",
		TypicalPaths: []string{"Computer Science", "Software Development", "System Design"},
	},
	{
		Title: "UX/UI Designer",
		RequiredSkills: []CareerSkill{
			{Name: "Design", Weight: 0.5},
			{Name: "User Research", Weight: 0.3},
			{Name: "Prototyping", Weight: 0.2},
		},
		CategoryWeights: []CategoryAffinity{
			{Name: "Howto & Style", Weight: 0.4},
			{Name: "Education", Weight: 0.3},
		},
		Description:  "Create intuitive and visually appealing user interfaces",
		TypicalPaths: []string{"Design Principles", "User Research", "Prototyping Tools"},
	},
	{
		Title: "Product Manager",
		RequiredSkills: []CareerSkill{
			{Name: "Business", Weight: 0.4},
			{Name: "Marketing", Weight: 0.3},
			{Name: "Strategic Planning", Weight: 0.3},
		},
		CategoryWeights: []CategoryAffinity{
			{Name: "Business", Weight: 0.5},
			{Name: "Education", Weight: 0.2},
		},
		Description:  "Guide product strategy and coordinate cross-functional teams",
		TypicalPaths: []string{"Business Strategy", "Product Design", "Market Research"},
	},
	{
		Title: "ML Engineer",
		RequiredSkills: []CareerSkill{
			{Name: "Data Science", Weight: 0.4},
			{Name: "Programming", Weight: 0.4},
			{Name: "DevOps", Weight: 0.2},
		},
		CategoryWeights: []CategoryAffinity{
			{Name: "Science & Technology", Weight: 0.7},
			{Name: "Education", Weight: 0.3},
		},
		Description:  "Build and deploy machine learning systems at scale",
		TypicalPaths: []string{"Deep Learning", "MLOps", "Model Deployment"},
	},
	{
		Title: "Digital Marketer",
		RequiredSkills: []CareerSkill{
			{Name: "Marketing", Weight: 0.5},
			{Name: "Content Creation", Weight: 0.3},
			{Name: "Analytics", Weight: 0.2},
		},
		CategoryWeights: []CategoryAffinity{
			{Name: "People & Blogs", Weight: 0.4},
			{Name: "Entertainment", Weight: 0.3},
		},
		Description:  "Promote brands and products through digital channels",
		TypicalPaths: []string{"SEO", "Social Media", "Content Marketing", "Analytics"},
	},
}

// All returns the knowledge base in declaration order. Declaration order is
// the ranking tie-break, so it is part of the contract. The result is a
// copy; callers cannot mutate the reference data.
func All() []CareerDefinition {
	out := make([]CareerDefinition, len(knowledgeBase))
	for i, def := range knowledgeBase {
		def.RequiredSkills = append([]CareerSkill(nil), def.RequiredSkills...)
		def.CategoryWeights = append([]CategoryAffinity(nil), def.CategoryWeights...)
		def.TypicalPaths = append([]string(nil), def.TypicalPaths...)
		out[i] = def
	}
	return out
}

// Size returns the number of defined careers.
func Size() int {
	return len(knowledgeBase)
}
