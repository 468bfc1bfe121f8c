package recommend

// Confidence is the coarse display bucket derived from the match score.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// CareerRecommendation is one explained, scored career match. Created per
// scoring run and never mutated; consumed by the presentation layer.
type CareerRecommendation struct {
	Title               string     `json:"title"`
	MatchScore          int        `json:"matchScore"`
	Reason              string     `json:"reason"`
	ContributingFactors []string   `json:"contributingFactors"`
	SkillsInferred      []string   `json:"skillsInferred"`
	MissingSkills       []string   `json:"missingSkills"`
	SkillsNeeded        []string   `json:"skillsNeeded"`
	RoadmapSteps        []string   `json:"roadmapSteps"`
	Confidence          Confidence `json:"confidence"`
}
