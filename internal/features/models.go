package features

// FeatureVectorLength is the fixed length of the numeric profile vector.
// The layout is a contract relied on by similarity scoring and any
// persisted use; changing order or length is a breaking change.
//
// Positions:
//
//	 0–9  top 10 categories by percentage, descending, zero-filled
//	10–19 top 10 skills by score, descending, zero-filled
//	20–22 topic cluster distribution: Technology, Creative, Business
//	23    learning ratio
//	24    entertainment ratio
//	25–27 beginner, intermediate, advanced ratios
const FeatureVectorLength = 28

// UserFeatures is the normalized numeric profile derived from an
// EnrichmentResult. Stateless; recomputed on every run.
type UserFeatures struct {
	CategoryPercentages      map[string]float64 `json:"categoryPercentages"`
	SkillScores              map[string]float64 `json:"skillScores"`
	WatchFrequencyPerWeek    float64            `json:"watchFrequencyPerWeek"`
	LearningRatio            float64            `json:"learningRatio"`
	EntertainmentRatio       float64            `json:"entertainmentRatio"`
	TopicClusterDistribution map[string]float64 `json:"topicClusterDistribution"`
	BeginnerRatio            float64            `json:"beginnerRatio"`
	IntermediateRatio        float64            `json:"intermediateRatio"`
	AdvancedRatio            float64            `json:"advancedRatio"`
	FeatureVector            []float64          `json:"featureVector"`
}
