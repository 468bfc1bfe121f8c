package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"career-insights/internal/careers"
	"career-insights/internal/common/logger"
	"career-insights/internal/features"
)

// DefaultTopN is the recommendation count when the caller passes none.
const DefaultTopN = 3

// Score thresholds for explanation building.
const (
	inferredSkillThreshold    = 30 // user skill score above this counts as a strength
	categoryFactorThreshold   = 10 // category percentage above this becomes a factor
	learningRatioCallout      = 60 // learning ratio above this is cited in the reason
	confidenceHighThreshold   = 70
	confidenceMediumThreshold = 50
	maxDisplayedFactors       = 5
	maxRoadmapSteps           = 5
)

// Engine scores careers against a user feature profile and builds
// explained recommendations.
type Engine struct {
	knowledgeBase []careers.CareerDefinition
	logger        logger.Logger
}

func NewEngine(log logger.Logger) *Engine {
	return &Engine{
		knowledgeBase: careers.All(),
		logger:        log.WithFields(map[string]interface{}{"component": "recommend"}),
	}
}

// Recommend returns the top-N careers, highest match score first. An
// all-zero profile still yields N recommendations in knowledge-base order;
// there is no "no match" outcome.
func (e *Engine) Recommend(userFeatures *features.UserFeatures, topN int) []CareerRecommendation {
	if topN <= 0 {
		topN = DefaultTopN
	}

	type scoredCareer struct {
		career careers.CareerDefinition
		score  int
	}

	scored := make([]scoredCareer, 0, len(e.knowledgeBase))
	for _, career := range e.knowledgeBase {
		scored = append(scored, scoredCareer{
			career: career,
			score:  matchScore(userFeatures, career),
		})
	}

	// Stable sort: equal scores keep knowledge-base order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if topN > len(scored) {
		topN = len(scored)
	}

	recommendations := make([]CareerRecommendation, 0, topN)
	for _, sc := range scored[:topN] {
		recommendations = append(recommendations, buildRecommendation(userFeatures, sc.career, sc.score))
	}

	if len(recommendations) > 0 {
		e.logger.Debug("recommendations built", map[string]interface{}{
			"requested": topN,
			"returned":  len(recommendations),
			"topTitle":  recommendations[0].Title,
			"topScore":  recommendations[0].MatchScore,
		})
	}

	return recommendations
}

// matchScore accumulates weighted skill scores and category percentages,
// normalized by total weight and clamped to [0,100]. A zero total weight
// scores 0 rather than dividing by zero.
func matchScore(f *features.UserFeatures, career careers.CareerDefinition) int {
	var totalScore, totalWeight float64

	for _, skill := range career.RequiredSkills {
		userScore := f.SkillScores[skill.Name]
		totalScore += userScore * skill.Weight
		totalWeight += skill.Weight
	}

	for _, affinity := range career.CategoryWeights {
		totalScore += f.CategoryPercentages[affinity.Name] * affinity.Weight
		totalWeight += affinity.Weight
	}

	if totalWeight == 0 {
		return 0
	}

	normalized := totalScore / totalWeight
	return int(math.Round(math.Min(100, math.Max(0, normalized))))
}

func buildRecommendation(f *features.UserFeatures, career careers.CareerDefinition, score int) CareerRecommendation {
	var contributingFactors []string
	var skillsInferred []string
	var missingSkills []string

	for _, skill := range career.RequiredSkills {
		userScore := f.SkillScores[skill.Name]
		if userScore > inferredSkillThreshold {
			skillsInferred = append(skillsInferred, skill.Name)
			contributingFactors = append(contributingFactors,
				fmt.Sprintf("Strong interest in %s (%d%% match)", skill.Name, int(math.Round(userScore))))
		} else {
			missingSkills = append(missingSkills, skill.Name)
		}
	}

	// Category factors follow skill factors, both in knowledge-base
	// declaration order.
	for _, affinity := range career.CategoryWeights {
		if pct := f.CategoryPercentages[affinity.Name]; pct > categoryFactorThreshold {
			contributingFactors = append(contributingFactors,
				fmt.Sprintf("%.1f%% of watch history in %s", pct, affinity.Name))
		}
	}

	skillsNeeded := make([]string, 0, len(career.RequiredSkills))
	for _, skill := range career.RequiredSkills {
		skillsNeeded = append(skillsNeeded, skill.Name)
	}

	displayedFactors := contributingFactors
	if len(displayedFactors) > maxDisplayedFactors {
		displayedFactors = displayedFactors[:maxDisplayedFactors]
	}

	return CareerRecommendation{
		Title:               career.Title,
		MatchScore:          score,
		Reason:              buildReason(f, career, skillsInferred, contributingFactors),
		ContributingFactors: displayedFactors,
		SkillsInferred:      skillsInferred,
		MissingSkills:       missingSkills,
		SkillsNeeded:        skillsNeeded,
		RoadmapSteps:        buildRoadmap(career, missingSkills, skillsInferred),
		Confidence:          confidenceFor(score),
	}
}

func confidenceFor(score int) Confidence {
	switch {
	case score >= confidenceHighThreshold:
		return ConfidenceHigh
	case score >= confidenceMediumThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// buildReason assembles the templated explanation: base sentence, up to
// three inferred skills, the learning-ratio callout, and the first two
// contributing factors.
func buildReason(f *features.UserFeatures, career careers.CareerDefinition, skillsInferred, factors []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Your watch history shows strong alignment with %s. ", career.Title)

	if len(skillsInferred) > 0 {
		topSkills := skillsInferred
		if len(topSkills) > 3 {
			topSkills = topSkills[:3]
		}
		fmt.Fprintf(&b, "You consistently watch content related to %s. ", strings.Join(topSkills, ", "))
	}

	if f.LearningRatio > learningRatioCallout {
		fmt.Fprintf(&b, "Your high learning-focused viewing pattern (%d%%) indicates serious interest in skill development. ",
			int(math.Round(f.LearningRatio)))
	}

	if len(factors) > 0 {
		topFactors := factors
		if len(topFactors) > 2 {
			topFactors = topFactors[:2]
		}
		fmt.Fprintf(&b, "Key indicators include: %s.", strings.Join(topFactors, "; "))
	}

	return b.String()
}

// buildRoadmap emits up to five steps in fixed order: deepen the top
// inferred skill, learn the top missing skill, then three generic steps
// parameterized by the career title.
func buildRoadmap(career careers.CareerDefinition, missingSkills, inferredSkills []string) []string {
	var roadmap []string

	if len(inferredSkills) > 0 {
		roadmap = append(roadmap, fmt.Sprintf("Deepen expertise in %s through advanced courses", inferredSkills[0]))
	}
	if len(missingSkills) > 0 {
		roadmap = append(roadmap, fmt.Sprintf("Learn fundamentals of %s", missingSkills[0]))
	}

	roadmap = append(roadmap,
		fmt.Sprintf("Build a portfolio project demonstrating %s skills", career.Title),
		fmt.Sprintf("Join %s communities and networks", career.Title),
		fmt.Sprintf("Seek mentorship from experienced %s professionals", career.Title),
	)

	if len(roadmap) > maxRoadmapSteps {
		roadmap = roadmap[:maxRoadmapSteps]
	}
	return roadmap
}
