package features

import (
	"fmt"
	"math"
	"sort"

	"career-insights/internal/common/errors"
	"career-insights/internal/common/logger"
	"career-insights/internal/enrichment"
)

// Engine turns an EnrichmentResult into a normalized UserFeatures profile.
type Engine struct {
	logger logger.Logger
}

func NewEngine(log logger.Logger) *Engine {
	return &Engine{
		logger: log.WithFields(map[string]interface{}{"component": "features"}),
	}
}

// Generate builds the feature profile. An empty batch fails with
// INSUFFICIENT_DATA rather than returning an all-zero profile.
func (e *Engine) Generate(result *enrichment.EnrichmentResult) (*UserFeatures, error) {
	if result == nil || len(result.EnrichedVideos) == 0 {
		return nil, errors.NewInsufficientDataError("enrichment result contains no videos")
	}

	totalVideos := float64(len(result.EnrichedVideos))

	categoryPercentages := make(map[string]float64, len(result.CategoryDistribution))
	for category, count := range result.CategoryDistribution {
		categoryPercentages[category] = float64(count) / totalVideos * 100
	}

	// Relative skill scores: the most frequent skill always scores 100.
	maxSkillCount := 1
	for _, count := range result.SkillFrequency {
		if count > maxSkillCount {
			maxSkillCount = count
		}
	}
	skillScores := make(map[string]float64, len(result.SkillFrequency))
	for skill, count := range result.SkillFrequency {
		skillScores[skill] = float64(count) / float64(maxSkillCount) * 100
	}

	topicClusterDistribution := make(map[string]float64)
	for _, video := range result.EnrichedVideos {
		for _, cluster := range video.TopicClusters {
			topicClusterDistribution[cluster]++
		}
	}
	for cluster := range topicClusterDistribution {
		topicClusterDistribution[cluster] = topicClusterDistribution[cluster] / totalVideos * 100
	}

	var beginnerCount, intermediateCount, advancedCount int
	for _, video := range result.EnrichedVideos {
		switch video.LearningLevel {
		case enrichment.LevelBeginner:
			beginnerCount++
		case enrichment.LevelAdvanced:
			advancedCount++
		default:
			intermediateCount++
		}
	}

	features := &UserFeatures{
		CategoryPercentages:      categoryPercentages,
		SkillScores:              skillScores,
		WatchFrequencyPerWeek:    totalVideos / 4, // assumes a 30-day export window
		LearningRatio:            result.LearningRatio,
		EntertainmentRatio:       100 - result.LearningRatio,
		TopicClusterDistribution: topicClusterDistribution,
		BeginnerRatio:            float64(beginnerCount) / totalVideos * 100,
		IntermediateRatio:        float64(intermediateCount) / totalVideos * 100,
		AdvancedRatio:            float64(advancedCount) / totalVideos * 100,
	}
	features.FeatureVector = buildFeatureVector(features)

	e.logger.Debug("features generated", map[string]interface{}{
		"categories":    len(categoryPercentages),
		"skills":        len(skillScores),
		"learningRatio": features.LearningRatio,
	})

	return features, nil
}

// buildFeatureVector assembles the fixed 28-position layout documented on
// FeatureVectorLength.
func buildFeatureVector(f *UserFeatures) []float64 {
	vector := make([]float64, 0, FeatureVectorLength)

	vector = append(vector, topValues(f.CategoryPercentages, 10)...)
	vector = append(vector, topValues(f.SkillScores, 10)...)

	vector = append(vector,
		f.TopicClusterDistribution["Technology"],
		f.TopicClusterDistribution["Creative"],
		f.TopicClusterDistribution["Business"],
	)

	vector = append(vector, f.LearningRatio, f.EntertainmentRatio)
	vector = append(vector, f.BeginnerRatio, f.IntermediateRatio, f.AdvancedRatio)

	return vector
}

// topValues returns the n largest values in descending order, zero-filled
// to exactly n entries. Equal values order by key so the layout stays
// deterministic.
func topValues(m map[string]float64, n int) []float64 {
	type entry struct {
		key   string
		value float64
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, entry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].key < entries[j].key
	})

	out := make([]float64, n)
	for i := 0; i < n && i < len(entries); i++ {
		out[i] = entries[i].value
	}
	return out
}

// CosineSimilarity computes dot(a,b) / (||a||*||b||) over two equal-length
// vectors. A zero norm on either side yields 0, never a division by zero.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewVectorLengthMismatchError(len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denominator := math.Sqrt(normA) * math.Sqrt(normB)
	if denominator == 0 {
		return 0, nil
	}
	return dot / denominator, nil
}

// VectorSummary formats the leading vector positions for debug logging.
func VectorSummary(v []float64) string {
	if len(v) < 5 {
		return fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f %.2f ...]", v[0], v[1], v[2], v[3], v[4])
}
