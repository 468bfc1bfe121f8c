package features

import (
	"context"
	"testing"

	"career-insights/internal/common/errors"
	"career-insights/internal/common/logger"
	"career-insights/internal/enrichment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestEngine(t *testing.T) *Engine {
	return NewEngine(logger.NewTestLogger(t))
}

func enrichBatch(t *testing.T, videos []enrichment.RawVideo) *enrichment.EnrichmentResult {
	t.Helper()
	enricher := enrichment.NewEngine(&enrichment.Config{Workers: 2}, logger.NewNoOpLogger())
	result, err := enricher.EnrichBatch(context.Background(), videos)
	require.NoError(t, err)
	return result
}

func video(id, title, description, categoryID string) enrichment.RawVideo {
	return enrichment.RawVideo{
		ID:          id,
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
	}
}

// ==========================
// Profile Generation
// ==========================

func TestGenerate_EmptyBatchFails(t *testing.T) {
	engine := createTestEngine(t)

	_, err := engine.Generate(&enrichment.EnrichmentResult{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInsufficientData))

	_, err = engine.Generate(nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInsufficientData))
}

func TestGenerate_CategoryPercentages(t *testing.T) {
	engine := createTestEngine(t)
	result := enrichBatch(t, []enrichment.RawVideo{
		video("v1", "a", "", "28"),
		video("v2", "b", "", "28"),
		video("v3", "c", "", "27"),
		video("v4", "d", "", ""),
	})

	features, err := engine.Generate(result)
	require.NoError(t, err)

	assert.InDelta(t, 50.0, features.CategoryPercentages["Science & Technology"], 0.001)
	assert.InDelta(t, 25.0, features.CategoryPercentages["Education"], 0.001)
	assert.InDelta(t, 25.0, features.CategoryPercentages["Unknown"], 0.001)
}

func TestGenerate_MostFrequentSkillScoresExactly100(t *testing.T) {
	engine := createTestEngine(t)
	result := enrichBatch(t, []enrichment.RawVideo{
		video("v1", "python tutorial", "", ""),
		video("v2", "javascript patterns", "", ""),
		video("v3", "react and typescript", "", ""),
		video("v4", "docker compose walkthrough", "", ""),
	})

	features, err := engine.Generate(result)
	require.NoError(t, err)

	require.NotEmpty(t, features.SkillScores)
	assert.InDelta(t, 100.0, features.SkillScores["Programming"], 0.001)
	assert.Less(t, features.SkillScores["DevOps"], 100.0)
}

func TestGenerate_LevelRatiosSumTo100(t *testing.T) {
	engine := createTestEngine(t)
	result := enrichBatch(t, []enrichment.RawVideo{
		video("v1", "go basics", "", ""),
		video("v2", "advanced go patterns", "", ""),
		video("v3", "go concurrency", "", ""),
		video("v4", "introduction to go", "", ""),
		video("v5", "profiling deep dive", "", ""),
		video("v6", "generics overview", "", ""),
		video("v7", "error handling", "", ""),
	})

	features, err := engine.Generate(result)
	require.NoError(t, err)

	sum := features.BeginnerRatio + features.IntermediateRatio + features.AdvancedRatio
	assert.InDelta(t, 100.0, sum, 0.001)
}

func TestGenerate_EntertainmentRatioComplement(t *testing.T) {
	engine := createTestEngine(t)
	result := enrichBatch(t, []enrichment.RawVideo{
		video("v1", "python tutorial", "", ""),
		video("v2", "fail compilation", "", ""),
	})

	features, err := engine.Generate(result)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, features.LearningRatio+features.EntertainmentRatio, 0.001)
	assert.InDelta(t, result.LearningRatio, features.LearningRatio, 0.001)
}

// ==========================
// Feature Vector Layout
// ==========================

func TestGenerate_FeatureVectorLengthIsFixed(t *testing.T) {
	engine := createTestEngine(t)

	tests := []struct {
		name   string
		videos []enrichment.RawVideo
	}{
		{
			name:   "single video",
			videos: []enrichment.RawVideo{video("v1", "python tutorial", "", "28")},
		},
		{
			name: "many distinct categories and skills",
			videos: []enrichment.RawVideo{
				video("v1", "python api design with figma", "seo, startup finance, docker, pandas", "28"),
				video("v2", "marketing strategy", "", "24"),
				video("v3", "music mix", "", "10"),
				video("v4", "gaming stream", "", "20"),
				video("v5", "travel vlog", "", "19"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features, err := engine.Generate(enrichBatch(t, tt.videos))
			require.NoError(t, err)
			assert.Len(t, features.FeatureVector, FeatureVectorLength)
		})
	}
}

func TestGenerate_FeatureVectorLayout(t *testing.T) {
	engine := createTestEngine(t)
	result := enrichBatch(t, []enrichment.RawVideo{
		video("v1", "python tutorial", "", "28"),
		video("v2", "python web apis", "", "28"),
		video("v3", "figma walkthrough", "", "26"),
		video("v4", "funny moments", "", "24"),
	})

	features, err := engine.Generate(result)
	require.NoError(t, err)
	vec := features.FeatureVector

	// Positions 0-9: category percentages descending, zero-filled.
	assert.InDelta(t, 50.0, vec[0], 0.001) // Science & Technology
	assert.InDelta(t, 25.0, vec[1], 0.001)
	assert.InDelta(t, 25.0, vec[2], 0.001)
	for i := 3; i < 10; i++ {
		assert.Zero(t, vec[i], "category slot %d should be zero-filled", i)
	}

	// Positions 10-19: skill scores descending, zero-filled.
	assert.InDelta(t, 100.0, vec[10], 0.001) // Programming
	for i := 12; i < 20; i++ {
		assert.Zero(t, vec[i], "skill slot %d should be zero-filled", i)
	}

	// Positions 20-22: Technology, Creative, Business clusters.
	assert.InDelta(t, features.TopicClusterDistribution["Technology"], vec[20], 0.001)
	assert.InDelta(t, features.TopicClusterDistribution["Creative"], vec[21], 0.001)
	assert.Zero(t, vec[22], "no Business cluster in this batch")

	// Positions 23-27: ratios.
	assert.InDelta(t, features.LearningRatio, vec[23], 0.001)
	assert.InDelta(t, features.EntertainmentRatio, vec[24], 0.001)
	assert.InDelta(t, features.BeginnerRatio, vec[25], 0.001)
	assert.InDelta(t, features.IntermediateRatio, vec[26], 0.001)
	assert.InDelta(t, features.AdvancedRatio, vec[27], 0.001)
}

func TestGenerate_TopicClusterDistributionCountsVideos(t *testing.T) {
	engine := createTestEngine(t)
	result := enrichBatch(t, []enrichment.RawVideo{
		video("v1", "python tutorial", "", ""),
		video("v2", "pandas analysis", "", ""),
		video("v3", "cooking show", "", ""),
		video("v4", "figma and marketing strategy", "", ""),
	})

	features, err := engine.Generate(result)
	require.NoError(t, err)

	assert.InDelta(t, 50.0, features.TopicClusterDistribution["Technology"], 0.001)
	assert.InDelta(t, 25.0, features.TopicClusterDistribution["General"], 0.001)
	assert.InDelta(t, 25.0, features.TopicClusterDistribution["Creative"], 0.001)
	assert.InDelta(t, 25.0, features.TopicClusterDistribution["Business"], 0.001)
}

// ==========================
// Cosine Similarity
// ==========================

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{name: "identical vectors", a: []float64{1, 2, 3}, b: []float64{1, 2, 3}, expected: 1.0},
		{name: "orthogonal vectors", a: []float64{1, 0}, b: []float64{0, 1}, expected: 0.0},
		{name: "opposite vectors", a: []float64{1, 0}, b: []float64{-1, 0}, expected: -1.0},
		{name: "zero vector yields zero", a: []float64{0, 0, 0}, b: []float64{1, 2, 3}, expected: 0.0},
		{name: "both zero vectors", a: []float64{0, 0}, b: []float64{0, 0}, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CosineSimilarity(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestCosineSimilarity_LengthMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float64{1, 2}, []float64{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeVectorLengthMismatch))
}

func TestCosineSimilarity_SelfSimilarityOfGeneratedVector(t *testing.T) {
	engine := createTestEngine(t)
	features, err := engine.Generate(enrichBatch(t, []enrichment.RawVideo{
		video("v1", "python tutorial", "", "28"),
		video("v2", "funny moments", "", "24"),
	}))
	require.NoError(t, err)

	got, err := CosineSimilarity(features.FeatureVector, features.FeatureVector)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9)
}
