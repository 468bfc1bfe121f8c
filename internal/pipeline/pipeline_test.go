package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"career-insights/internal/common/config"
	"career-insights/internal/common/database"
	"career-insights/internal/common/errors"
	"career-insights/internal/common/logger"
	"career-insights/internal/enrichment"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestService(t *testing.T, cache Cache) *Service {
	cfg := &config.PipelineConfig{
		TopN:          3,
		EnrichWorkers: 2,
		MaxHistory:    200,
		CacheTTL:      60,
	}
	return NewService(cfg, cache, nil, logger.NewTestLogger(t))
}

func createRedisCache(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func createHistory(n int) []enrichment.RawVideo {
	videos := make([]enrichment.RawVideo, n)
	for i := range videos {
		videos[i] = enrichment.RawVideo{
			ID:         fmt.Sprintf("vid-%03d", i),
			Title:      "Python tutorial for data analysis",
			CategoryID: "28",
			WatchedAt:  "2026-08-15T20:00:00Z",
		}
	}
	return videos
}

type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) (string, error) {
	return "", stderrors.New("cache down")
}

func (failingCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return stderrors.New("cache down")
}

// ==========================
// Analyze
// ==========================

func TestAnalyze_EndToEnd(t *testing.T) {
	service := createTestService(t, nil)

	analysis, err := service.Analyze(context.Background(), createHistory(5), 3)

	require.NoError(t, err)
	assert.NotEmpty(t, analysis.RunID)
	assert.False(t, analysis.GeneratedAt.IsZero())
	require.NotNil(t, analysis.Enrichment)
	assert.Len(t, analysis.Enrichment.EnrichedVideos, 5)
	require.NotNil(t, analysis.Features)
	assert.Len(t, analysis.Recommendations, 3)
}

func TestAnalyze_TopNFallsBackToConfig(t *testing.T) {
	service := createTestService(t, nil)

	analysis, err := service.Analyze(context.Background(), createHistory(3), 0)

	require.NoError(t, err)
	assert.Len(t, analysis.Recommendations, 3)
}

func TestAnalyze_EmptyBatchFails(t *testing.T) {
	service := createTestService(t, nil)

	_, err := service.Analyze(context.Background(), nil, 3)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInsufficientData))
}

func TestAnalyze_DeterministicRecommendations(t *testing.T) {
	service := createTestService(t, nil)
	videos := createHistory(10)

	first, err := service.Analyze(context.Background(), videos, 3)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := service.Analyze(context.Background(), videos, 3)
		require.NoError(t, err)
		assert.Equal(t, first.Recommendations, again.Recommendations)
		assert.Equal(t, first.Features.FeatureVector, again.Features.FeatureVector)
	}
}

// ==========================
// Result Cache
// ==========================

func TestAnalyze_CacheHitReturnsStoredRun(t *testing.T) {
	client, _ := createRedisCache(t)
	service := createTestService(t, client)
	videos := createHistory(4)

	first, err := service.Analyze(context.Background(), videos, 3)
	require.NoError(t, err)

	second, err := service.Analyze(context.Background(), videos, 3)
	require.NoError(t, err)

	// Same run id means the second call was served from the cache.
	assert.Equal(t, first.RunID, second.RunID)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}

func TestAnalyze_CacheKeyedByTopN(t *testing.T) {
	client, _ := createRedisCache(t)
	service := createTestService(t, client)
	videos := createHistory(4)

	top3, err := service.Analyze(context.Background(), videos, 3)
	require.NoError(t, err)

	top5, err := service.Analyze(context.Background(), videos, 5)
	require.NoError(t, err)

	assert.NotEqual(t, top3.RunID, top5.RunID)
	assert.Len(t, top5.Recommendations, 5)
}

func TestAnalyze_CorruptedCacheEntryIsRecomputed(t *testing.T) {
	client, mr := createRedisCache(t)
	service := createTestService(t, client)
	videos := createHistory(4)

	require.NoError(t, mr.Set(cacheKey(videos, 3), "not json"))

	analysis, err := service.Analyze(context.Background(), videos, 3)

	require.NoError(t, err)
	assert.Len(t, analysis.Recommendations, 3)
}

func TestAnalyze_CacheFailuresAreBypassed(t *testing.T) {
	service := createTestService(t, failingCache{})

	analysis, err := service.Analyze(context.Background(), createHistory(4), 3)

	require.NoError(t, err)
	assert.Len(t, analysis.Recommendations, 3)
}

func TestCacheKey_StableAndDistinct(t *testing.T) {
	a := createHistory(3)
	b := createHistory(4)

	assert.Equal(t, cacheKey(a, 3), cacheKey(a, 3))
	assert.NotEqual(t, cacheKey(a, 3), cacheKey(b, 3))
	assert.NotEqual(t, cacheKey(a, 3), cacheKey(a, 5))
}
