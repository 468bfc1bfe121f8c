// Package pipeline wires the three engines into a single Analyze call:
// raw videos in, ranked career recommendations out.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"career-insights/internal/common/config"
	"career-insights/internal/common/logger"
	"career-insights/internal/common/metrics"
	"career-insights/internal/common/observability"
	"career-insights/internal/enrichment"
	"career-insights/internal/features"
	"career-insights/internal/recommend"

	"github.com/google/uuid"
)

// Cache is the minimal result-cache surface the pipeline needs. Satisfied
// by database.RedisClient; nil disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Analysis is the full outcome of one pipeline run.
type Analysis struct {
	RunID           string                           `json:"runId"`
	Enrichment      *enrichment.EnrichmentResult     `json:"enrichment"`
	Features        *features.UserFeatures           `json:"features"`
	Recommendations []recommend.CareerRecommendation `json:"recommendations"`
	GeneratedAt     time.Time                        `json:"generatedAt"`
}

// Service orchestrates enrichment, feature engineering, and recommendation.
type Service struct {
	config      *config.PipelineConfig
	enricher    *enrichment.Engine
	featurer    *features.Engine
	recommender *recommend.Engine
	cache       Cache
	obs         *observability.Observability
	logger      logger.Logger
}

func NewService(cfg *config.PipelineConfig, cache Cache, obs *observability.Observability, log logger.Logger) *Service {
	if cfg == nil {
		cfg = &config.PipelineConfig{TopN: recommend.DefaultTopN}
	}
	return &Service{
		config:      cfg,
		enricher:    enrichment.NewEngine(&enrichment.Config{Workers: cfg.EnrichWorkers}, log),
		featurer:    features.NewEngine(log),
		recommender: recommend.NewEngine(log),
		cache:       cache,
		obs:         obs,
		logger:      log.WithFields(map[string]interface{}{"component": "pipeline"}),
	}
}

// Analyze runs the full pipeline over a batch. topN <= 0 falls back to the
// configured default. Cache failures are logged and bypassed; they never
// fail the run.
func (s *Service) Analyze(ctx context.Context, videos []enrichment.RawVideo, topN int) (*Analysis, error) {
	if topN <= 0 {
		topN = s.config.TopN
	}

	runID := uuid.NewString()
	log := s.logger.WithFields(map[string]interface{}{"runId": runID})
	start := time.Now()

	log.Info("analysis started", map[string]interface{}{
		"videos": len(videos),
		"topN":   topN,
	})

	if cached := s.lookupCache(ctx, videos, topN, log); cached != nil {
		return cached, nil
	}

	enrichStart := time.Now()
	enrichmentResult, err := s.enricher.EnrichBatch(ctx, videos)
	if err != nil {
		s.recordRun(ctx, start, "error")
		return nil, err
	}
	metrics.StageDuration.WithLabelValues("enrichment").Observe(time.Since(enrichStart).Seconds())
	metrics.VideosEnriched.Add(float64(len(videos)))

	featureStart := time.Now()
	userFeatures, err := s.featurer.Generate(enrichmentResult)
	if err != nil {
		s.recordRun(ctx, start, "error")
		return nil, err
	}
	metrics.StageDuration.WithLabelValues("features").Observe(time.Since(featureStart).Seconds())

	recommendStart := time.Now()
	recommendations := s.recommender.Recommend(userFeatures, topN)
	metrics.StageDuration.WithLabelValues("recommend").Observe(time.Since(recommendStart).Seconds())

	analysis := &Analysis{
		RunID:           runID,
		Enrichment:      enrichmentResult,
		Features:        userFeatures,
		Recommendations: recommendations,
		GeneratedAt:     time.Now().UTC(),
	}

	s.storeCache(ctx, videos, topN, analysis, log)
	s.recordRun(ctx, start, "success")

	log.Info("analysis finished", map[string]interface{}{
		"recommendations": len(recommendations),
		"featureVector":   features.VectorSummary(userFeatures.FeatureVector),
		"durationMs":      time.Since(start).Milliseconds(),
	})

	return analysis, nil
}

func (s *Service) recordRun(ctx context.Context, start time.Time, status string) {
	metrics.PipelineRuns.WithLabelValues(status).Inc()
	if s.obs != nil {
		s.obs.RecordRun(ctx, status)
		s.obs.RecordRunDuration(ctx, time.Since(start), status)
	}
}

func (s *Service) lookupCache(ctx context.Context, videos []enrichment.RawVideo, topN int, log logger.Logger) *Analysis {
	if s.cache == nil {
		return nil
	}

	key := cacheKey(videos, topN)
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheRequests.WithLabelValues("miss").Inc()
		return nil
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(val), &analysis); err != nil {
		metrics.CacheRequests.WithLabelValues("error").Inc()
		log.WithError(err).Warn("cached analysis is unreadable, recomputing", nil)
		return nil
	}

	metrics.CacheRequests.WithLabelValues("hit").Inc()
	log.Info("analysis served from cache", map[string]interface{}{"cacheKey": key})
	return &analysis
}

func (s *Service) storeCache(ctx context.Context, videos []enrichment.RawVideo, topN int, analysis *Analysis, log logger.Logger) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(analysis)
	if err != nil {
		log.WithError(err).Warn("failed to marshal analysis for cache", nil)
		return
	}

	ttl := time.Duration(s.config.CacheTTL) * time.Second
	if err := s.cache.Set(ctx, cacheKey(videos, topN), data, ttl); err != nil {
		log.WithError(err).Warn("failed to store analysis in cache", nil)
	}
}

// cacheKey derives a stable key from the batch's video ids and the
// requested count. The pipeline is deterministic over these inputs.
func cacheKey(videos []enrichment.RawVideo, topN int) string {
	h := sha256.New()
	for _, v := range videos {
		h.Write([]byte(v.ID))
		h.Write([]byte{0})
	}
	fmt.Fprintf(h, "topN=%d", topN)
	return "analysis:" + hex.EncodeToString(h.Sum(nil))
}
