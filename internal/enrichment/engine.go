package enrichment

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"career-insights/internal/common/logger"
	"career-insights/internal/taxonomy"
)

// Topic cluster names derived from assigned skills.
const (
	ClusterTechnology = "Technology"
	ClusterCreative   = "Creative"
	ClusterBusiness   = "Business"
	ClusterGeneral    = "General"
)

var educationalCategories = map[string]bool{
	"Education":            true,
	"Science & Technology": true,
	"Howto & Style":        true,
}

var educationalKeywords = []string{
	"tutorial", "learn", "course", "lesson", "how to", "guide", "explained",
}

// Beginner keywords are checked before advanced ones; when both appear,
// beginner wins.
var beginnerKeywords = []string{"beginner", "introduction", "basics"}
var advancedKeywords = []string{"advanced", "expert", "deep dive"}

type Config struct {
	Workers int
}

func LoadConfig() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
	}
}

// Engine classifies raw videos and aggregates them into an EnrichmentResult.
// Per-video classification is pure; a single Engine is safe for concurrent use.
type Engine struct {
	config *Config
	logger logger.Logger
}

func NewEngine(config *Config, log logger.Logger) *Engine {
	if config == nil {
		config = LoadConfig()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Engine{
		config: config,
		logger: log.WithFields(map[string]interface{}{"component": "enrichment"}),
	}
}

// EnrichVideo classifies a single video. Pure and order-independent.
func (e *Engine) EnrichVideo(video RawVideo) EnrichedVideo {
	category := taxonomy.CategoryName(video.CategoryID)
	skillKeywords := extractSkillKeywords(video)
	topicClusters := identifyTopicClusters(skillKeywords)
	isEducational := isEducationalContent(video, category)
	learningLevel := assessLearningLevel(video)

	return EnrichedVideo{
		RawVideo:      video,
		Categories:    []string{category},
		SkillKeywords: skillKeywords,
		TopicClusters: topicClusters,
		IsEducational: isEducational,
		LearningLevel: learningLevel,
	}
}

// EnrichBatch classifies every video and aggregates the result. Videos are
// enriched concurrently but the enriched list preserves input order. An
// empty batch yields empty aggregates and a zero learning ratio, not an error.
func (e *Engine) EnrichBatch(ctx context.Context, videos []RawVideo) (*EnrichmentResult, error) {
	enriched := make([]EnrichedVideo, len(videos))

	sem := make(chan struct{}, e.config.Workers)
	var wg sync.WaitGroup

	var ctxErr error
	for i := range videos {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			enriched[idx] = e.EnrichVideo(videos[idx])
		}(i)
	}
	// Drain in-flight workers even on cancellation so nothing writes into
	// enriched after this function returns.
	wg.Wait()
	if ctxErr != nil {
		return nil, ctxErr
	}

	result := aggregate(enriched)

	e.logger.Debug("batch enriched", map[string]interface{}{
		"videos":        len(videos),
		"categories":    len(result.CategoryDistribution),
		"skills":        len(result.SkillFrequency),
		"learningRatio": result.LearningRatio,
	})

	return result, nil
}

// aggregate reduces an ordered enriched slice into batch-level counts.
// Counting is commutative, so aggregation order does not matter.
func aggregate(enriched []EnrichedVideo) *EnrichmentResult {
	categoryDistribution := make(map[string]int)
	skillFrequency := make(map[string]int)
	clusterSeen := make(map[string]bool)
	var clusters []string
	educationalCount := 0

	for _, video := range enriched {
		for _, cat := range video.Categories {
			categoryDistribution[cat]++
		}
		for _, skill := range video.SkillKeywords {
			skillFrequency[skill]++
		}
		for _, cluster := range video.TopicClusters {
			if !clusterSeen[cluster] {
				clusterSeen[cluster] = true
				clusters = append(clusters, cluster)
			}
		}
		if video.IsEducational {
			educationalCount++
		}
	}

	learningRatio := 0.0
	if len(enriched) > 0 {
		learningRatio = float64(educationalCount) / float64(len(enriched)) * 100
	}

	return &EnrichmentResult{
		EnrichedVideos:       enriched,
		CategoryDistribution: categoryDistribution,
		SkillFrequency:       skillFrequency,
		TopicClusters:        clusters,
		LearningRatio:        learningRatio,
	}
}

// extractSkillKeywords attributes skills by literal substring match over the
// lower-cased title, description, and tags.
func extractSkillKeywords(video RawVideo) []string {
	text := strings.ToLower(video.Title + " " + video.Description + " " + strings.Join(video.Tags, " "))

	var found []string
	for _, skill := range taxonomy.Skills() {
		for _, keyword := range skill.Keywords {
			if strings.Contains(text, keyword) {
				found = append(found, skill.Name)
				break
			}
		}
	}
	return found
}

// identifyTopicClusters derives clusters from assigned skills. The checks
// are independent, so a video can map to several clusters; with no skill
// match the sole cluster is General.
func identifyTopicClusters(skills []string) []string {
	has := make(map[string]bool, len(skills))
	for _, s := range skills {
		has[s] = true
	}

	var clusters []string
	if has[taxonomy.SkillProgramming] || has[taxonomy.SkillDataScience] {
		clusters = append(clusters, ClusterTechnology)
	}
	if has[taxonomy.SkillDesign] {
		clusters = append(clusters, ClusterCreative)
	}
	if has[taxonomy.SkillMarketing] || has[taxonomy.SkillBusiness] {
		clusters = append(clusters, ClusterBusiness)
	}

	if len(clusters) == 0 {
		return []string{ClusterGeneral}
	}
	return clusters
}

func isEducationalContent(video RawVideo, category string) bool {
	if educationalCategories[category] {
		return true
	}

	text := strings.ToLower(video.Title + " " + video.Description)
	for _, keyword := range educationalKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func assessLearningLevel(video RawVideo) LearningLevel {
	text := strings.ToLower(video.Title + " " + video.Description)

	for _, keyword := range beginnerKeywords {
		if strings.Contains(text, keyword) {
			return LevelBeginner
		}
	}
	for _, keyword := range advancedKeywords {
		if strings.Contains(text, keyword) {
			return LevelAdvanced
		}
	}
	return LevelIntermediate
}
