package enrichment

// LearningLevel is the three-way difficulty classification of a video.
type LearningLevel string

const (
	LevelBeginner     LearningLevel = "beginner"
	LevelIntermediate LearningLevel = "intermediate"
	LevelAdvanced     LearningLevel = "advanced"
)

// RawVideo is a single watched-video record as ingested, before
// classification. Timestamps are ISO 8601 strings as exported upstream.
type RawVideo struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ChannelTitle string   `json:"channelTitle"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags,omitempty"`
	CategoryID   string   `json:"categoryId,omitempty"`
	PublishedAt  string   `json:"publishedAt"`
	WatchedAt    string   `json:"watchedAt"`
}

// EnrichedVideo is a RawVideo plus its classification. Created once per
// video and never mutated afterwards.
type EnrichedVideo struct {
	RawVideo

	// Categories currently always holds exactly one entry; it stays a
	// slice for wire-format stability.
	Categories    []string      `json:"categories"`
	SkillKeywords []string      `json:"skillKeywords"`
	TopicClusters []string      `json:"topicClusters"`
	IsEducational bool          `json:"isEducational"`
	LearningLevel LearningLevel `json:"learningLevel"`
}

// EnrichmentResult aggregates an enriched batch. Distribution and frequency
// maps hold counts, not percentages; normalization happens downstream in
// feature engineering.
type EnrichmentResult struct {
	EnrichedVideos       []EnrichedVideo `json:"enrichedVideos"`
	CategoryDistribution map[string]int  `json:"categoryDistribution"`
	SkillFrequency       map[string]int  `json:"skillFrequency"`
	TopicClusters        []string        `json:"topicClusters"`
	LearningRatio        float64         `json:"learningRatio"`
}
