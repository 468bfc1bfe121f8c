package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_runs_total",
			Help: "Total number of analysis pipeline runs",
		},
		[]string{"status"},
	)

	VideosEnriched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_videos_enriched_total",
			Help: "Total number of videos classified by the enrichment engine",
		},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "pipeline_stage_duration_seconds",
			Help: "Duration of each pipeline stage in seconds",
		},
		[]string{"stage"},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_cache_requests_total",
			Help: "Result cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)
