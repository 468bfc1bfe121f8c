// Package ingest parses watch-history exports into RawVideo batches. It is
// the hard-error boundary of the pipeline: a malformed export fails here,
// while data-quality issues further down degrade gracefully.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"career-insights/internal/common/errors"
	"career-insights/internal/enrichment"

	"github.com/xeipuuv/gojsonschema"
)

const watchHistorySchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"title": {"type": "string"},
			"channelTitle": {"type": "string"},
			"description": {"type": "string"},
			"tags": {"type": "array", "items": {"type": "string"}},
			"categoryId": {"type": "string"},
			"publishedAt": {"type": "string"},
			"watchedAt": {"type": "string"}
		},
		"required": ["id", "title"]
	}
}`

// ParseWatchHistory reads a JSON export and returns the contained videos in
// export order. The document is schema-validated before decoding; any
// violation surfaces as INVALID_WATCH_HISTORY.
func ParseWatchHistory(r io.Reader) ([]enrichment.RawVideo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewInvalidWatchHistoryError(fmt.Sprintf("read export: %v", err))
	}

	schemaLoader := gojsonschema.NewStringLoader(watchHistorySchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, errors.NewInvalidWatchHistoryError(fmt.Sprintf("validation error: %v", err))
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, errors.NewInvalidWatchHistoryError(fmt.Sprintf("export validation failed: %v", errs))
	}

	var videos []enrichment.RawVideo
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, errors.NewInvalidWatchHistoryError(fmt.Sprintf("decode export: %v", err))
	}

	return videos, nil
}

// SampleRecent keeps the n most recently watched entries. Entries with
// unparseable timestamps sort oldest; ties keep export order. The returned
// slice is always a copy; when sampling occurs it is ordered newest first,
// otherwise export order is preserved.
func SampleRecent(videos []enrichment.RawVideo, n int) []enrichment.RawVideo {
	if n <= 0 || len(videos) <= n {
		out := make([]enrichment.RawVideo, len(videos))
		copy(out, videos)
		return out
	}

	sorted := make([]enrichment.RawVideo, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return watchedTime(sorted[i]).After(watchedTime(sorted[j]))
	})

	return sorted[:n]
}

func watchedTime(v enrichment.RawVideo) time.Time {
	t, err := time.Parse(time.RFC3339, v.WatchedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
