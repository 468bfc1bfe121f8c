package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"career-insights/internal/common/config"
	"career-insights/internal/common/database"
	"career-insights/internal/common/logger"
	"career-insights/internal/common/observability"
	"career-insights/internal/ingest"
	"career-insights/internal/pipeline"
)

func main() {
	historyPath := flag.String("history", "", "path to a watch-history JSON export")
	topN := flag.Int("top", 0, "number of recommendations (0 = configured default)")
	outPath := flag.String("out", "", "write the analysis JSON here instead of stdout")
	fullOutput := flag.Bool("full", false, "emit the full analysis instead of recommendations only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		// No logger yet; config failures go straight to stderr.
		os.Stderr.WriteString("config load failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	if *historyPath == "" {
		zapLog.Fatal("missing required -history flag")
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
				zapLog.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	ctx := context.Background()

	var cache pipeline.Cache
	if cfg.Redis.Enabled {
		redisClient, err := database.NewRedis(cfg.Redis)
		if err == nil && redisClient.Ping(ctx) == nil {
			cache = redisClient
			defer redisClient.Close()
		} else {
			zapLog.Warn("redis unavailable, running without result cache")
		}
	}

	f, err := os.Open(*historyPath)
	if err != nil {
		zapLog.Fatal("failed to open watch history", zap.Error(err))
	}
	videos, err := ingest.ParseWatchHistory(f)
	f.Close()
	if err != nil {
		zapLog.Fatal("failed to parse watch history", zap.Error(err))
	}
	videos = ingest.SampleRecent(videos, cfg.Pipeline.MaxHistory)

	service := pipeline.NewService(&cfg.Pipeline, cache, obs, log)
	analysis, err := service.Analyze(ctx, videos, *topN)
	if err != nil {
		zapLog.Fatal("analysis failed", zap.Error(err))
	}

	var payload interface{} = analysis.Recommendations
	if *fullOutput {
		payload = analysis
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		zapLog.Fatal("failed to encode output", zap.Error(err))
	}
	data = append(data, '\n')

	if *outPath != "" {
		if err := os.WriteFile(*outPath, data, 0o644); err != nil {
			zapLog.Fatal("failed to write output", zap.Error(err))
		}
		return
	}
	os.Stdout.Write(data)
}
