package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// PipelineConfig holds the tunables of the analysis pipeline.
type PipelineConfig struct {
	TopN          int `mapstructure:"top_n"`
	EnrichWorkers int `mapstructure:"enrich_workers"`
	MaxHistory    int `mapstructure:"max_history"`       // most recent entries kept per batch
	CacheTTL      int `mapstructure:"cache_ttl_seconds"` // result cache TTL
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Pipeline.TopN <= 0 {
		return fmt.Errorf("pipeline.top_n must be positive, got %d", cfg.Pipeline.TopN)
	}
	if cfg.Pipeline.EnrichWorkers <= 0 {
		return fmt.Errorf("pipeline.enrich_workers must be positive, got %d", cfg.Pipeline.EnrichWorkers)
	}
	if cfg.Redis.Enabled && cfg.Redis.Address == "" {
		return fmt.Errorf("redis.address is required when redis is enabled")
	}
	return nil
}
