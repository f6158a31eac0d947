package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dealfinder/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("dealfinder", cfg.App.Name)
	rq.Equal(slog.LevelInfo, cfg.App.LogLevel)
	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.True(cfg.HTTP.MaskSensitiveData)
	rq.Equal(":8081", cfg.Probe.ListenAddress)
	rq.Equal(":9090", cfg.Metrics.ListenAddress)
	rq.Zero(cfg.Source.Seed)
	rq.Zero(cfg.Source.CacheTTL)
	rq.Equal(5, cfg.Scoring.Limit)
	rq.Equal("https://www.facebook.com/marketplace/item/", cfg.Scoring.ItemBaseURL)
}

func TestLoadFromEnv(t *testing.T) {
	rq := require.New(t)

	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HTTP_LISTEN_ADDRESS", ":18080")
	t.Setenv("SOURCE_SEED", "42")
	t.Setenv("SOURCE_CACHE_TTL", "30s")
	t.Setenv("SCORING_LIMIT", "3")
	t.Setenv("SCORING_ITEM_BASE_URL", "https://market.example/item/")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(slog.LevelDebug, cfg.App.LogLevel)
	rq.Equal(":18080", cfg.HTTP.ListenAddress)
	rq.Equal(uint64(42), cfg.Source.Seed)
	rq.Equal(30*time.Second, cfg.Source.CacheTTL)
	rq.Equal(3, cfg.Scoring.Limit)
	rq.Equal("https://market.example/item/", cfg.Scoring.ItemBaseURL)
}

func TestLoadInvalid(t *testing.T) {
	rq := require.New(t)

	t.Setenv("SOURCE_CACHE_TTL", "soon")

	_, err := config.Load()
	rq.ErrorContains(err, "env.Parse")
}
