package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "SERVER_HOST", "APP_ENV", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"DATASET_PATH", "DATASET_SHEET", "DATASET_BACKEND",
		"WORDCLOUD_WIDTH", "WORDCLOUD_HEIGHT", "WORDCLOUD_MAX_WORDS", "WORDCLOUD_CACHE_SIZE",
		"RATE_LIMIT_PER_SECOND", "RATE_LIMIT_BURST", "TRUST_PROXY_HEADERS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost:8080", cfg.Server.Address())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultDatasetPath, cfg.Dataset.Path)
	assert.Equal(t, "", cfg.Dataset.Sheet)
	assert.Equal(t, BackendMemory, cfg.Dataset.Backend)
	assert.Equal(t, 800, cfg.WordCloud.Width)
	assert.Equal(t, 400, cfg.WordCloud.Height)
	assert.Equal(t, 200, cfg.WordCloud.MaxWords)
	assert.Equal(t, 64, cfg.WordCloud.CacheSize)
	assert.Equal(t, 20, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, 40, cfg.Security.RateLimitBurst)
	assert.False(t, cfg.Security.TrustProxyHeaders)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_WRITE_TIMEOUT", "45s")
	t.Setenv("DATASET_PATH", "/data/claims.xlsx")
	t.Setenv("DATASET_SHEET", "Claims")
	t.Setenv("DATASET_BACKEND", "SQLite")
	t.Setenv("WORDCLOUD_CACHE_SIZE", "0")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Address())
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "/data/claims.xlsx", cfg.Dataset.Path)
	assert.Equal(t, "Claims", cfg.Dataset.Sheet)
	assert.Equal(t, BackendSQLite, cfg.Dataset.Backend)
	assert.Equal(t, 0, cfg.WordCloud.CacheSize)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Security.TrustProxyHeaders)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORDCLOUD_WIDTH", "wide")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("DATASET_BACKEND", "postgres")

	cfg := Load()

	assert.Equal(t, 800, cfg.WordCloud.Width)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, BackendMemory, cfg.Dataset.Backend)
}
