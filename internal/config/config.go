package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultDatasetPath is the workbook the dashboard reads when DATASET_PATH is unset
	DefaultDatasetPath = "df_cleaned (1).xlsx"

	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	Server    ServerConfig
	Dataset   DatasetConfig
	WordCloud WordCloudConfig
	Security  SecurityConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatasetConfig struct {
	Path    string
	Sheet   string
	Backend string
}

type WordCloudConfig struct {
	Width     int
	Height    int
	MaxWords  int
	CacheSize int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	// TrustProxyHeaders takes the client IP from X-Forwarded-For set by a
	// proxy on a private network
	TrustProxyHeaders bool
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: failed to read .env file: %v", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Dataset: DatasetConfig{
			Path:    getEnv("DATASET_PATH", DefaultDatasetPath),
			Sheet:   getEnv("DATASET_SHEET", ""),
			Backend: strings.ToLower(getEnv("DATASET_BACKEND", BackendMemory)),
		},
		WordCloud: WordCloudConfig{
			Width:     getIntEnv("WORDCLOUD_WIDTH", 800),
			Height:    getIntEnv("WORDCLOUD_HEIGHT", 400),
			MaxWords:  getIntEnv("WORDCLOUD_MAX_WORDS", 200),
			CacheSize: getIntEnv("WORDCLOUD_CACHE_SIZE", 64),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
			TrustProxyHeaders:  getBoolEnv("TRUST_PROXY_HEADERS", false),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}

	if config.Dataset.Backend != BackendMemory && config.Dataset.Backend != BackendSQLite {
		log.Printf("WARNING: unknown DATASET_BACKEND %q, falling back to %q", config.Dataset.Backend, BackendMemory)
		config.Dataset.Backend = BackendMemory
	}

	return config
}

// Address returns the host:port pair the HTTP server listens on
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
