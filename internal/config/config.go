package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	APIBaseURL      string
	AssetPrefix     string
	LogLevel        string
	HTTPTimeout     time.Duration
	SearchDebounce  time.Duration
	SearchMinChars  int
	DBPath          string
	RecentLimit     int
	WorkerCount     int
	WorkerQueueSize int
	DefaultLanguage string
	CORSOrigins     []string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid. Values are read once at startup.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		APIBaseURL:      strings.TrimRight(envOr("SHION_API_BASE_URL", ""), "/"),
		AssetPrefix:     strings.TrimRight(envOr("ASSET_PREFIX", "/static"), "/"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		HTTPTimeout:     time.Duration(envIntOr("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		SearchDebounce:  time.Duration(envIntOr("SEARCH_DEBOUNCE_MS", 400)) * time.Millisecond,
		SearchMinChars:  envIntOr("SEARCH_MIN_CHARS", 2),
		DBPath:          envOr("DB_PATH", "file:shionweb.db"),
		RecentLimit:     envIntOr("RECENT_LIMIT", 8),
		WorkerCount:     envIntOr("WORKER_COUNT", 1),
		WorkerQueueSize: envIntOr("WORKER_QUEUE_SIZE", 64),
		DefaultLanguage: envOr("DEFAULT_LANGUAGE", "en"),
		CORSOrigins:     envListOr("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// Validate reports the first invalid setting, named by its environment key.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("SHION_API_BASE_URL cannot be empty")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SHION_API_BASE_URL must be an absolute URL, got %q", c.APIBaseURL)
	}
	switch strings.ToUpper(strings.TrimSpace(c.LogLevel)) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive")
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE_MS cannot be negative")
	}
	if c.SearchMinChars < 1 {
		return fmt.Errorf("SEARCH_MIN_CHARS must be at least 1")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.RecentLimit < 0 {
		return fmt.Errorf("RECENT_LIMIT cannot be negative")
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be at least 1")
	}
	if c.WorkerQueueSize < 1 {
		return fmt.Errorf("WORKER_QUEUE_SIZE must be at least 1")
	}
	if c.DefaultLanguage == "" {
		return fmt.Errorf("DEFAULT_LANGUAGE cannot be empty")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
