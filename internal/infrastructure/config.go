package infrastructure

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Gemini API settings. The server-side key is only used for scheduled
	// research; interactive requests carry the caller's own key.
	GeminiAPIKey string `json:"-"` // Don't expose in JSON
	GeminiModel  string `json:"gemini_model"`

	// Wikipedia settings
	WikipediaLang string `json:"wikipedia_lang"`

	// Pipeline settings
	CheckIndustry bool `json:"check_industry"`

	// Cache settings
	CacheDurationHours int `json:"cache_duration_hours"`

	// Admin settings
	AdminAuthToken string `json:"-"` // Don't expose in JSON

	// Scheduled research settings
	WatchIndustries []string `json:"watch_industries"`
	WatchSchedule   string   `json:"watch_schedule"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		GeminiAPIKey:       getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:        getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		WikipediaLang:      getEnvOrDefault("WIKIPEDIA_LANG", "en"),
		CheckIndustry:      getEnvOrDefaultBool("CHECK_INDUSTRY", false),
		CacheDurationHours: getEnvOrDefaultInt("CACHE_DURATION_HOURS", 24),
		AdminAuthToken:     getEnvOrDefault("ADMIN_AUTH_TOKEN", ""),
		WatchIndustries:    parseStringSlice(os.Getenv("WATCH_INDUSTRIES")),
		WatchSchedule:      getEnvOrDefault("WATCH_SCHEDULE", "0 7 * * *"),
	}

	return config, config.validate()
}

// CacheDuration returns the configured cache TTL.
func (c *Config) CacheDuration() time.Duration {
	return time.Duration(c.CacheDurationHours) * time.Hour
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.CacheDurationHours <= 0 {
		return &ConfigError{Field: "CACHE_DURATION_HOURS", Message: "must be a positive number of hours"}
	}
	if len(c.WatchIndustries) > 0 && c.GeminiAPIKey == "" {
		return &ConfigError{Field: "GEMINI_API_KEY", Message: "required when WATCH_INDUSTRIES is set"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvOrDefaultBool returns environment variable value as bool or default if not set
func getEnvOrDefaultBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// parseStringSlice parses a comma-separated list, dropping empty entries.
func parseStringSlice(value string) []string {
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
