package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// Generation backend
	GeminiAPIKey    string
	GeminiModel     string // reply, scoring, discovery
	GeminiFastModel string // post generation

	// Search/scrape backend
	ApifyToken string
	ApifyActor string

	// Storage configuration
	StorageBackend   string // "local" or "azure"
	DataDir          string
	StorageAccount   string
	StorageContainer string

	// Scheduled scan configuration
	ScanSchedule string   // "", "daily" or "weekly"
	ScanKeywords []string

	// Digest notification configuration
	TeamsWebhookURL   string
	NotificationEmail string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getBoolEnv("DEBUG", false),

		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiFastModel: getEnv("GEMINI_FAST_MODEL", "gemini-2.0-flash"),

		ApifyToken: getEnv("APIFY_API_KEY", ""),
		ApifyActor: getEnv("APIFY_ACTOR", "fatihtahta~reddit-scraper-search-fast"),

		StorageBackend:   getEnv("STORAGE_BACKEND", "local"),
		DataDir:          getEnv("DATA_DIR", "data"),
		StorageAccount:   getEnv("AZURE_STORAGE_ACCOUNT", ""),
		StorageContainer: getEnv("AZURE_STORAGE_CONTAINER", "reddit-assistant"),

		ScanSchedule: getEnv("SCAN_SCHEDULE", ""),
		ScanKeywords: getSliceEnv("SCAN_KEYWORDS", nil),

		TeamsWebhookURL:   getEnv("TEAMS_WEBHOOK_URL", ""),
		NotificationEmail: getEnv("NOTIFICATION_EMAIL", ""),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getIntEnv("SMTP_PORT", 587),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.StorageBackend != "local" && c.StorageBackend != "azure" {
		return fmt.Errorf("STORAGE_BACKEND must be 'local' or 'azure'")
	}

	if c.StorageBackend == "azure" && c.StorageAccount == "" {
		return fmt.Errorf("AZURE_STORAGE_ACCOUNT is required when STORAGE_BACKEND is 'azure'")
	}

	if c.ScanSchedule != "" {
		if c.ScanSchedule != "daily" && c.ScanSchedule != "weekly" {
			return fmt.Errorf("SCAN_SCHEDULE must be 'daily' or 'weekly'")
		}
		if len(c.ScanKeywords) == 0 {
			return fmt.Errorf("SCAN_KEYWORDS is required when SCAN_SCHEDULE is set")
		}
	}

	if c.NotificationEmail != "" {
		if c.SMTPHost == "" || c.SMTPUsername == "" || c.SMTPPassword == "" {
			return fmt.Errorf("SMTP configuration is required when NOTIFICATION_EMAIL is set")
		}
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
