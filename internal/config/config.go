package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	Ticker           string   // env: TICKER
	DisplayLabel     string   // env: DISPLAY_LABEL
	TeamMembers      string   // env: TEAM_MEMBERS
	TeamImages       []string // env: TEAM_IMAGES (comma-separated URLs)
	TimeRange        string   // env: TIME_RANGE (all|1hr|24hrs)
	ShowDeltaMarkers bool     // env: SHOW_DELTA_MARKERS

	FeedURL string // env: FEED_URL (websocket)

	ExchangeBaseURL string // env: EXCHANGE_BASE_URL
	ExchangeAPIKey  string // env: EXCHANGE_API_KEY
	RequestTimeout  time.Duration

	// Postgres store; used instead of the HTTP exchange when DBHost is set.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	TelegramBotToken string
	TelegramChatID   int64

	LogLevel string
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		Ticker:           getEnvWithDefault("TICKER", "BRDG"),
		DisplayLabel:     getEnvWithDefault("DISPLAY_LABEL", "BRDG"),
		TeamMembers:      os.Getenv("TEAM_MEMBERS"),
		TimeRange:        getEnvWithDefault("TIME_RANGE", "all"),
		ShowDeltaMarkers: getEnvBoolWithDefault("SHOW_DELTA_MARKERS", true),
		FeedURL:          os.Getenv("FEED_URL"),
		ExchangeBaseURL:  os.Getenv("EXCHANGE_BASE_URL"),
		ExchangeAPIKey:   os.Getenv("EXCHANGE_API_KEY"),
		RequestTimeout:   time.Duration(getEnvIntWithDefault("REQUEST_TIMEOUT", 30)) * time.Second,
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getEnvWithDefault("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSSLMode:        getEnvWithDefault("DB_SSLMODE", "disable"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("TEAM_IMAGES"); v != "" {
		for _, img := range strings.Split(v, ",") {
			if img = strings.TrimSpace(img); img != "" {
				cfg.TeamImages = append(cfg.TeamImages, img)
			}
		}
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.TelegramChatID = id
		}
	}

	return cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
