package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the bot
type Config struct {
	DiscordToken       string
	DatabaseDSN        string
	LogChannelName     string
	HistoryChannelName string
	ResumeWindow       time.Duration
}

const (
	defaultLogChannel     = "logs"
	defaultHistoryChannel = "historico-pontos"
	defaultResumeWindow   = 10 * time.Minute
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// .env file is optional, continue with environment variables
	_ = godotenv.Load()

	config := &Config{
		DiscordToken:       os.Getenv("DISCORD_TOKEN"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		LogChannelName:     os.Getenv("LOG_CHANNEL"),
		HistoryChannelName: os.Getenv("HISTORY_CHANNEL"),
		ResumeWindow:       defaultResumeWindow,
	}

	if config.DiscordToken == "" {
		return nil, &ConfigError{Field: "DISCORD_TOKEN", Message: "DISCORD_TOKEN is required"}
	}

	if config.DatabaseDSN == "" {
		return nil, &ConfigError{Field: "DATABASE_DSN", Message: "DATABASE_DSN is required"}
	}

	if config.LogChannelName == "" {
		config.LogChannelName = defaultLogChannel
	}

	if config.HistoryChannelName == "" {
		config.HistoryChannelName = defaultHistoryChannel
	}

	if raw := os.Getenv("RESUME_WINDOW"); raw != "" {
		window, err := time.ParseDuration(raw)
		if err != nil {
			return nil, &ConfigError{Field: "RESUME_WINDOW", Message: "RESUME_WINDOW must be a duration such as 10m"}
		}
		config.ResumeWindow = window
	}

	return config, nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
