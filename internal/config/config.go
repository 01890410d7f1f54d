// Package config loads the application's configuration from environment
// variables and an optional .env file, applies defaults, and validates the
// fields that have no sensible default.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/review-crew/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	Server   ServerConfig
	Logging  logger.Config
	Database DBConfig
	GitHub   GitHubConfig
	LLM      LLMConfig

	// MaxWorkers bounds how many events are processed concurrently. Each
	// event is still handled strictly sequentially inside its job.
	MaxWorkers int

	// AgentsFile is an optional YAML file of agents and repository bindings
	// upserted at startup. Empty disables seeding.
	AgentsFile string

	// PriceTableFile is an optional YAML file overriding per-model token
	// prices. Empty keeps the built-in table.
	PriceTableFile string
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port string
}

// DBConfig holds the Postgres connection settings.
type DBConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// GitHubConfig holds the GitHub App credentials.
type GitHubConfig struct {
	AppID          int64
	WebhookSecret  string
	PrivateKeyPath string
}

// LLMConfig selects the text-generation provider and model.
type LLMConfig struct {
	Provider     string
	Model        string
	OllamaHost   string
	GeminiAPIKey string
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets defaults, and validates required fields.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "review_crew")
	viper.SetDefault("DB_NAME", "review_crew")
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", "5m")
	viper.SetDefault("GITHUB_PRIVATE_KEY_PATH", "keys/review-crew-app.private-key.pem")
	viper.SetDefault("LLM_PROVIDER", "ollama")
	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("MAX_WORKERS", 5)
	viper.SetDefault("AGENTS_FILE", "")
	viper.SetDefault("PRICE_TABLE_FILE", "")

	viper.AutomaticEnv()
	// Missing .env is fine, the environment alone may carry everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Debug("no .env file loaded", "error", err)
		}
	}

	if viper.GetInt64("GITHUB_APP_ID") == 0 {
		return nil, fmt.Errorf("GITHUB_APP_ID must be set")
	}
	if viper.GetString("GITHUB_WEBHOOK_SECRET") == "" {
		return nil, fmt.Errorf("GITHUB_WEBHOOK_SECRET must be set")
	}

	// MODEL_NAME has no viper default so that an unset value can take the
	// provider-specific fallback.
	model := viper.GetString("MODEL_NAME")
	if model == "" {
		if viper.GetString("LLM_PROVIDER") == "gemini" {
			model = "gemini-2.5-flash"
		} else {
			model = "gemma3:latest"
		}
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Logging: logger.Config{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
		Database: DBConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			Username:        viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Database:        viper.GetString("DB_NAME"),
			ConnMaxLifetime: viper.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: viper.GetDuration("DB_CONN_MAX_IDLE_TIME"),
		},
		GitHub: GitHubConfig{
			AppID:          viper.GetInt64("GITHUB_APP_ID"),
			WebhookSecret:  viper.GetString("GITHUB_WEBHOOK_SECRET"),
			PrivateKeyPath: viper.GetString("GITHUB_PRIVATE_KEY_PATH"),
		},
		LLM: LLMConfig{
			Provider:     viper.GetString("LLM_PROVIDER"),
			Model:        model,
			OllamaHost:   viper.GetString("OLLAMA_HOST"),
			GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
		},
		MaxWorkers:     viper.GetInt("MAX_WORKERS"),
		AgentsFile:     viper.GetString("AGENTS_FILE"),
		PriceTableFile: viper.GetString("PRICE_TABLE_FILE"),
	}, nil
}
