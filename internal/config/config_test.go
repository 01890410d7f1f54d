package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing app ID is rejected", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GITHUB_APP_ID", "")
		t.Setenv("GITHUB_WEBHOOK_SECRET", "shh")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "GITHUB_APP_ID")
	})

	t.Run("missing webhook secret is rejected", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GITHUB_APP_ID", "123")
		t.Setenv("GITHUB_WEBHOOK_SECRET", "")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "GITHUB_WEBHOOK_SECRET")
	})

	t.Run("defaults apply over a minimal environment", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GITHUB_APP_ID", "123")
		t.Setenv("GITHUB_WEBHOOK_SECRET", "shh")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "ollama", cfg.LLM.Provider)
		assert.Equal(t, "gemma3:latest", cfg.LLM.Model)
		assert.Equal(t, 5, cfg.MaxWorkers)
		assert.Empty(t, cfg.AgentsFile)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GITHUB_APP_ID", "123")
		t.Setenv("GITHUB_WEBHOOK_SECRET", "shh")
		t.Setenv("SERVER_PORT", "9999")
		t.Setenv("LLM_PROVIDER", "gemini")
		t.Setenv("MODEL_NAME", "gemini-2.5-pro")
		t.Setenv("MAX_WORKERS", "2")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "9999", cfg.Server.Port)
		assert.Equal(t, "gemini", cfg.LLM.Provider)
		assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
		assert.Equal(t, 2, cfg.MaxWorkers)
	})

	t.Run("gemini without an explicit model gets its own default", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GITHUB_APP_ID", "123")
		t.Setenv("GITHUB_WEBHOOK_SECRET", "shh")
		t.Setenv("LLM_PROVIDER", "gemini")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	})
}
