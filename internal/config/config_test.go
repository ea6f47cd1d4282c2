package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
base_url: "https://wellfound.com/role/r/software-engineer"
max_pages: 3
delay_seconds: 5
headless: true

profile:
  skills:
    - Python
    - FastAPI
  keywords:
    - backend
  locations:
    - Remote
  min_match_score: 60

telegram_enabled: false
batch_size: 2
database_url: "postgres://localhost/foundry"
cache_path: "/tmp/foundry-cache"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromYAML(t *testing.T) {
	cfg := Load(writeConfig(t, sampleYAML))

	assert.Equal(t, "https://wellfound.com/role/r/software-engineer", cfg.BaseURL)
	assert.Equal(t, 3, cfg.MaxPages)
	assert.Equal(t, 5, cfg.DelaySeconds)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 2, cfg.BatchSize)
	assert.Equal(t, "/tmp/foundry-cache", cfg.CachePath)

	assert.Equal(t, []string{"Python", "FastAPI"}, cfg.Profile.Skills)
	assert.Equal(t, []string{"backend"}, cfg.Profile.Keywords)
	assert.Equal(t, []string{"Remote"}, cfg.Profile.Locations)
	assert.Equal(t, 60, cfg.Profile.MinMatchScore)
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load(writeConfig(t, "telegram_enabled: false\n"))

	assert.Equal(t, "https://wellfound.com/jobs", cfg.BaseURL)
	assert.Equal(t, 1, cfg.MaxPages)
	assert.Equal(t, 3, cfg.DelaySeconds)
	assert.Equal(t, 15, cfg.TimeoutSecs)
	assert.Equal(t, 5, cfg.BatchSize)
	assert.Equal(t, ".cookies", cfg.CookiesPath)
	assert.Equal(t, ".cache", cfg.CachePath)
	assert.Len(t, cfg.UserAgents, 2)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("TELEGRAM_CHAT_ID", "123456789")
	t.Setenv("DATABASE_URL", "postgres://env-host/jobs")
	t.Setenv("GROQ_API_KEY", "gsk_test")

	cfg := Load(writeConfig(t, sampleYAML))

	assert.Equal(t, "env-token", cfg.TelegramToken)
	assert.Equal(t, int64(123456789), cfg.TelegramChatID)
	assert.Equal(t, "postgres://env-host/jobs", cfg.DatabaseURL)
	assert.Equal(t, "gsk_test", cfg.GroqAPIKey)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "https://wellfound.com/jobs", cfg.BaseURL)
	assert.False(t, cfg.TelegramEnabled)
}
