package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pressflow.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s

database:
  dsn: "file:test.db?mode=rwc"

automation:
  poll_interval: 10s
  max_articles: 5
  bulk_delay: 2s
  default_timezone: "America/New_York"

llm:
  endpoint: "https://api.openai.com/v1"
  api_key: "sk-test"
  model: "gpt-4o"
  temperature: 0.5
  cost_per_1k_tokens: 0.01

images:
  pexels:
    enabled: true
    api_key: "px-key"
  per_phrase: 7

wordpress:
  timeout: 20s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:test.db?mode=rwc", cfg.Database.DSN)
	assert.Equal(t, 10*time.Second, cfg.Automation.PollInterval)
	assert.Equal(t, 5, cfg.Automation.MaxArticles)
	assert.Equal(t, 2*time.Second, cfg.Automation.BulkDelay)
	assert.Equal(t, "America/New_York", cfg.Automation.DefaultTimezone)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.Endpoint)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.0001)
	assert.InDelta(t, 0.01, cfg.LLM.CostPer1K, 0.0001)
	assert.True(t, cfg.Images.Pexels.Enabled)
	assert.Equal(t, "px-key", cfg.Images.Pexels.APIKey)
	assert.Equal(t, 7, cfg.Images.PerPhrase)
	assert.Equal(t, 20*time.Second, cfg.WordPress.Timeout)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
llm:
  endpoint: "https://api.openai.com/v1"
  model: "gpt-4o"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.Automation.PollInterval)
	assert.Equal(t, 20, cfg.Automation.MaxArticles)
	assert.Equal(t, time.Second, cfg.Automation.BulkDelay)
	assert.Equal(t, 64, cfg.Automation.BulkQueueSize)
	assert.Equal(t, "UTC", cfg.Automation.DefaultTimezone)
	assert.Equal(t, "Pressflow/1.0", cfg.Automation.UserAgent)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 4000, cfg.LLM.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 5, cfg.Images.PerPhrase)
	assert.Equal(t, 3, cfg.Images.MaxPhrases)
	assert.Equal(t, 4, cfg.Images.MaxInline)
	assert.Equal(t, 3*time.Minute, cfg.WordPress.UploadTimeout)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_LLM_KEY", "sk-from-env")

	path := writeConfig(t, `
llm:
  endpoint: "https://api.openai.com/v1"
  model: "gpt-4o"
  api_key: "${TEST_LLM_KEY}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.LLM.APIKey)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing llm endpoint",
			yaml:    "llm:\n  model: gpt-4o\n",
			wantErr: "llm.endpoint is required",
		},
		{
			name:    "missing llm model",
			yaml:    "llm:\n  endpoint: https://api.openai.com/v1\n",
			wantErr: "llm.model is required",
		},
		{
			name:    "temperature out of range",
			yaml:    "llm:\n  endpoint: https://api.openai.com/v1\n  model: gpt-4o\n  temperature: 3.5\n",
			wantErr: "llm.temperature must be between 0 and 2",
		},
		{
			name:    "pexels enabled without key",
			yaml:    "llm:\n  endpoint: https://api.openai.com/v1\n  model: gpt-4o\nimages:\n  pexels:\n    enabled: true\n",
			wantErr: "images.pexels.api_key is required",
		},
		{
			name:    "unsplash enabled without key",
			yaml:    "llm:\n  endpoint: https://api.openai.com/v1\n  model: gpt-4o\nimages:\n  unsplash:\n    enabled: true\n",
			wantErr: "images.unsplash.api_key is required",
		},
		{
			name:    "bad timezone",
			yaml:    "llm:\n  endpoint: https://api.openai.com/v1\n  model: gpt-4o\nautomation:\n  default_timezone: Mars/Olympus\n",
			wantErr: "automation.default_timezone",
		},
		{
			name:    "server timeout too small",
			yaml:    "llm:\n  endpoint: https://api.openai.com/v1\n  model: gpt-4o\nserver:\n  timeout: 100ms\n",
			wantErr: "server timeout must be at least 1 second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/pressflow.yml")
		assert.ErrorContains(t, err, "read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "llm: [not a map"))
		assert.ErrorContains(t, err, "parse config")
	})
}

func TestGetServerConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, "llm:\n  endpoint: https://api.openai.com/v1\n  model: gpt-4o\n"))
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":8080", listen)
	assert.Equal(t, 30*time.Second, timeout)
}
