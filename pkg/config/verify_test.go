package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifiableConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:  ":8080",
			Timeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			DSN: "file:test.db",
		},
		Automation: AutomationConfig{
			PollInterval:  5 * time.Second,
			MaxArticles:   20,
			BulkQueueSize: 64,
		},
		LLM: LLMConfig{
			Endpoint: "http://localhost:8080",
			APIKey:   "test-key",
			Model:    "test-model",
		},
		Images: ImagesConfig{
			Timeout:   30 * time.Second,
			PerPhrase: 5,
		},
	}
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(_ *Config) {},
		},
		{
			name:    "missing server listen",
			mutate:  func(cfg *Config) { cfg.Server.Listen = "" },
			wantErr: "server.listen is required",
		},
		{
			name:    "missing server timeout",
			mutate:  func(cfg *Config) { cfg.Server.Timeout = 0 },
			wantErr: "server.timeout is required",
		},
		{
			name:    "missing poll interval",
			mutate:  func(cfg *Config) { cfg.Automation.PollInterval = 0 },
			wantErr: "automation.poll_interval is required",
		},
		{
			name:    "non-positive max articles",
			mutate:  func(cfg *Config) { cfg.Automation.MaxArticles = -1 },
			wantErr: "automation.max_articles must be positive",
		},
		{
			name:    "non-positive bulk queue size",
			mutate:  func(cfg *Config) { cfg.Automation.BulkQueueSize = 0 },
			wantErr: "automation.bulk_queue_size must be positive",
		},
		{
			name: "provider enabled without images timeout",
			mutate: func(cfg *Config) {
				cfg.Images.Pexels.Enabled = true
				cfg.Images.Timeout = 0
			},
			wantErr: "images.timeout is required when a provider is enabled",
		},
		{
			name: "provider enabled without per phrase",
			mutate: func(cfg *Config) {
				cfg.Images.Unsplash.Enabled = true
				cfg.Images.PerPhrase = 0
			},
			wantErr: "images.per_phrase must be positive when a provider is enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := verifiableConfig()
			tt.mutate(cfg)

			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVerifyEmbeddedSchemaParses(t *testing.T) {
	// the embedded schema must stay valid JSON, whatever the generator emits
	assert.NotEmpty(t, embeddedSchema)
	require.NoError(t, VerifyAgainstEmbeddedSchema(verifiableConfig()))
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// verify schema can be marshaled to JSON
	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// verify it contains expected fields
	schemaStr := string(data)
	assert.Contains(t, schemaStr, "Config")
	for _, section := range []string{"server", "database", "automation", "llm", "images", "wordpress"} {
		assert.Contains(t, schemaStr, section)
	}
}
