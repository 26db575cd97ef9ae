package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server" jsonschema:"description=HTTP server configuration"`
	Database   DatabaseConfig   `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Automation AutomationConfig `yaml:"automation" json:"automation" jsonschema:"description=Scheduler and queue configuration"`
	LLM        LLMConfig        `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for article generation"`
	Images     ImagesConfig     `yaml:"images" json:"images" jsonschema:"description=Image search configuration"`
	WordPress  WordPressConfig  `yaml:"wordpress" json:"wordpress" jsonschema:"description=WordPress client configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds storage settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:pressflow.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// AutomationConfig holds scheduler, queue and bulk engine settings
type AutomationConfig struct {
	PollInterval    time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=5s,description=Job queue poll interval"`
	MaxArticles     int           `yaml:"max_articles" json:"max_articles" jsonschema:"default=20,description=Default per-firing article cap"`
	FeedTimeout     time.Duration `yaml:"feed_timeout" json:"feed_timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
	ExtractTimeout  time.Duration `yaml:"extract_timeout" json:"extract_timeout" jsonschema:"default=30s,description=Source article extraction timeout"`
	BulkDelay       time.Duration `yaml:"bulk_delay" json:"bulk_delay" jsonschema:"default=1s,description=Delay between bulk operation items"`
	BulkQueueSize   int           `yaml:"bulk_queue_size" json:"bulk_queue_size" jsonschema:"default=64,description=Pending bulk operations buffer size"`
	DefaultTimezone string        `yaml:"default_timezone" json:"default_timezone" jsonschema:"default=UTC,description=Fallback schedule timezone"`
	UserAgent       string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Pressflow/1.0,description=User agent for feed and extraction requests"`
}

// LLMConfig holds text-generation collaborator settings
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,minimum=0,maximum=2,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=4000,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	UseJSONMode bool          `yaml:"use_json_mode" json:"use_json_mode" jsonschema:"default=false,description=Use JSON response format (not all models support this)"`
	CostPer1K   float64       `yaml:"cost_per_1k_tokens" json:"cost_per_1k_tokens" jsonschema:"default=0,description=Cost per 1000 tokens for usage accounting"`
}

// ImageProviderConfig holds a single image-search provider
type ImageProviderConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable this provider"`
	APIKey  string `yaml:"api_key" json:"api_key" jsonschema:"description=Provider API key"`
}

// ImagesConfig holds image-search settings
type ImagesConfig struct {
	Pexels      ImageProviderConfig `yaml:"pexels" json:"pexels" jsonschema:"description=Pexels provider settings"`
	Unsplash    ImageProviderConfig `yaml:"unsplash" json:"unsplash" jsonschema:"description=Unsplash provider settings"`
	Timeout     time.Duration       `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Image search request timeout"`
	PerPhrase   int                 `yaml:"per_phrase" json:"per_phrase" jsonschema:"default=5,description=Results requested per search phrase"`
	MaxPhrases  int                 `yaml:"max_phrases" json:"max_phrases" jsonschema:"default=3,description=Phrases actually searched"`
	MaxInline   int                 `yaml:"max_inline" json:"max_inline" jsonschema:"default=4,description=Inline images placed in body"`
	Orientation string              `yaml:"orientation" json:"orientation" jsonschema:"description=Preferred orientation (landscape or portrait)"`
}

// WordPressConfig holds remote publish settings shared by all sites
type WordPressConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Regular REST call timeout"`
	UploadTimeout time.Duration `yaml:"upload_timeout" json:"upload_timeout" jsonschema:"default=3m,description=Media upload timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against the embedded schema, supplementary to validate
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:pressflow.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Automation.PollInterval == 0 {
		cfg.Automation.PollInterval = 5 * time.Second
	}
	if cfg.Automation.MaxArticles == 0 {
		cfg.Automation.MaxArticles = 20
	}
	if cfg.Automation.FeedTimeout == 0 {
		cfg.Automation.FeedTimeout = 30 * time.Second
	}
	if cfg.Automation.ExtractTimeout == 0 {
		cfg.Automation.ExtractTimeout = 30 * time.Second
	}
	if cfg.Automation.BulkDelay == 0 {
		cfg.Automation.BulkDelay = time.Second
	}
	if cfg.Automation.BulkQueueSize == 0 {
		cfg.Automation.BulkQueueSize = 64
	}
	if cfg.Automation.DefaultTimezone == "" {
		cfg.Automation.DefaultTimezone = "UTC"
	}
	if cfg.Automation.UserAgent == "" {
		cfg.Automation.UserAgent = "Pressflow/1.0"
	}

	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 4000
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}

	if cfg.Images.Timeout == 0 {
		cfg.Images.Timeout = 30 * time.Second
	}
	if cfg.Images.PerPhrase == 0 {
		cfg.Images.PerPhrase = 5
	}
	if cfg.Images.MaxPhrases == 0 {
		cfg.Images.MaxPhrases = 3
	}
	if cfg.Images.MaxInline == 0 {
		cfg.Images.MaxInline = 4
	}

	if cfg.WordPress.Timeout == 0 {
		cfg.WordPress.Timeout = 30 * time.Second
	}
	if cfg.WordPress.UploadTimeout == 0 {
		cfg.WordPress.UploadTimeout = 3 * time.Minute
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Images.Pexels.Enabled && cfg.Images.Pexels.APIKey == "" {
		return fmt.Errorf("images.pexels.api_key is required when pexels is enabled")
	}
	if cfg.Images.Unsplash.Enabled && cfg.Images.Unsplash.APIKey == "" {
		return fmt.Errorf("images.unsplash.api_key is required when unsplash is enabled")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if _, err := time.LoadLocation(cfg.Automation.DefaultTimezone); err != nil {
		return fmt.Errorf("automation.default_timezone: %w", err)
	}

	return nil
}

// GetServerConfig returns the server listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
