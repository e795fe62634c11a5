package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "conf.yaml"
	defaultMaxCount   = 25
)

// Config holds the application configuration.
// Values come from an optional YAML file and are overridden by environment variables.
type Config struct {
	// Environment
	Environment string `yaml:"environment"`
	Port        string `yaml:"port"`

	// Grammar files by name. An empty path means the embedded default.
	Grammars map[string]string `yaml:"grammars"`

	// Seed for the shared random source; 0 picks a random seed at startup
	Seed uint64 `yaml:"seed"`

	// Upper bound for ?count= on the prompt endpoint
	MaxCount int `yaml:"max_count"`

	// Global defaults for template fields the caller leaves unset
	Defaults map[string]any `yaml:"defaults"`

	// Observability
	SentryDSN string `yaml:"sentry_dsn"`

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from an upstream gateway
	AuthMode string `yaml:"auth_mode"`
}

// Load reads CONFIG_FILE (default conf.yaml, skipped when absent) and applies
// environment overrides on top.
func Load() (*Config, error) {
	cfg := &Config{
		Environment: "development",
		Port:        "8080",
		Grammars: map[string]string{
			"prompt": "",
			"karma":  "",
			"maker":  "",
		},
		MaxCount: defaultMaxCount,
		Defaults: map[string]any{},
		AuthMode: "none", // Default to no auth for self-hosted
	}

	path := getEnv("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.SentryDSN = getEnv("SENTRY_DSN", cfg.SentryDSN)
	cfg.AuthMode = getEnv("AUTH_MODE", cfg.AuthMode)
	cfg.Grammars["prompt"] = getEnv("PROMPT_GRAMMAR", cfg.Grammars["prompt"])
	cfg.Grammars["karma"] = getEnv("KARMA_GRAMMAR", cfg.Grammars["karma"])
	cfg.Grammars["maker"] = getEnv("MAKER_GRAMMAR", cfg.Grammars["maker"])

	if v := os.Getenv("GRAMMAR_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid GRAMMAR_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	if cfg.MaxCount <= 0 {
		cfg.MaxCount = defaultMaxCount
	}
	if cfg.Defaults == nil {
		cfg.Defaults = map[string]any{}
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Decode into a copy so that a file listing only some grammars keeps the defaults.
	grammars := c.Grammars
	c.Grammars = nil
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	for name, p := range c.Grammars {
		grammars[name] = p
	}
	c.Grammars = grammars

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// IsGatewayMode returns true if running behind an auth gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// IsProduction reports whether production-only integrations should run
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
