// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Match     MatchConfig     `toml:"match"`
	Embedding EmbeddingConfig `toml:"embedding"`
	Quality   QualityConfig   `toml:"quality"`
}

type ServerConfig struct {
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// MatchConfig holds the similarity cutoffs of the matching pipeline.
// Thresholds are raw similarities in [0,1].
type MatchConfig struct {
	AIEnabled            bool    `toml:"ai_enabled"`
	AIThreshold          float64 `toml:"ai_threshold"`
	GroupingThreshold    float64 `toml:"grouping_threshold"`
	LevenshteinThreshold float64 `toml:"levenshtein_threshold"`
	MinGroupMembers      int     `toml:"min_group_members"`
}

type EmbeddingConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Model   string `toml:"model"`
}

type QualityConfig struct {
	Default  string                    `toml:"default"`
	Profiles map[string]QualityProfile `toml:"profiles"`
}

// QualityProfile is the wire form of a profile: an ordered accept
// list. Zero min_seeders/max_size_gb mean the item is unconstrained.
type QualityProfile struct {
	Items []QualityItem `toml:"items"`
}

type QualityItem struct {
	Quality    string  `toml:"quality"`
	Source     string  `toml:"source"`
	MinSeeders int     `toml:"min_seeders"`
	MaxSizeGB  float64 `toml:"max_size_gb"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/scenarr.db"
	}
	if c.Match.AIThreshold == 0 {
		c.Match.AIThreshold = 0.7
	}
	if c.Match.GroupingThreshold == 0 {
		c.Match.GroupingThreshold = 0.8
	}
	if c.Match.LevenshteinThreshold == 0 {
		c.Match.LevenshteinThreshold = 0.8
	}
	if c.Match.MinGroupMembers == 0 {
		c.Match.MinGroupMembers = 2
	}
	if c.Embedding.URL == "" {
		c.Embedding.URL = "http://localhost:11434"
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = "nomic-embed-text"
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable
// values, leaving unresolved references unchanged.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match
	})
}
