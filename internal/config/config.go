// Package config provides configuration for the substridx CLI. Values come
// from defaults, an optional .substridx.yaml file, and SUBSTRIDX_* env
// vars, in increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-directory config file the CLI looks for.
const ConfigFileName = ".substridx.yaml"

// Config is the complete substridx configuration.
type Config struct {
	Cache   CacheConfig   `yaml:"cache"`
	Bench   BenchConfig   `yaml:"bench"`
	Logging LoggingConfig `yaml:"logging"`
}

// CacheConfig configures the query-result cache.
type CacheConfig struct {
	// Enabled turns on FindAll memoization for CLI queries.
	Enabled bool `yaml:"enabled"`
	// Size is the number of cached FindAll results.
	Size int `yaml:"size"`
}

// BenchConfig configures the bench and verify commands.
type BenchConfig struct {
	// TextSize is the number of runes of generated text.
	TextSize int `yaml:"text_size"`
	// Patterns is the number of patterns queried per run.
	Patterns int `yaml:"patterns"`
	// PatternLength is the maximum pattern length in runes.
	PatternLength int `yaml:"pattern_length"`
	// Alphabet is the symbol pool for generated texts. A small alphabet
	// produces many repeats and stresses the builders harder.
	Alphabet string `yaml:"alphabet"`
}

// LoggingConfig configures debug logging.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// FilePath is the log file location. Empty means stderr only.
	FilePath string `yaml:"file_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled: true,
			Size:    256,
		},
		Bench: BenchConfig{
			TextSize:      10000,
			Patterns:      200,
			PatternLength: 16,
			Alphabet:      "abcd",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path, layered over defaults, then applies
// env overrides. A missing file is not an error: defaults plus env apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err != nil && os.IsNotExist(err):
		// fall through to env overrides
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover loads config from dir's .substridx.yaml if present, otherwise
// defaults plus env overrides.
func Discover(dir string) (*Config, error) {
	return Load(filepath.Join(dir, ConfigFileName))
}

// applyEnv overlays SUBSTRIDX_* environment variables.
func (c *Config) applyEnv() {
	if v, ok := envInt("SUBSTRIDX_CACHE_SIZE"); ok {
		c.Cache.Size = v
	}
	if v, ok := envInt("SUBSTRIDX_BENCH_TEXT_SIZE"); ok {
		c.Bench.TextSize = v
	}
	if v, ok := envInt("SUBSTRIDX_BENCH_PATTERNS"); ok {
		c.Bench.Patterns = v
	}
	if v := os.Getenv("SUBSTRIDX_BENCH_ALPHABET"); v != "" {
		c.Bench.Alphabet = v
	}
	if v := os.Getenv("SUBSTRIDX_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive, got %d", c.Cache.Size)
	}
	if c.Bench.TextSize < 0 {
		return fmt.Errorf("bench.text_size must be non-negative, got %d", c.Bench.TextSize)
	}
	if c.Bench.Patterns <= 0 {
		return fmt.Errorf("bench.patterns must be positive, got %d", c.Bench.Patterns)
	}
	if c.Bench.PatternLength <= 0 {
		return fmt.Errorf("bench.pattern_length must be positive, got %d", c.Bench.PatternLength)
	}
	if c.Bench.Alphabet == "" {
		return fmt.Errorf("bench.alphabet must not be empty")
	}
	return nil
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
