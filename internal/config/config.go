// Package config loads CLI configuration for pathwell from an optional
// .pathwell.yaml file, merged over defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked for in the working directory
// when --config is not given.
const DefaultFileName = ".pathwell.yaml"

// Config represents the complete pathwell configuration.
type Config struct {
	// IgnoreFile is the ignore file name looked for in each directory.
	IgnoreFile string `yaml:"ignore_file"`

	// Lazy defers reading ignore files until a query needs them.
	Lazy bool `yaml:"lazy"`

	// CacheSize bounds the rule-set cache in lazy mode.
	CacheSize int `yaml:"cache_size"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		IgnoreFile: ".gitignore",
		Lazy:       false,
		CacheSize:  1000,
		LogLevel:   "warn",
	}
}

// Load reads the config file at path, merged over defaults. An empty path
// means DefaultFileName in the working directory; if that file does not
// exist, defaults are returned. An explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.IgnoreFile == "" {
		return fmt.Errorf("ignore_file must not be empty")
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive, got %d", c.CacheSize)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}
