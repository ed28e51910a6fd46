// Package config loads collection schema files for the colmap CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is one schema file: the collection to describe plus the settings
// needed to apply it.
type Config struct {
	Collection string        `yaml:"collection"`
	Params     string        `yaml:"params"` // collection-level JSON, e.g. {"segment_row_limit":50000}
	Fields     []FieldConfig `yaml:"fields"`
	Server     ServerConfig  `yaml:"server"`
	Logging    LoggingConfig `yaml:"logging"`
}

// FieldConfig describes one field. A non-nil Dim makes it a vector field.
type FieldConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Dim  *int   `yaml:"dim"`
}

// ServerConfig holds the gRPC endpoint used by -apply.
type ServerConfig struct {
	Addr       string `yaml:"addr"`
	TimeoutSec int    `yaml:"timeout_sec"`
	Shards     int32  `yaml:"shards"`
	Database   string `yaml:"database"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Env   string `yaml:"env"`   // prod, local, dev, test (default: local)
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads and validates a schema file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes schema file contents. ${VAR} and ${VAR:-default} are
// substituted from the environment before decoding.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Server.TimeoutSec <= 0 {
		c.Server.TimeoutSec = 10
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "local"
	}
}

// Validate checks what the file itself must provide. Field names, types
// and dimensions are left to the mapping and the service.
func (c *Config) Validate() error {
	if c.Collection == "" {
		return fmt.Errorf("collection is required")
	}
	for i, f := range c.Fields {
		if f.Type == "" {
			return fmt.Errorf("fields[%d].type is required", i)
		}
	}
	if c.Server.Shards < 0 {
		return fmt.Errorf("server.shards must not be negative, got %d", c.Server.Shards)
	}
	return nil
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
