// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Output formats.
const (
	FormatAuto  = "auto"
	FormatTable = "table"
	FormatPlain = "plain"
)

// Config is the root configuration structure.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Catalog CatalogConfig `toml:"catalog"`
	Output  OutputConfig  `toml:"output"`
	Match   MatchConfig   `toml:"match"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type CatalogConfig struct {
	// Files are TOML catalog files loaded in order to seed the collection.
	Files []string `toml:"files"`
}

type OutputConfig struct {
	Format string `toml:"format"` // auto, table or plain
}

type MatchConfig struct {
	MinConfidence string `toml:"min_confidence"` // low, medium or high
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.Log.Level = strings.ToLower(c.Log.Level)
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatAuto
	}
	if c.Match.MinConfidence == "" {
		c.Match.MinConfidence = "low"
	}
}

// Load reads, parses and validates the configuration file.
// Unresolved environment variables and validation failures are returned
// together as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, skipping
// validation and ignoring unresolved environment variables.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, missing, nil
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment references. Unset variables (and, for
// the :- and :? forms, empty ones) are left in place and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, op, arg := groups[1], groups[2], groups[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}

// Files resolves catalog file paths relative to the directory of the config
// file they were read from.
func (c *Config) Files(configPath string) []string {
	if configPath == "" {
		return c.Catalog.Files
	}
	dir := filepath.Dir(configPath)
	out := make([]string, 0, len(c.Catalog.Files))
	for _, f := range c.Catalog.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(dir, f)
		}
		out = append(out, f)
	}
	return out
}
