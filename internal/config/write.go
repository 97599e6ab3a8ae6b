// internal/config/write.go
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

// WriteDefault writes the example config to the specified path.
// Creates parent directories if needed.
func WriteDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

// resolvedHeader marks files written by Write, which carry no comments.
const resolvedHeader = "# moviecat config, resolved from flags and environment.\n\n"

// Write encodes the config as TOML and writes it to path, creating parent
// directories. Environment references have already been expanded, so the
// file records the values actually in effect.
func (c *Config) Write(path string) error {
	var buf bytes.Buffer
	buf.WriteString(resolvedHeader)
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
