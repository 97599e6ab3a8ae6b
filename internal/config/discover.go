// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath names the environment variable that overrides discovery.
const EnvConfigPath = "MOVIECAT_CONFIG"

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./moviecat.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "moviecat", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. MOVIECAT_CONFIG environment variable
//  2. ./moviecat.toml (current directory)
//  3. $XDG_CONFIG_HOME/moviecat/config.toml
//  4. /etc/moviecat/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./moviecat.toml",
		DefaultPath(),
		"/etc/moviecat/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}
