// internal/config/validate.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/vmunix/moviecat/pkg/title"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validFormats = map[string]bool{
	FormatAuto: true, FormatTable: true, FormatPlain: true, "": true,
}

// ValidLogLevel reports whether s is debug, info, warn or error, ignoring
// case. Empty is valid and means the default.
func ValidLogLevel(s string) bool {
	return validLogLevels[strings.ToLower(s)]
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !ValidLogLevel(c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if !validFormats[c.Output.Format] {
		errs = append(errs, fmt.Sprintf("output.format: must be one of auto, table, plain; got %q", c.Output.Format))
	}

	if conf, err := title.ParseConfidence(c.Match.MinConfidence); err != nil {
		errs = append(errs, fmt.Sprintf("match.min_confidence: must be one of low, medium, high; got %q", c.Match.MinConfidence))
	} else if conf == title.ConfidenceNone {
		errs = append(errs, "match.min_confidence: none would accept any title")
	}

	seen := make(map[string]bool, len(c.Catalog.Files))
	for i, f := range c.Catalog.Files {
		if f == "" {
			errs = append(errs, fmt.Sprintf("catalog.files[%d]: empty path", i))
			continue
		}
		if seen[f] {
			errs = append(errs, fmt.Sprintf("catalog.files[%d]: %q listed twice", i, f))
		}
		seen[f] = true
	}

	return errs
}

// CheckFiles reports catalog files that do not exist. These are warnings:
// paths are resolved against the config location, see Files.
func CheckFiles(paths []string) []string {
	var warnings []string
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("catalog.files: warning: %q does not exist", p))
		}
	}
	return warnings
}
