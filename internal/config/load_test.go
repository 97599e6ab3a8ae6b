// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	cfgPath := writeConfig(t, `
[log]
level = "debug"

[catalog]
files = ["classics.toml", "/abs/modern.toml"]

[output]
format = "plain"

[match]
min_confidence = "medium"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Log.Level)
	}
	if cfg.Output.Format != FormatPlain {
		t.Errorf("expected format plain, got %q", cfg.Output.Format)
	}
	if cfg.Match.MinConfidence != "medium" {
		t.Errorf("expected min_confidence medium, got %q", cfg.Match.MinConfidence)
	}
	if len(cfg.Catalog.Files) != 2 {
		t.Errorf("expected 2 catalog files, got %v", cfg.Catalog.Files)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	cfgPath := writeConfig(t, `
[catalog]
files = ["${MOVIECAT_TEST_MISSING_DIR}/classics.toml"]
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if !strings.Contains(err.Error(), "MOVIECAT_TEST_MISSING_DIR") {
		t.Errorf("expected MOVIECAT_TEST_MISSING_DIR in error, got %v", err)
	}
}

func TestLoad_EnvVarSubstituted(t *testing.T) {
	t.Setenv("MOVIECAT_TEST_LEVEL", "error")
	cfgPath := writeConfig(t, `
[log]
level = "${MOVIECAT_TEST_LEVEL}"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("expected level error, got %q", cfg.Log.Level)
	}
}

func TestLoad_EnvVarDefault(t *testing.T) {
	cfgPath := writeConfig(t, `
[output]
format = "${MOVIECAT_TEST_UNSET_FORMAT:-table}"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != FormatTable {
		t.Errorf("expected format table, got %q", cfg.Output.Format)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeConfig(t, `
[log]
level = "loud"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("expected log.level in error, got %v", err)
	}
	if !strings.Contains(err.Error(), cfgPath) {
		t.Errorf("expected path in error, got %v", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	cfgPath := writeConfig(t, "[log\nlevel = ")

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfgPath := writeConfig(t, "")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected default level warn, got %q", cfg.Log.Level)
	}
	if cfg.Output.Format != FormatAuto {
		t.Errorf("expected default format auto, got %q", cfg.Output.Format)
	}
	if cfg.Match.MinConfidence != "low" {
		t.Errorf("expected default min_confidence low, got %q", cfg.Match.MinConfidence)
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	cfgPath := writeConfig(t, `
[log]
level = "loud"
`)

	cfg, err := LoadWithoutValidation(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "loud" {
		t.Errorf("expected level loud, got %q", cfg.Log.Level)
	}
}

func TestConfig_Files(t *testing.T) {
	cfg := &Config{Catalog: CatalogConfig{Files: []string{"classics.toml", "/abs/modern.toml"}}}

	got := cfg.Files("/etc/moviecat/config.toml")
	want := []string{"/etc/moviecat/classics.toml", "/abs/modern.toml"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Files() = %v, want %v", got, want)
	}

	if got := cfg.Files(""); got[0] != "classics.toml" {
		t.Errorf("Files(\"\") should leave paths alone, got %v", got)
	}
}

func TestLoad_LogLevelLowercased(t *testing.T) {
	cfgPath := writeConfig(t, `
[log]
level = "DEBUG"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Log.Level)
	}
}
