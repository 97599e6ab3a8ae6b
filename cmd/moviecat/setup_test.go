package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/moviecat/internal/catalog"
	"github.com/vmunix/moviecat/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"bogus", slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestLoadCollection_DemoSet(t *testing.T) {
	c, err := loadCollection(context.Background(), nil, testLogger())
	require.NoError(t, err)

	assert.Equal(t, demoMovies, c.All())
}

func TestLoadCollection_Files(t *testing.T) {
	files := []string{
		filepath.Join("testdata", "classics.toml"),
		filepath.Join("testdata", "extra.toml"),
	}

	c, err := loadCollection(context.Background(), files, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	m, ok := c.Get("Léon: The Professional")
	require.True(t, ok)
	assert.Equal(t, "Luc Besson", m.Director)

	_, res, ok := c.Match("leon the professional")
	require.True(t, ok)
	assert.Equal(t, "Léon: The Professional", res.Title)
}

func TestLoadCollection_DuplicateAcrossFiles(t *testing.T) {
	files := []string{
		filepath.Join("testdata", "classics.toml"),
		filepath.Join("testdata", "classics.toml"),
	}

	_, err := loadCollection(context.Background(), files, testLogger())
	assert.ErrorIs(t, err, catalog.ErrDuplicate)
}

func TestLoadCollection_MissingFile(t *testing.T) {
	_, err := loadCollection(context.Background(), []string{filepath.Join(t.TempDir(), "nope.toml")}, testLogger())
	assert.Error(t, err)
}

func TestResolveConfig_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moviecat.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"plain\"\n"), 0644))

	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })

	cfg, got, err := resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, config.FormatPlain, cfg.Output.Format)
}

func TestResolveConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moviecat.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"loud\"\n"), 0644))

	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })

	_, _, err := resolveConfig()
	assert.ErrorContains(t, err, "log.level")
}

func TestFilterFromFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("title", "", "")
	cmd.Flags().String("genre", "", "")
	cmd.Flags().Int("year", 0, "")
	cmd.Flags().Float64("min-rating", 0, "")
	cmd.Flags().Float64("max-rating", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--genre", "crime", "--year", "0", "--min-rating", "8.5"}))

	f, err := filterFromFlags(cmd)
	require.NoError(t, err)

	assert.Nil(t, f.Title)
	assert.Nil(t, f.MaxRating)
	require.NotNil(t, f.Genre)
	assert.Equal(t, "crime", *f.Genre)
	require.NotNil(t, f.Year)
	assert.Equal(t, 0, *f.Year)
	require.NotNil(t, f.MinRating)
	assert.Equal(t, 8.5, *f.MinRating)
}

func TestParseRatingRange(t *testing.T) {
	lo, hi, err := parseRatingRange("8", "9.5")
	require.NoError(t, err)
	assert.Equal(t, 8.0, lo)
	assert.Equal(t, 9.5, hi)

	_, _, err = parseRatingRange("high", "9")
	assert.ErrorContains(t, err, "minimum")

	_, _, err = parseRatingRange("8", "")
	assert.ErrorContains(t, err, "maximum")
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "moviecat.toml")

	require.NoError(t, runInit(path, false, nil))
	_, err := os.Stat(path)
	require.NoError(t, err)

	err = runInit(path, false, nil)
	assert.ErrorContains(t, err, "already exists")

	assert.NoError(t, runInit(path, true, nil))
}

// setGlobal sets a package flag variable for the duration of the test.
func setGlobal[T any](t *testing.T, v *T, val T) {
	t.Helper()
	old := *v
	*v = val
	t.Cleanup(func() { *v = old })
}

func TestFlagLogLevel(t *testing.T) {
	setGlobal(t, &logLevel, "")
	got, err := flagLogLevel("info")
	require.NoError(t, err)
	assert.Equal(t, "info", got)

	setGlobal(t, &logLevel, "DEBUG")
	got, err = flagLogLevel("info")
	require.NoError(t, err)
	assert.Equal(t, "debug", got)

	setGlobal(t, &logLevel, "verbos")
	_, err = flagLogLevel("info")
	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestResolveConfig_NoValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moviecat.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"loud\"\n"), 0644))
	setGlobal(t, &configPath, path)
	setGlobal(t, &noValidate, true)

	cfg, _, err := resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.Log.Level)
	assert.Equal(t, slog.LevelWarn, parseLogLevel(cfg.Log.Level))
}

func TestEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moviecat.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"plain\"\n"), 0644))
	setGlobal(t, &configPath, path)
	setGlobal(t, &logLevel, "Info")
	setGlobal(t, &catalogPaths, []string{filepath.Join("testdata", "classics.toml")})

	cfg, err := effectiveConfig()
	require.NoError(t, err)

	want, err := filepath.Abs(filepath.Join("testdata", "classics.toml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.FormatPlain, cfg.Output.Format)
	assert.Equal(t, []string{want}, cfg.Catalog.Files)
}

func TestEffectiveConfig_BadLogLevel(t *testing.T) {
	setGlobal(t, &configPath, "")
	t.Setenv("MOVIECAT_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	setGlobal(t, &logLevel, "loud")

	_, err := effectiveConfig()
	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestRunInit_Resolved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moviecat.toml")
	cfg := config.Default()
	cfg.Log.Level = "debug"
	cfg.Catalog.Files = []string{"/srv/movies/classics.toml"}

	require.NoError(t, runInit(path, false, cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", loaded.Log.Level)
	assert.Equal(t, cfg.Catalog.Files, loaded.Catalog.Files)

	assert.ErrorContains(t, runInit(path, false, cfg), "already exists")
}
