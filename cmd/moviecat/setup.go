package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviecat/internal/catalog"
	"github.com/vmunix/moviecat/internal/catalogfile"
	"github.com/vmunix/moviecat/internal/config"
)

// demoMovies seeds the collection when no catalog file is configured.
var demoMovies = []catalog.Movie{
	{Title: "The Shawshank Redemption", Year: 1994, Director: "Frank Darabont", Genre: "Drama", Rating: 9.3},
	{Title: "The Godfather", Year: 1972, Director: "Francis Ford Coppola", Genre: "Crime", Rating: 9.2},
	{Title: "The Dark Knight", Year: 2008, Director: "Christopher Nolan", Genre: "Action", Rating: 9.0},
}

// env is everything a command needs: resolved config, logger, the loaded
// collection and a printer bound to the command's output.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	movies  *catalog.Collection
	printer *printer
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// flagLogLevel returns --log-level, lowercased, or fallback when the flag is
// unset.
func flagLogLevel(fallback string) (string, error) {
	if logLevel == "" {
		return fallback, nil
	}
	if !config.ValidLogLevel(logLevel) {
		return "", fmt.Errorf("invalid --log-level %q: must be one of debug, info, warn, error", logLevel)
	}
	return strings.ToLower(logLevel), nil
}

// resolveConfig loads the config named by --config, else a discovered one,
// else the defaults. The returned path is empty for defaults. With
// --no-validate the file is only parsed.
func resolveConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}

	load := config.Load
	if noValidate {
		load = config.LoadWithoutValidation
	}
	cfg, err := load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// effectiveConfig is the resolved config with --log-level and --catalog
// applied. Catalog paths are made absolute so the result can be written
// anywhere.
func effectiveConfig() (*config.Config, error) {
	cfg, path, err := resolveConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Log.Level, err = flagLogLevel(cfg.Log.Level); err != nil {
		return nil, err
	}

	files := catalogPaths
	if len(files) == 0 {
		files = cfg.Files(path)
	}
	var abs []string
	for _, f := range files {
		a, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", f, err)
		}
		abs = append(abs, a)
	}
	cfg.Catalog.Files = abs
	return cfg, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

// loadCollection fills a new collection from files, or from the demo set
// when files is empty.
func loadCollection(ctx context.Context, files []string, logger *slog.Logger) (*catalog.Collection, error) {
	movies := catalog.NewCollection(logger.With("component", "catalog"))
	if len(files) == 0 {
		logger.Debug("no catalog files, using demo set", "count", len(demoMovies))
		return movies, catalogfile.Populate(movies, demoMovies)
	}

	batches, err := catalogfile.LoadAll(ctx, files)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := catalogfile.Populate(movies, batches...); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded", "files", len(files), "movies", movies.Len())
	return movies, nil
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, path, err := resolveConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	level, err := flagLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	files := catalogPaths
	if len(files) == 0 {
		files = cfg.Files(path)
		for _, w := range config.CheckFiles(files) {
			logger.Warn(w)
		}
	}

	movies, err := loadCollection(cmd.Context(), files, logger)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:     cfg,
		logger:  logger,
		movies:  movies,
		printer: newPrinter(cmd.OutOrStdout(), cfg.Output.Format, jsonOutput),
	}, nil
}
