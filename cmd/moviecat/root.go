package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath   string
	catalogPaths []string
	jsonOutput   bool
	logLevel     string
	noValidate   bool
)

var rootCmd = &cobra.Command{
	Use:   "moviecat",
	Short: "Browse and search a catalog of movies",
	Long: `moviecat - an in-memory movie catalog

Loads movies from TOML catalog files (or a built-in demo set) and lets you
list, look up, search and fuzzy-match them by title, year, genre and rating.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().StringArrayVar(&catalogPaths, "catalog", nil, "Catalog file to load (repeatable, overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noValidate, "no-validate", false, "Load the config without validating it")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("moviecat {{.Version}}\n")
}
