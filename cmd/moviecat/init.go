package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviecat/internal/config"
)

func init() {
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Long:  "Writes the default config to path, or to " + config.DefaultPath() + " when omitted. With --resolved, writes the config in effect after --config, --catalog and --log-level.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}
			resolved, err := cmd.Flags().GetBool("resolved")
			if err != nil {
				return err
			}

			var cfg *config.Config
			if resolved {
				if cfg, err = effectiveConfig(); err != nil {
					return err
				}
			}
			if err := runInit(path, force, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	initCmd.Flags().Bool("resolved", false, "Write the effective config instead of the commented default")

	rootCmd.AddCommand(initCmd)
}

// runInit writes cfg to path, or the commented default config when cfg is nil.
func runInit(path string, force bool, cfg *config.Config) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if cfg == nil {
		return config.WriteDefault(path)
	}
	return cfg.Write(path)
}
