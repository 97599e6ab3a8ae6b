package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviecat/internal/catalog"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all movies in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			return runList(e.movies, e.printer)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <title>",
		Short: "Show a movie by its exact title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			return runGet(e.movies, e.printer, args[0])
		},
	}

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			return runCount(e.movies, e.printer)
		},
	}

	hasCmd := &cobra.Command{
		Use:   "has <title>",
		Short: "Report whether a movie with the exact title exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			return runHas(e.movies, e.printer, args[0])
		},
	}

	rootCmd.AddCommand(listCmd, getCmd, countCmd, hasCmd)
}

func runList(r catalog.Reader, p *printer) error {
	return p.printMovies(r.Movies())
}

func runGet(r catalog.Reader, p *printer, title string) error {
	m, ok := r.Get(title)
	if !ok {
		return fmt.Errorf("movie %q: %w", title, catalog.ErrNotFound)
	}
	return p.printMovie(m)
}

func runCount(r catalog.Reader, p *printer) error {
	return p.printValue(r.Len())
}

func runHas(r catalog.Reader, p *printer, title string) error {
	return p.printValue(r.Contains(title))
}
