package main

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviecat/internal/catalog"
)

func init() {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through building, searching and trimming a small catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := flagLogLevel("warn")
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), catalog.NewCollection(newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	rootCmd.AddCommand(demoCmd)
}

// demoWriter keeps the first write error and skips every write after it.
type demoWriter struct {
	w   io.Writer
	err error
}

func (d *demoWriter) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *demoWriter) movies(heading string, movies iter.Seq[catalog.Movie]) {
	d.printf("%s\n", heading)
	for m := range movies {
		d.printf("%s\n", m)
	}
}

// runDemo adds the demo set to c, prints it, runs a genre and a year search,
// removes one movie and reports what is left. It returns the first write error.
func runDemo(w io.Writer, c *catalog.Collection) error {
	for _, m := range demoMovies {
		if err := c.Add(m); err != nil {
			return err
		}
	}

	out := &demoWriter{w: w}
	out.movies("All movies in the collection:", c.Movies())
	out.movies("\nMovies in genre 'Drama':", slices.Values(c.SearchByGenre("Drama")))
	out.movies("\nMovies from 2008:", slices.Values(c.SearchByYear(2008)))

	if err := c.Remove("The Godfather"); err != nil {
		return err
	}
	out.printf("\nAfter removal, movie count: %d\n", c.Len())
	out.printf("\nIs 'The Dark Knight' in the collection? %t\n", c.Contains("The Dark Knight"))
	return out.err
}
