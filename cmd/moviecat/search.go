package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviecat/internal/catalog"
)

// query runs one search against a catalog.
type query func(catalog.Reader) []catalog.Movie

func byTitle(keyword string) query {
	return func(r catalog.Reader) []catalog.Movie { return r.SearchByTitle(keyword) }
}

func byGenre(keyword string) query {
	return func(r catalog.Reader) []catalog.Movie { return r.SearchByGenre(keyword) }
}

func byYear(year int) query {
	return func(r catalog.Reader) []catalog.Movie { return r.SearchByYear(year) }
}

func byRating(minRating, maxRating float64) query {
	return func(r catalog.Reader) []catalog.Movie { return r.SearchByRating(minRating, maxRating) }
}

func byFilter(f catalog.Filter) query {
	return func(r catalog.Reader) []catalog.Movie { return r.Search(f) }
}

func runQuery(r catalog.Reader, p *printer, q query) error {
	return p.printMovies(slices.Values(q(r)))
}

// runSearch runs a combined search. A filter with no criteria lists every movie.
func runSearch(r catalog.Reader, p *printer, logger *slog.Logger, f catalog.Filter) error {
	if f.IsZero() {
		logger.Debug("no search criteria given, listing every movie")
	}
	return runQuery(r, p, byFilter(f))
}

// queryCommand builds a command that parses its args into a query before
// loading the catalog, so bad input fails fast.
func queryCommand(use, short string, args cobra.PositionalArgs, build func(cmd *cobra.Command, args []string) (query, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := build(cmd, args)
			if err != nil {
				return err
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			return runQuery(e.movies, e.printer, q)
		},
	}
}

func init() {
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			return runSearch(e.movies, e.printer, e.logger, f)
		},
	}
	searchCmd.Long = `Search movies by any combination of criteria, or use a subcommand for a
single criterion. Text criteria match case-insensitive substrings; rating
bounds are inclusive. With no criteria every movie matches.`
	searchCmd.Flags().String("title", "", "Title contains")
	searchCmd.Flags().String("genre", "", "Genre contains")
	searchCmd.Flags().Int("year", 0, "Release year")
	searchCmd.Flags().Float64("min-rating", 0, "Minimum rating (inclusive)")
	searchCmd.Flags().Float64("max-rating", 0, "Maximum rating (inclusive)")

	titleCmd := queryCommand("title <keyword>", "Movies whose title contains keyword (empty matches all)", cobra.ExactArgs(1),
		func(_ *cobra.Command, args []string) (query, error) {
			return byTitle(args[0]), nil
		})

	genreCmd := queryCommand("genre <keyword>", "Movies whose genre contains keyword", cobra.ExactArgs(1),
		func(_ *cobra.Command, args []string) (query, error) {
			return byGenre(args[0]), nil
		})

	yearCmd := queryCommand("year <year>", "Movies released in year", cobra.ExactArgs(1),
		func(_ *cobra.Command, args []string) (query, error) {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("invalid year %q", args[0])
			}
			return byYear(year), nil
		})

	ratingCmd := queryCommand("rating <min> <max>", "Movies rated within [min, max]", cobra.ExactArgs(2),
		func(_ *cobra.Command, args []string) (query, error) {
			lo, hi, err := parseRatingRange(args[0], args[1])
			if err != nil {
				return nil, err
			}
			return byRating(lo, hi), nil
		})

	searchCmd.AddCommand(titleCmd, genreCmd, yearCmd, ratingCmd)
	rootCmd.AddCommand(searchCmd)
}

// filterFromFlags sets a criterion only for flags given on the command line,
// so "--year 0" still filters.
func filterFromFlags(cmd *cobra.Command) (catalog.Filter, error) {
	var f catalog.Filter
	flags := cmd.Flags()

	if flags.Changed("title") {
		v, err := flags.GetString("title")
		if err != nil {
			return f, err
		}
		f.Title = &v
	}
	if flags.Changed("genre") {
		v, err := flags.GetString("genre")
		if err != nil {
			return f, err
		}
		f.Genre = &v
	}
	if flags.Changed("year") {
		v, err := flags.GetInt("year")
		if err != nil {
			return f, err
		}
		f.Year = &v
	}
	if flags.Changed("min-rating") {
		v, err := flags.GetFloat64("min-rating")
		if err != nil {
			return f, err
		}
		f.MinRating = &v
	}
	if flags.Changed("max-rating") {
		v, err := flags.GetFloat64("max-rating")
		if err != nil {
			return f, err
		}
		f.MaxRating = &v
	}
	return f, nil
}

func parseRatingRange(minArg, maxArg string) (float64, float64, error) {
	lo, err := strconv.ParseFloat(minArg, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minimum rating %q", minArg)
	}
	hi, err := strconv.ParseFloat(maxArg, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid maximum rating %q", maxArg)
	}
	return lo, hi, nil
}
