package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviecat/internal/catalog"
	"github.com/vmunix/moviecat/pkg/title"
)

// matchOutput is the JSON shape of a fuzzy match.
type matchOutput struct {
	Movie      catalog.Movie `json:"movie"`
	Score      float64       `json:"score"`
	Confidence string        `json:"confidence"`
}

func init() {
	matchCmd := &cobra.Command{
		Use:   "match <query>",
		Short: "Find the movie whose title best matches query",
		Long: `Fuzzy title lookup. Titles are compared after lowercasing, removing
accents, punctuation and leading articles, and converting Roman sequel
numbers, so "leon professional" finds "Léon: The Professional".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			minConf, err := title.ParseConfidence(e.cfg.Match.MinConfidence)
			if err != nil {
				return err
			}
			return runMatch(e.movies, e.printer, args[0], minConf)
		},
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(r catalog.Reader, p *printer, q string, minConf title.Confidence) error {
	m, result, ok := r.Match(q)
	if !ok || result.Confidence < minConf {
		return fmt.Errorf("no %s-confidence match for %q: %w", minConf, q, catalog.ErrNotFound)
	}

	if p.json {
		return p.printJSON(matchOutput{Movie: m, Score: result.Score, Confidence: result.Confidence.String()})
	}
	if err := p.printMovie(m); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, "match: %s confidence (score %.2f)\n", result.Confidence, result.Score)
	return err
}
