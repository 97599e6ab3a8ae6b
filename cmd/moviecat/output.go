package main

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/vmunix/moviecat/internal/catalog"
	"github.com/vmunix/moviecat/internal/config"
)

var movieHeaders = []string{"Title", "Year", "Director", "Genre", "Rating"}

var movieAligns = []columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignRight}

// printer writes movies as a table, plain lines or JSON.
type printer struct {
	w     io.Writer
	table bool
	json  bool
}

func newPrinter(w io.Writer, format string, asJSON bool) *printer {
	p := &printer{w: w, json: asJSON}
	switch format {
	case config.FormatTable:
		p.table = true
	case config.FormatPlain:
		p.table = false
	default:
		p.table = isTerminal(w)
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *printer) printJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printMovies drains seq. An empty sequence prints "No movies found."
// (or [] as JSON).
func (p *printer) printMovies(seq iter.Seq[catalog.Movie]) error {
	movies := []catalog.Movie{}
	for m := range seq {
		movies = append(movies, m)
	}

	if p.json {
		return p.printJSON(movies)
	}
	if len(movies) == 0 {
		_, err := fmt.Fprintln(p.w, "No movies found.")
		return err
	}
	if p.table {
		rows := make([][]string, 0, len(movies))
		for _, m := range movies {
			rows = append(rows, []string{m.Title, strconv.Itoa(m.Year), m.Director, m.Genre, catalog.FormatRating(m.Rating)})
		}
		_, err := fmt.Fprintln(p.w, renderTable(movieHeaders, rows, movieAligns))
		return err
	}
	for _, m := range movies {
		if _, err := fmt.Fprintln(p.w, m); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printMovie(m catalog.Movie) error {
	return p.printMovies(func(yield func(catalog.Movie) bool) { yield(m) })
}

// printValue prints v as JSON or with its default formatting.
func (p *printer) printValue(v any) error {
	if p.json {
		return p.printJSON(v)
	}
	_, err := fmt.Fprintln(p.w, v)
	return err
}
