// Package catalogfile reads movie lists from TOML files into a catalog.
//
// A catalog file is a sequence of [[movie]] tables:
//
//	[[movie]]
//	title = "The Godfather"
//	year = 1972
//	director = "Francis Ford Coppola"
//	genre = "Crime"
//	rating = 9.2
package catalogfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/moviecat/internal/catalog"
)

type fileEntry struct {
	Title    string  `toml:"title"`
	Year     int     `toml:"year"`
	Director string  `toml:"director"`
	Genre    string  `toml:"genre"`
	Rating   float64 `toml:"rating"`
}

type file struct {
	Movies []fileEntry `toml:"movie"`
}

// Decode parses a catalog document. Values of the wrong TOML type and keys
// that do not belong to a movie are errors.
func Decode(r io.Reader) ([]catalog.Movie, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}

	movies := make([]catalog.Movie, 0, len(f.Movies))
	for _, e := range f.Movies {
		movies = append(movies, catalog.Movie(e))
	}
	return movies, nil
}

// Load reads and decodes the catalog file at path.
func Load(path string) ([]catalog.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	movies, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return movies, nil
}

// LoadAll reads every file concurrently. Results line up with paths.
// The first failure cancels files not yet started and is returned.
func LoadAll(ctx context.Context, paths []string) ([][]catalog.Movie, error) {
	results := make([][]catalog.Movie, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			movies, err := Load(path)
			if err != nil {
				return err
			}
			results[i] = movies
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Populate adds each batch to c in order. It stops at the first movie that
// cannot be added; movies before it stay in the collection.
func Populate(c *catalog.Collection, batches ...[]catalog.Movie) error {
	for _, batch := range batches {
		for _, m := range batch {
			if err := c.Add(m); err != nil {
				return err
			}
		}
	}
	return nil
}
