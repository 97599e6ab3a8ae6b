package catalog

import (
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestCollection returns a collection preloaded with movies in order.
func newTestCollection(t *testing.T, movies ...Movie) *Collection {
	t.Helper()
	c := NewCollection(discardLogger())
	for _, m := range movies {
		if err := c.Add(m); err != nil {
			t.Fatalf("Add(%q): %v", m.Title, err)
		}
	}
	return c
}

var (
	inception   = Movie{Title: "Inception", Year: 2010, Director: "Christopher Nolan", Genre: "Sci-Fi", Rating: 8.8}
	shawshank   = Movie{Title: "The Shawshank Redemption", Year: 1994, Director: "Frank Darabont", Genre: "Drama", Rating: 9.3}
	godfather   = Movie{Title: "The Godfather", Year: 1972, Director: "Francis Ford Coppola", Genre: "Crime", Rating: 9.2}
	darkKnight  = Movie{Title: "The Dark Knight", Year: 2008, Director: "Christopher Nolan", Genre: "Action", Rating: 9.0}
	pulpFiction = Movie{Title: "Pulp Fiction", Year: 1994, Director: "Quentin Tarantino", Genre: "Crime", Rating: 8.9}
)

func titles(movies []Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Title)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
