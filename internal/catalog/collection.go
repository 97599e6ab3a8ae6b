package catalog

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// Collection is an ordered set of movies keyed by title.
// It is not safe for concurrent use.
type Collection struct {
	movies map[string]Movie
	order  []string
	logger *slog.Logger
}

// NewCollection creates an empty collection.
func NewCollection(logger *slog.Logger) *Collection {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collection{
		movies: make(map[string]Movie),
		logger: logger,
	}
}

// Add inserts m keyed by its title.
// Returns ErrDuplicate if the title is already present; the collection is left unchanged.
func (c *Collection) Add(m Movie) error {
	if _, ok := c.movies[m.Title]; ok {
		return fmt.Errorf("add movie %q: %w", m.Title, ErrDuplicate)
	}
	c.movies[m.Title] = m
	c.order = append(c.order, m.Title)
	c.logger.Debug("movie added", "title", m.Title, "year", m.Year, "size", len(c.order))
	return nil
}

// Remove deletes the movie with the given title.
// Returns ErrNotFound if no such movie exists.
func (c *Collection) Remove(title string) error {
	if _, ok := c.movies[title]; !ok {
		return fmt.Errorf("remove movie %q: %w", title, ErrNotFound)
	}
	delete(c.movies, title)
	if i := slices.Index(c.order, title); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	c.logger.Debug("movie removed", "title", title, "size", len(c.order))
	return nil
}

// Get returns the movie with the given title. The bool is false on a miss.
func (c *Collection) Get(title string) (Movie, bool) {
	m, ok := c.movies[title]
	return m, ok
}

// Contains reports whether a movie with the given title is present.
func (c *Collection) Contains(title string) bool {
	_, ok := c.movies[title]
	return ok
}

// Len returns the number of movies.
func (c *Collection) Len() int {
	return len(c.order)
}

// All returns every movie in insertion order.
func (c *Collection) All() []Movie {
	out := make([]Movie, 0, len(c.order))
	for _, title := range c.order {
		out = append(out, c.movies[title])
	}
	return out
}

// Movies returns a sequence over a snapshot of the collection taken now.
// Ranging over the sequence again restarts from the first movie of the same
// snapshot; later Add/Remove calls are not observed.
func (c *Collection) Movies() iter.Seq[Movie] {
	snapshot := c.All()
	return func(yield func(Movie) bool) {
		for _, m := range snapshot {
			if !yield(m) {
				return
			}
		}
	}
}
