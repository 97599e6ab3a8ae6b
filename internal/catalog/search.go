package catalog

import (
	"strings"

	"github.com/vmunix/moviecat/pkg/title"
)

// Filter specifies criteria for Search. Nil fields are ignored; set fields
// must all match.
type Filter struct {
	Title     *string  // case-insensitive substring of the title
	Genre     *string  // case-insensitive substring of the genre
	Year      *int     // exact release year
	MinRating *float64 // inclusive lower bound
	MaxRating *float64 // inclusive upper bound
}

// IsZero reports whether no criteria are set.
func (f Filter) IsZero() bool {
	return f.Title == nil && f.Genre == nil && f.Year == nil && f.MinRating == nil && f.MaxRating == nil
}

func (f Filter) matcher() func(Movie) bool {
	var titleKey, genreKey string
	if f.Title != nil {
		titleKey = strings.ToLower(*f.Title)
	}
	if f.Genre != nil {
		genreKey = strings.ToLower(*f.Genre)
	}
	return func(m Movie) bool {
		if f.Title != nil && !strings.Contains(strings.ToLower(m.Title), titleKey) {
			return false
		}
		if f.Genre != nil && !strings.Contains(strings.ToLower(m.Genre), genreKey) {
			return false
		}
		if f.Year != nil && m.Year != *f.Year {
			return false
		}
		if f.MinRating != nil && m.Rating < *f.MinRating {
			return false
		}
		if f.MaxRating != nil && m.Rating > *f.MaxRating {
			return false
		}
		return true
	}
}

// Search scans the collection in insertion order and returns the movies
// matching every criterion set on f.
func (c *Collection) Search(f Filter) []Movie {
	match := f.matcher()
	var results []Movie
	for _, t := range c.order {
		if m := c.movies[t]; match(m) {
			results = append(results, m)
		}
	}
	return results
}

// SearchByTitle returns movies whose title contains keyword, ignoring case.
// An empty keyword matches every movie.
func (c *Collection) SearchByTitle(keyword string) []Movie {
	return c.Search(Filter{Title: &keyword})
}

// SearchByYear returns movies released in year.
func (c *Collection) SearchByYear(year int) []Movie {
	return c.Search(Filter{Year: &year})
}

// SearchByGenre returns movies whose genre contains keyword, ignoring case.
func (c *Collection) SearchByGenre(keyword string) []Movie {
	return c.Search(Filter{Genre: &keyword})
}

// SearchByRating returns movies rated within [minRating, maxRating].
func (c *Collection) SearchByRating(minRating, maxRating float64) []Movie {
	return c.Search(Filter{MinRating: &minRating, MaxRating: &maxRating})
}

// Match finds the movie whose title best resembles query.
// The bool is false when no title reaches low confidence.
func (c *Collection) Match(query string) (Movie, title.MatchResult, bool) {
	result := title.MatchTitle(query, c.order)
	if result.Confidence == title.ConfidenceNone {
		return Movie{}, result, false
	}
	return c.movies[result.Title], result, true
}
