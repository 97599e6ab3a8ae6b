package catalog

import (
	"iter"

	"github.com/vmunix/moviecat/pkg/title"
)

//go:generate mockgen -destination=mocks/mock_reader.go -package=mocks . Reader

// Reader is the read-only view of a collection.
type Reader interface {
	Get(title string) (Movie, bool)
	Contains(title string) bool
	Len() int
	All() []Movie
	Movies() iter.Seq[Movie]
	Search(f Filter) []Movie
	SearchByTitle(keyword string) []Movie
	SearchByYear(year int) []Movie
	SearchByGenre(keyword string) []Movie
	SearchByRating(minRating, maxRating float64) []Movie
	Match(query string) (Movie, title.MatchResult, bool)
}

var _ Reader = (*Collection)(nil)
