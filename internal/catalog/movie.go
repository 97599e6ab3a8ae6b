// Package catalog holds movie records in an ordered, title-keyed collection.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Movie is a single catalog entry. Title is the collection key.
type Movie struct {
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	Director string  `json:"director"`
	Genre    string  `json:"genre"`
	Rating   float64 `json:"rating"`
}

// String renders the movie as "Title (Year), dir. Director, Genre, Rating".
func (m Movie) String() string {
	return fmt.Sprintf("%s (%d), dir. %s, %s, %s", m.Title, m.Year, m.Director, m.Genre, FormatRating(m.Rating))
}

// FormatRating renders a rating in its shortest decimal form, keeping at least
// one fractional digit (10 -> "10.0", 9.25 -> "9.25").
func FormatRating(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
