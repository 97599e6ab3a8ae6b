package catalog

import "errors"

var (
	// ErrNotFound indicates no movie with the given title exists.
	ErrNotFound = errors.New("movie not found")

	// ErrDuplicate indicates a movie with the same title is already present.
	ErrDuplicate = errors.New("duplicate movie title")
)
