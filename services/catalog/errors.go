package catalog

import "errors"

var (
	ErrAdNotFound    = errors.New("ad not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrNotAdOwner    = errors.New("ad belongs to another seller")
)
