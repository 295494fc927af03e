package repository

import "errors"

// Common repository errors
var (
	// ErrEmptyKey is returned when a store is built without a storage key
	ErrEmptyKey = errors.New("storage key is empty")

	// ErrMalformedSnapshot is returned when a stored record is not a board
	ErrMalformedSnapshot = errors.New("malformed board snapshot")
)
