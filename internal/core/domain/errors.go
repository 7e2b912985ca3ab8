package domain

import "errors"

var (
	// ErrListingNotFound is returned when no record matches the requested
	// external id.
	ErrListingNotFound = errors.New("listing not found")
)
