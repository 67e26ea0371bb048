package geofmt

import "errors"

// Predefined errors
var (
	// ErrCannotDetermineDriver is returned when no registered driver matches
	// a destination that has an explicit extension
	ErrCannotDetermineDriver = errors.New("geofmt: cannot determine output driver")

	// ErrDuplicateDriver is returned when a driver short name is registered twice
	ErrDuplicateDriver = errors.New("geofmt: duplicate driver short name")

	// ErrInvalidCatalog is returned when a driver catalog cannot be parsed
	ErrInvalidCatalog = errors.New("geofmt: invalid driver catalog")
)
