package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a position lies outside the grid's Size.
	ErrOutOfBounds = errors.New("grid: position out of bounds")

	// ErrInvalidSize indicates a Size with a non-positive Width or Height.
	ErrInvalidSize = errors.New("grid: width and height must be positive")
)
