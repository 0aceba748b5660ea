package hostembed

import "errors"

var (
	// ErrOutOfBounds indicates a seeded position lies outside the
	// bridge's grid size.
	ErrOutOfBounds = errors.New("hostembed: seed position out of bounds")
	// ErrNoBridge indicates ConnectIslands could not find any path
	// between two seed regions, which cannot happen on a fully
	// connected rectangular grid but is guarded against regardless.
	ErrNoBridge = errors.New("hostembed: no path found between seed regions")
)
