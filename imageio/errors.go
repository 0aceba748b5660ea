package imageio

import "errors"

var (
	// ErrInvalidTileSize indicates a tileSize that is not positive.
	ErrInvalidTileSize = errors.New("imageio: tileSize must be positive")
	// ErrDimensionMismatch indicates an image whose width or height is
	// not an exact multiple of tileSize.
	ErrDimensionMismatch = errors.New("imageio: image dimensions are not a multiple of tileSize")
	// ErrUnknownTypeID indicates a palette lookup miss during preview
	// rendering: a CollapsedGrid cell carries a type id the caller's
	// palette does not cover.
	ErrUnknownTypeID = errors.New("imageio: no palette entry for type id")
)
