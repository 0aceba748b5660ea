package pattern

import "errors"

// ErrInvalidDimensions indicates a non-positive pattern width or height.
var ErrInvalidDimensions = errors.New("pattern: width and height must be positive")

// ErrNoPatterns indicates no W x H window in any sample was fully
// occupied, so no pattern could be extracted at all.
var ErrNoPatterns = errors.New("pattern: no complete window found in any sample")
