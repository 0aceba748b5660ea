package randomwalk

import "errors"

// ErrInvalidSteps indicates a non-positive step count.
var ErrInvalidSteps = errors.New("randomwalk: steps must be positive")
