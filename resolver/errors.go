package resolver

import (
	"errors"
	"fmt"

	"github.com/tilecollapse/gridwfc/grid"
)

// ErrEmptyDomain indicates a ConstraintModel with no known ids: there is
// nothing to seed a cell's option set with.
var ErrEmptyDomain = errors.New("resolver: constraint model has no known ids")

// ErrUnknownPreCollapsedID indicates a pre-collapsed cell was seeded
// with a tile type id the constraint model does not know.
var ErrUnknownPreCollapsedID = errors.New("resolver: pre-collapsed cell uses an unknown tile id")

// ErrGridTooSmall indicates a grid size smaller than the constraint
// model's minimum supported size, such as an overlapping model's
// pattern window.
var ErrGridTooSmall = errors.New("resolver: grid size is smaller than the model's minimum size")

// ConfigurationError wraps a sentinel describing an invalid resolver
// setup, detected before any collapse is attempted. Configuration
// errors are never retryable: retrying with the same model and options
// reproduces the same error.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("resolver: configuration error: %s", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ErrorKind classifies a CollapseError.
type ErrorKind int

const (
	// NoOptions: a cell's option set became empty, a constraint
	// contradiction. Retrying with a fresh RNG stream may avoid it.
	NoOptions ErrorKind = iota
	// Unreachable: a sanity check caught a model that can never
	// collapse at all, such as an empty adjacency table. Retrying
	// changes nothing; the model itself needs fixing.
	Unreachable
)

func (k ErrorKind) String() string {
	switch k {
	case NoOptions:
		return "NoOptions"
	case Unreachable:
		return "Unreachable"
	default:
		return "ErrorKind(?)"
	}
}

// CollapseError reports a runtime contradiction encountered during a
// resolver run: the position at which it happened, the iteration
// number, and whether a retry (fresh RNG seed, same inputs otherwise)
// might avoid it.
type CollapseError struct {
	Position  grid.Position
	Iteration int
	Retryable bool
	Kind      ErrorKind
}

func (e *CollapseError) Error() string {
	return fmt.Sprintf("resolver: collapse error at %s (iteration %d, kind %s, retryable=%v)",
		e.Position, e.Iteration, e.Kind, e.Retryable)
}

// kindLabel returns err's CollapseError kind as a metrics/log label, or
// "unknown" if err is not a CollapseError.
func kindLabel(err error) string {
	var collapseErr *CollapseError
	if errors.As(err, &collapseErr) {
		return collapseErr.Kind.String()
	}
	return "unknown"
}
