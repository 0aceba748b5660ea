package analyze

import (
	"errors"

	"github.com/tilecollapse/gridwfc/frequency"
	"github.com/tilecollapse/gridwfc/rules"
)

// ErrNoSamples indicates the analyzer was given an empty sample set.
var ErrNoSamples = errors.New("analyze: at least one sample map is required")

// Result bundles the two outputs every analyzer in this package
// produces: the derived adjacency rules and the per-type frequency
// hints observed while scanning the samples.
type Result struct {
	Rules       *rules.AdjacencyRules
	Frequencies *frequency.Hints
}
