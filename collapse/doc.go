// Package collapse implements the per-cell collapsible tile state used
// by both resolver variants (singular and overlapping): the set of
// still-possible option ids, their Shannon entropy, and the three
// observable states a cell passes through during a run.
//
// A Tile starts Uncollapsed with a non-empty option set. RemoveOption
// shrinks that set as propagation rules out possibilities; Collapse
// commits to one option, clearing the set. A Tile with no options and
// no chosen id is Failed — a constraint contradiction that the
// resolver surfaces as a retryable error.
//
// Entropy is cached and updated incrementally: constructing a Tile
// computes the weight sum and weight*log(weight) sum once, and
// RemoveOption subtracts the departing option's contribution rather
// than re-summing. A small per-tile noise term, drawn once from the
// caller-supplied RNG at construction, breaks entropy ties
// deterministically for a given seed.
package collapse
