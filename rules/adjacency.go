package rules

import (
	"sort"

	"github.com/tilecollapse/gridwfc/grid"
)

// key indexes the rule table by source type id and direction.
type key struct {
	source uint64
	dir    grid.Direction
}

// AdjacencyRules maps (source type id, direction) to the set of target
// type ids permitted in that direction. It is built once by an analyzer
// (package analyze) and then shared read-only with one or more resolver
// runs; nothing here is safe for concurrent mutation, so callers must
// finish all writes before the first concurrent read.
type AdjacencyRules struct {
	table map[key]map[uint64]struct{}
}

// New returns an empty AdjacencyRules table.
func New() *AdjacencyRules {
	return &AdjacencyRules{table: make(map[key]map[uint64]struct{})}
}

// Add records that target is permitted adjacent to source in direction
// dir. Adding the same triple twice is a no-op (idempotent).
//
// Complexity: O(1) amortized.
func (r *AdjacencyRules) Add(source uint64, dir grid.Direction, target uint64) {
	k := key{source: source, dir: dir}
	targets, ok := r.table[k]
	if !ok {
		targets = make(map[uint64]struct{})
		r.table[k] = targets
	}
	targets[target] = struct{}{}
}

// Allowed returns the sorted list of target type ids permitted adjacent
// to source in direction dir.
//
// Complexity: O(k log k) where k is the number of permitted targets.
func (r *AdjacencyRules) Allowed(source uint64, dir grid.Direction) []uint64 {
	targets := r.table[key{source: source, dir: dir}]
	out := make([]uint64, 0, len(targets))
	for id := range targets {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsPermitted reports whether candidate is a permitted target adjacent
// to source in direction dir.
//
// Complexity: O(1).
func (r *AdjacencyRules) IsPermitted(source uint64, dir grid.Direction, candidate uint64) bool {
	targets, ok := r.table[key{source: source, dir: dir}]
	if !ok {
		return false
	}
	_, ok = targets[candidate]
	return ok
}

// Close performs the symmetry closure pass: for every recorded rule
// (a, d, b) it inserts the inverse rule (b, opposite(d), a). Calling
// Close on an already-symmetric table is a safe no-op.
//
// Complexity: O(R) where R is the number of recorded (source,dir,target)
// triples at the time Close is called.
func (r *AdjacencyRules) Close() {
	// Snapshot the current triples before mutating, so newly-inserted
	// inverse rules are not themselves re-inverted in this pass.
	type triple struct {
		source, target uint64
		dir            grid.Direction
	}
	var triples []triple
	for k, targets := range r.table {
		for target := range targets {
			triples = append(triples, triple{source: k.source, dir: k.dir, target: target})
		}
	}
	for _, tr := range triples {
		r.Add(tr.target, tr.dir.Opposite(), tr.source)
	}
}

// Empty reports whether the table has no recorded rules at all.
func (r *AdjacencyRules) Empty() bool {
	return len(r.table) == 0
}

// SourceIDs returns every distinct source type id that has at least one
// recorded rule, in ascending order. The Border analyzer's closure pass
// (package analyze) iterates over these ids.
//
// Complexity: O(n log n).
func (r *AdjacencyRules) SourceIDs() []uint64 {
	seen := make(map[uint64]struct{})
	for k := range r.table {
		seen[k.source] = struct{}{}
	}
	out := make([]uint64, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
