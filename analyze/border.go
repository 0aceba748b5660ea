package analyze

import (
	"github.com/tilecollapse/gridwfc/grid"
	"github.com/tilecollapse/gridwfc/rules"
	"github.com/tilecollapse/gridwfc/tile"
)

// Border first runs Identity, then computes the transitive closure of
// the per-direction adjacency relation: whenever Y borders M in
// direction D and M borders Z in direction D, Y is granted permission
// to border Z in direction D too ("Y and Z share a border through M").
// Repeating this until a fixed point is reached yields a superset of
// Identity's observed-only output: e.g. for the 1x3 strip [A,B,C],
// Identity only observes A-B and B-C, but Border additionally permits
// A adjacent to C, since A borders B and B borders C in the same
// direction (Right).
//
// Returns ErrNoSamples if samples is empty.
//
// Complexity: O(n) for the identity pass, plus O(p * d * k^3) for the
// closure fix-point, where p is the number of passes until convergence,
// d=4 directions, and k is the number of distinct tile types observed.
func Border[T tile.IdentifiableTileData](samples []*grid.GridMap2D[T]) (*Result, error) {
	res, err := Identity(samples)
	if err != nil {
		return nil, err
	}
	closeBorders(res.Rules)
	return res, nil
}

// closeBorders mutates r in place, folding the transitive closure of
// each direction's adjacency relation back into the table until no
// further rule can be added. This is a worklist fixed-point traversal,
// structurally the same shape as a reachability walk: each "newly
// reachable" (source, dir, target) triple is exactly a freshly
// discovered edge that may unlock further triples on the next pass.
func closeBorders(r *rules.AdjacencyRules) {
	for {
		changed := false
		for _, d := range grid.Directions {
			ids := r.SourceIDs()
			for _, shared := range ids {
				viaShared := r.Allowed(shared, d)
				if len(viaShared) == 0 {
					continue
				}
				for _, bearer := range ids {
					if !r.IsPermitted(bearer, d, shared) {
						continue
					}
					for _, target := range viaShared {
						if r.IsPermitted(bearer, d, target) {
							continue
						}
						r.Add(bearer, d, target)
						changed = true
					}
				}
			}
		}
		if !changed {
			return
		}
	}
}
