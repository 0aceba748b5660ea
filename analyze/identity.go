package analyze

import (
	"github.com/tilecollapse/gridwfc/frequency"
	"github.com/tilecollapse/gridwfc/grid"
	"github.com/tilecollapse/gridwfc/rules"
	"github.com/tilecollapse/gridwfc/tile"
)

// Identity scans every sample map and records, for every adjacent pair
// (p, q) with q = step(p, d), that id(q) is an observed neighbor of
// id(p) in direction d. It also sums per-type occurrence counts across
// every sample into the returned frequency.Hints.
//
// Returns ErrNoSamples if samples is empty.
//
// Complexity: O(n) per sample, where n is the number of occupied cells;
// 4 direction checks per cell.
func Identity[T tile.IdentifiableTileData](samples []*grid.GridMap2D[T]) (*Result, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	r := rules.New()
	freq := frequency.New()

	for _, sample := range samples {
		scanSample(sample, r, freq)
	}

	return &Result{Rules: r, Frequencies: freq}, nil
}

// scanSample walks one sample map, recording observed adjacencies into r
// and occurrence counts into freq.
func scanSample[T tile.IdentifiableTileData](sample *grid.GridMap2D[T], r *rules.AdjacencyRules, freq *frequency.Hints) {
	for _, p := range sample.OccupiedPositions() {
		tileData, _ := sample.Get(p)
		sourceID := tileData.TypeID()
		freq.Add(sourceID, 1)

		for _, d := range grid.Directions {
			neighbor, ok := sample.Neighbor(p, d)
			if !ok {
				continue
			}
			r.Add(sourceID, d, neighbor.TypeID())
		}
	}
}
