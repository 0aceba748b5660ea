package resolver

import (
	"github.com/tilecollapse/gridwfc/collapse"
	"github.com/tilecollapse/gridwfc/grid"
)

// propagate runs a breadth-first worklist starting at start, intersecting
// each uncollapsed neighbour's remaining options with the set permitted
// by every currently-possible id of the cell being propagated from. Any
// neighbour whose options shrink is pushed onto the worklist in turn, so
// a constraint ripples outward until it stops changing anything.
//
// Returns the positions whose option sets changed (for the caller to
// re-key its selection queue), or a CollapseError the first time a
// neighbour's options are driven to empty.
func (r *Resolver) propagate(tiles *grid.GridMap2D[*collapse.Tile], start []grid.Position, iteration *int) ([]grid.Position, error) {
	worklist := append([]grid.Position(nil), start...)
	queued := make(map[grid.Position]bool, len(start))
	for _, p := range start {
		queued[p] = true
	}

	var changed []grid.Position
	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]
		queued[p] = false

		source, ok := tiles.Get(p)
		if !ok {
			continue
		}
		sourceIDs := currentIDs(source)

		for _, d := range grid.Directions {
			np, inBounds := d.Step(p, r.size)
			if !inBounds {
				continue
			}
			neighbor, ok := tiles.Get(np)
			if !ok || neighbor.State() == collapse.Failed {
				continue
			}

			permitted := toSet(r.model.PermittedNeighbors(sourceIDs, d))

			if neighbor.State() == collapse.Collapsed {
				chosen, _ := neighbor.ChosenID()
				if _, ok := permitted[chosen]; !ok {
					*iteration++
					return changed, &CollapseError{Position: np, Iteration: *iteration, Retryable: true, Kind: NoOptions}
				}
				continue
			}

			shrank := false
			for _, optID := range neighbor.Options() {
				if _, ok := permitted[optID]; ok {
					continue
				}
				neighbor.RemoveOption(optID)
				shrank = true
			}
			if !shrank {
				continue
			}

			changed = append(changed, np)
			if !neighbor.HasOptions() {
				*iteration++
				return changed, &CollapseError{Position: np, Iteration: *iteration, Retryable: true, Kind: NoOptions}
			}
			if !queued[np] {
				worklist = append(worklist, np)
				queued[np] = true
			}
		}
	}
	return changed, nil
}

// currentIDs returns the ids a cell may still present to a neighbour: a
// singleton if collapsed, its full remaining option set otherwise.
func currentIDs(t *collapse.Tile) []uint64 {
	if id, ok := t.ChosenID(); ok {
		return []uint64{id}
	}
	return t.Options()
}

// toSet builds a membership set from ids.
func toSet(ids []uint64) map[uint64]struct{} {
	s := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}
