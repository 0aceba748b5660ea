package resolver

import (
	"math"

	"github.com/tilecollapse/gridwfc/collapse"
	"github.com/tilecollapse/gridwfc/grid"
)

// gridView adapts a live tiles grid to the queue.GridView interface a
// selection queue needs, without exposing the grid itself.
type gridView struct {
	tiles *grid.GridMap2D[*collapse.Tile]
}

func (v *gridView) Positions() []grid.Position {
	return v.tiles.Positions()
}

func (v *gridView) State(p grid.Position) collapse.State {
	t, ok := v.tiles.Get(p)
	if !ok {
		return collapse.Failed
	}
	return t.State()
}

func (v *gridView) Entropy(p grid.Position) float64 {
	t, ok := v.tiles.Get(p)
	if !ok {
		return math.Inf(1)
	}
	return t.Entropy()
}
