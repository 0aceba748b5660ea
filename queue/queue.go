package queue

import (
	"github.com/tilecollapse/gridwfc/collapse"
	"github.com/tilecollapse/gridwfc/grid"
)

// GridView is the read-only view of resolver state a queue needs: the
// positions in play, each one's lifecycle State, and (for EntropyQueue)
// its current entropy.
type GridView interface {
	Positions() []grid.Position
	State(p grid.Position) collapse.State
	Entropy(p grid.Position) float64
}

// Queue abstracts "which cell to collapse next".
type Queue interface {
	// Initialize seeds the queue from the current grid state.
	Initialize(view GridView)
	// Update is called whenever propagation changed p's option set.
	Update(p grid.Position, view GridView)
	// PopNext returns the next position to collapse, or false if the
	// queue has nothing left to offer.
	PopNext(view GridView) (grid.Position, bool)
	// Len reports the queue's remaining size.
	Len() int
}
