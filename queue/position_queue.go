package queue

import (
	"sort"

	"github.com/tilecollapse/gridwfc/collapse"
	"github.com/tilecollapse/gridwfc/grid"
)

// Corner names the fixed point a PositionQueue starts its walk from.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Axis names which coordinate a PositionQueue walks first.
type Axis int

const (
	RowWise Axis = iota
	ColumnWise
)

// PositionQueue enumerates every position in a fixed order determined
// once at Initialize time by a starting corner and a primary axis.
// Update is a no-op: a neighbor's change never reorders the walk.
type PositionQueue struct {
	corner Corner
	axis   Axis
	order  []grid.Position
	next   int
}

// NewPositionQueue returns a PositionQueue that starts at corner and
// walks axis first.
func NewPositionQueue(corner Corner, axis Axis) *PositionQueue {
	return &PositionQueue{corner: corner, axis: axis}
}

// Initialize captures and sorts every position in view into the fixed
// walk order.
func (q *PositionQueue) Initialize(view GridView) {
	positions := append([]grid.Position(nil), view.Positions()...)
	q.order = orderPositions(positions, q.corner, q.axis)
	q.next = 0
}

// Update is a no-op: PositionQueue ignores propagation feedback.
func (q *PositionQueue) Update(grid.Position, GridView) {}

// PopNext advances past any already-collapsed or failed positions and
// returns the next Uncollapsed one.
func (q *PositionQueue) PopNext(view GridView) (grid.Position, bool) {
	for q.next < len(q.order) {
		p := q.order[q.next]
		q.next++
		if view.State(p) == collapse.Uncollapsed {
			return p, true
		}
	}
	return grid.Position{}, false
}

// Len reports the number of positions not yet visited by PopNext; an
// upper bound on remaining work, since some may already be collapsed.
func (q *PositionQueue) Len() int {
	return len(q.order) - q.next
}

// orderPositions sorts positions for a walk starting at corner, with
// axis as the primary sort key.
func orderPositions(positions []grid.Position, corner Corner, axis Axis) []grid.Position {
	xDesc := corner == TopRight || corner == BottomRight
	yDesc := corner == BottomLeft || corner == BottomRight

	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		ax, ay := a.X, a.Y
		bx, by := b.X, b.Y
		if xDesc {
			ax, bx = -ax, -bx
		}
		if yDesc {
			ay, by = -ay, -by
		}
		if axis == RowWise {
			if ay != by {
				return ay < by
			}
			return ax < bx
		}
		if ax != bx {
			return ax < bx
		}
		return ay < by
	})
	return positions
}
