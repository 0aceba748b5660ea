package grid

import "sort"

// GridMap2D is a sparse Position -> T map bounded by a Size. It is the
// generic grid-map abstraction every sample map, in-progress collapse
// grid, and CollapsedGrid in this module is built from.
//
// Invariants: every stored position lies inside Size; at most one tile
// per position; iteration order over positions is deterministic
// (row-major). There is no implicit default tile: reading an empty cell
// returns the zero value of T and ok=false.
type GridMap2D[T any] struct {
	size  Size
	cells map[Position]T
}

// NewGridMap2D creates an empty GridMap2D bounded by size.
func NewGridMap2D[T any](size Size) *GridMap2D[T] {
	return &GridMap2D[T]{
		size:  size,
		cells: make(map[Position]T),
	}
}

// Size returns the grid's bounding Size.
func (g *GridMap2D[T]) Size() Size {
	return g.size
}

// Set inserts or replaces the tile at p. It returns ErrOutOfBounds if p
// does not lie within the grid's Size.
//
// Complexity: O(1).
func (g *GridMap2D[T]) Set(p Position, tile T) error {
	if !g.size.Contains(p) {
		return ErrOutOfBounds
	}
	g.cells[p] = tile
	return nil
}

// Get returns the tile at p and whether one is present. An out-of-bounds
// position simply reports ok=false, matching "reading an empty cell
// returns none" (no panic, no implicit default).
//
// Complexity: O(1).
func (g *GridMap2D[T]) Get(p Position) (T, bool) {
	t, ok := g.cells[p]
	return t, ok
}

// Has reports whether a tile is stored at p.
func (g *GridMap2D[T]) Has(p Position) bool {
	_, ok := g.cells[p]
	return ok
}

// Remove deletes the tile at p, if any.
func (g *GridMap2D[T]) Remove(p Position) {
	delete(g.cells, p)
}

// Neighbor returns the tile adjacent to p in direction d, and whether it
// is both in bounds and occupied.
//
// Complexity: O(1).
func (g *GridMap2D[T]) Neighbor(p Position, d Direction) (T, bool) {
	next, inBounds := d.Step(p, g.size)
	if !inBounds {
		var zero T
		return zero, false
	}
	return g.Get(next)
}

// Positions returns every position within the grid's Size, in row-major
// order, regardless of occupancy.
//
// Complexity: O(Width*Height).
func (g *GridMap2D[T]) Positions() []Position {
	out := make([]Position, 0, g.size.Area())
	for y := 0; y < g.size.Height; y++ {
		for x := 0; x < g.size.Width; x++ {
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}

// OccupiedPositions returns every position currently holding a tile, in
// deterministic row-major order.
//
// Complexity: O(n log n) where n is the number of occupied cells.
func (g *GridMap2D[T]) OccupiedPositions() []Position {
	out := make([]Position, 0, len(g.cells))
	for p := range g.cells {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Len returns the number of occupied cells.
func (g *GridMap2D[T]) Len() int {
	return len(g.cells)
}

// Drain removes and returns every stored tile, keyed by position. The
// grid is empty (but keeps its Size) after this call.
//
// Complexity: O(n).
func (g *GridMap2D[T]) Drain() map[Position]T {
	out := g.cells
	g.cells = make(map[Position]T)
	return out
}
