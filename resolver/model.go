package resolver

import "github.com/tilecollapse/gridwfc/grid"

// ConstraintModel abstracts the two collapse variants (singular,
// overlapping) behind one interface the resolver's loop and
// propagation step can share.
type ConstraintModel interface {
	// AllIDs returns every id a fresh cell may start with.
	AllIDs() []uint64
	// Weight returns id's selection weight for the weighted random draw.
	Weight(id uint64) float64
	// PermittedNeighbors returns the union, over every id in ids, of the
	// ids permitted to sit adjacent in direction d.
	PermittedNeighbors(ids []uint64, d grid.Direction) []uint64
	// ResolveTileID maps a collapsed option id to the tile type id
	// recorded into the final CollapsedGrid. For the singular model
	// this is the identity; for the overlapping model it is the
	// pattern's primary (origin) cell type id.
	ResolveTileID(id uint64) uint64
}

// sanityChecked is an optional ConstraintModel extension: a model that
// can detect, at construction time, that it is structurally incapable
// of ever collapsing (an empty adjacency table, for instance).
// Models that implement it are checked by New before anything runs.
type sanityChecked interface {
	SanityCheck() error
}

// minSized is an optional ConstraintModel extension: a model whose ids
// only make sense placed on a grid at least as large as some fixed
// minimum (the overlapping model's pattern window, for instance).
// Models that implement it are checked by New before anything runs.
type minSized interface {
	MinSize() grid.Size
}
