package tile

import "errors"

// Sentinel errors for tile collection operations.
var (
	// ErrIDNotFound indicates a lookup for a type id not present in a Collection.
	ErrIDNotFound = errors.New("tile: type id not found")
)

// TileData is a marker for any payload that can live inside a grid cell.
// It carries no required methods: a sample map's cell data only needs to
// satisfy TileData, not IdentifiableTileData, until it is handed to an
// analyzer or resolver.
type TileData interface{}

// IdentifiableTileData is a TileData that exposes a stable type
// identifier. Constraint analysis (package analyze, package pattern) and
// generation (package resolver) operate on type ids, never on the
// payload itself, so any type implementing this one method can be used
// as sample input.
type IdentifiableTileData interface {
	TileData

	// TypeID returns the stable identifier for this tile's type. It must
	// be deterministic across the lifetime of a single process for a
	// given logical tile type, and distinct tile types must never share
	// an id within one analysis/generation run.
	TypeID() uint64
}
