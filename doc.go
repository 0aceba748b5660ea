// Package gridwfc generates 2D rectangular grid maps populated with
// typed tiles, using constraint-based ("collapse") algorithms in the
// Wave Function Collapse / Model Synthesis family.
//
// The engine is organized as a pipeline of small packages:
//
//	grid/       — Position, Size, Direction and the generic GridMap2D
//	tile/       — IdentifiableTileData and a small id<->data registry
//	rules/      — AdjacencyRules, a (source, direction) -> targets table
//	analyze/    — Identity and Border analyzers that derive rules from samples
//	pattern/    — overlapping-model pattern extraction and compatibility
//	frequency/  — per-tile-type occurrence weighting
//	collapse/   — a single cell's entropy-tracked option set
//	queue/      — Position and Entropy cell-selection strategies
//	resolver/   — the collapse loop shared by the singular and overlapping models
//	subscriber/ — observers over a run's collapse events (history, logging, metrics)
//
// Around the core, imageio loads sample maps from PNG tile sheets and
// renders a resolved grid back to an image, hostembed is the
// host-engine collaborator for pre-collapsed sparse seed maps, and
// randomwalk is a non-collapse alternative generator for quick organic
// blobs. cmd/gridbench is a small CLI benchmark harness over all of
// the above.
package gridwfc
