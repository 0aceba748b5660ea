// Package resolver implements the collapse loop (C9): seeding a grid of
// collapsible cells, repeatedly popping the next position from a
// selection queue, committing a weighted-random choice, propagating the
// resulting constraint to neighbours, and replaying the outcome to an
// attached subscriber.
//
// A ConstraintModel abstracts "what are the possible ids and which
// neighbours does each permit": SingularModel adapts an
// AdjacencyRules table (the tile-level model), OverlappingModel adapts
// a pattern.Collection (the overlapping model), mapping a collapsed
// pattern id back to its primary cell's tile type id.
//
// The resolver owns one *rand.Rand per run; two runs built with the
// same model, size, and seed produce identical output. The resolver
// itself never retries — a caller observing a retryable CollapseError
// constructs a fresh Resolver with DeriveRNG(seed, attempt) and tries
// again.
package resolver
