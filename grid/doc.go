// Package grid provides the rectangular lattice primitives shared by every
// other package in gridwfc: integer Position and Size, the four cardinal
// Directions, a fixed-size DirectionTable, and GridMap2D, a generic sparse
// grid of typed tile data.
//
// What:
//
//   - Position / Size: integer coordinates and extents, with bounds checks.
//   - Direction: the four cardinal neighbors, each with an Opposite and a Step.
//   - DirectionTable[T]: constant-time Direction -> T mapping.
//   - GridMap2D[T]: Position -> T sparse map bounded by a Size, deterministic
//     row-major iteration, no implicit default tile.
//
// Why:
//
//   - Every analyzer, pattern extractor, and resolver in this module walks
//     a rectangular lattice; centralizing the coordinate arithmetic here
//     keeps that logic in one place and keeps higher packages generic over
//     tile payload.
//
// Concurrency:
//
//   - GridMap2D is not safe for concurrent mutation. A gridwfc resolver owns
//     its working grid exclusively for the duration of one run (see package
//     resolver); nothing here takes a lock.
package grid
