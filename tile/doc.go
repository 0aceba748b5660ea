// Package tile defines the tile-payload contracts every other gridwfc
// package depends on, plus a small id-keyed registry for them.
//
// What:
//
//   - TileData: marker for any value that can live inside a grid cell.
//   - IdentifiableTileData: a TileData exposing a stable TypeID() uint64.
//     Two instances sharing a TypeID are interchangeable for constraint
//     reasoning; identifiers are assigned by the caller (or by a
//     collaborator such as package imageio) and are never reused across
//     distinct tile types within one run.
//   - Collection[T]: an id<->data registry with O(1) lookups in both
//     directions, for callers that map a collapsed type id back to the
//     original sample payload. The analyzers and resolvers in this
//     module work on type ids alone and do not consult a Collection.
//
// Why:
//
//   - Keeping the payload contract to a single method lets the rest of
//     this module stay generic over whatever a caller's tile type looks
//     like (sprite reference, terrain enum, raw pixel block, ...).
package tile
