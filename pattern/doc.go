// Package pattern implements overlapping-model pattern extraction and
// pattern-to-pattern compatibility, the C5 component of the collapse
// pipeline.
//
// What:
//
//   - Extract slides a W x H window over one or more sample maps,
//     capturing the row-major tuple of type ids at every window
//     position where every cell is present. Distinct tuples are
//     deduplicated by a content hash into a Collection, which also
//     tracks an occurrence count per pattern.
//   - Compatible precomputes, for every pattern and direction, the
//     sorted list of pattern ids (its own id included, when it qualifies)
//     whose W x H window agrees with it on every overlapping cell after
//     a one-cell shift in that direction. This replaces per-propagation-step recomputation.
//
// Patterns are immutable once extracted; a Collection is built once and
// then shared read-only with resolver runs, mirroring the adjacency
// rules table's ownership model.
package pattern
