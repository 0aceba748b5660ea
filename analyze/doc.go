// Package analyze implements two single-tile constraint analyzers,
// Identity and Border, that derive AdjacencyRules from sample maps.
//
// What:
//
//   - Identity scans every adjacent pair (p, q) across one or more
//     sample maps and records the observed (id(p), direction) -> id(q)
//     relationship. The resulting AdjacencyRules contain exactly the
//     observed neighborhoods, nothing more.
//   - Border first runs Identity, then partitions each tile type's
//     per-direction neighbor set into a "border signature": any two
//     tile types sharing a signature in opposite directions are
//     considered interchangeable borders of each other, and the
//     transitive closure of that relation is folded back into the rule
//     table. Border's output is always a superset of Identity's.
//   - Both analyzers also accumulate per-type occurrence counts across
//     every sample into a frequency.Hints, summed across samples.
//
// Errors:
//
//   - ErrNoSamples: the sample set is empty (a ConfigurationError:
//     fatal, not retryable).
//
// Complexity:
//
//   - Identity: O(n) per sample, n = occupied cells, 4 directions each.
//   - Border: O(n) for the identity pass plus O(k^2) worklist fix-point
//     iterations over k = number of distinct tile types observed.
package analyze
