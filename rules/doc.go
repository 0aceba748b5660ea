// Package rules implements AdjacencyRules: a table of
// (source type id, direction) -> permitted target type ids, the
// constraint table produced by the single-tile analyzers (package
// analyze) and consumed by the singular resolver (package resolver).
//
// What:
//
//   - Add records one permitted (source, direction, target) triple.
//   - Allowed/IsPermitted query the table.
//   - Close() performs the symmetry closure pass: for every recorded
//     rule (a, d, b) it inserts the inverse (b, opposite(d), a), so a
//     rule set built by only walking "forward" still ends up symmetric
//     (if b may sit right of a, a may sit left of b).
//
// Complexity:
//
//   - Add, IsPermitted: O(1) amortized.
//   - Allowed: O(k log k) where k is the number of permitted targets
//     (the result is sorted).
//   - Close: O(R) where R is the number of recorded rules.
package rules
