// Package queue implements two strategies for deciding which
// uncollapsed position a resolver should collapse next.
//
// Both PositionQueue and EntropyQueue implement the Queue interface:
// Initialize seeds the queue from a GridView snapshot, Update is called
// whenever propagation changes a position's option set, PopNext returns
// the next position to collapse (skipping anything no longer
// Uncollapsed), and Len reports the queue's remaining size.
//
//   - PositionQueue walks every position in a fixed order determined by
//     a starting corner and a primary axis; propagation updates never
//     reorder it.
//   - EntropyQueue is a min-heap keyed by (entropy, position), using a
//     lazy decrease-key strategy: Update pushes a fresh entry rather
//     than mutating the heap in place, and stale entries are discarded
//     on pop via a per-position version counter.
package queue
