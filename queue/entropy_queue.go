package queue

import (
	"container/heap"

	"github.com/tilecollapse/gridwfc/collapse"
	"github.com/tilecollapse/gridwfc/grid"
)

// EntropyQueue pops the lowest-entropy Uncollapsed position, re-keying
// on Update. It uses the same lazy decrease-key strategy as a
// Dijkstra-style shortest-path heap: Update pushes a fresh heap entry
// rather than mutating an existing one in place, and a per-position
// version counter lets PopNext recognize and discard stale entries
// left behind by an earlier, now-superseded push.
type EntropyQueue struct {
	items   entropyPQ
	version map[grid.Position]uint64
}

// NewEntropyQueue returns an empty EntropyQueue, ready for Initialize.
func NewEntropyQueue() *EntropyQueue {
	return &EntropyQueue{version: make(map[grid.Position]uint64)}
}

// Initialize seeds the heap with every Uncollapsed position in view,
// keyed by its current entropy.
func (q *EntropyQueue) Initialize(view GridView) {
	q.items = make(entropyPQ, 0, len(view.Positions()))
	q.version = make(map[grid.Position]uint64, len(view.Positions()))
	heap.Init(&q.items)

	for _, p := range view.Positions() {
		if view.State(p) == collapse.Uncollapsed {
			q.push(p, view.Entropy(p))
		}
	}
}

// Update re-keys p: if it is still Uncollapsed, a fresh entry reflecting
// its current entropy is pushed; otherwise any outstanding entry for p
// is invalidated so PopNext will skip it.
func (q *EntropyQueue) Update(p grid.Position, view GridView) {
	q.version[p]++
	if view.State(p) == collapse.Uncollapsed {
		heap.Push(&q.items, &entropyItem{pos: p, entropy: view.Entropy(p), version: q.version[p]})
	}
}

// push inserts a fresh, current-version entry for p.
func (q *EntropyQueue) push(p grid.Position, entropy float64) {
	q.version[p]++
	heap.Push(&q.items, &entropyItem{pos: p, entropy: entropy, version: q.version[p]})
}

// PopNext returns the lowest-entropy Uncollapsed position, discarding
// stale or now-collapsed entries along the way.
func (q *EntropyQueue) PopNext(view GridView) (grid.Position, bool) {
	for q.items.Len() > 0 {
		item := heap.Pop(&q.items).(*entropyItem)
		if item.version != q.version[item.pos] {
			continue // superseded by a later push or invalidated by Update
		}
		if view.State(item.pos) != collapse.Uncollapsed {
			continue
		}
		return item.pos, true
	}
	return grid.Position{}, false
}

// Len reports the number of entries still in the heap, including any
// stale ones not yet discarded.
func (q *EntropyQueue) Len() int {
	return q.items.Len()
}

// entropyItem is one heap entry: a position, the entropy it was pushed
// with, and the version it was current as of.
type entropyItem struct {
	pos     grid.Position
	entropy float64
	version uint64
}

// entropyPQ is a min-heap of *entropyItem ordered by entropy ascending,
// with Position.Less breaking exact ties deterministically.
type entropyPQ []*entropyItem

func (pq entropyPQ) Len() int { return len(pq) }

func (pq entropyPQ) Less(i, j int) bool {
	if pq[i].entropy != pq[j].entropy {
		return pq[i].entropy < pq[j].entropy
	}
	return pq[i].pos.Less(pq[j].pos)
}

func (pq entropyPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entropyPQ) Push(x interface{}) { *pq = append(*pq, x.(*entropyItem)) }

func (pq *entropyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
