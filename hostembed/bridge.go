package hostembed

import (
	"sort"

	"github.com/tilecollapse/gridwfc/grid"
	"github.com/tilecollapse/gridwfc/queue"
	"github.com/tilecollapse/gridwfc/resolver"
	"github.com/tilecollapse/gridwfc/subscriber"
)

// PlacementEvent is one (position, type id) pair in the order a
// resolver committed it, the replay unit a host tile-map consumes.
type PlacementEvent struct {
	Position grid.Position
	TypeID   uint64
}

// Bridge accumulates a host-supplied sparse seed map, optionally
// bridges disconnected seed regions, and drives a resolver run to
// completion on the host's behalf.
type Bridge struct {
	size  grid.Size
	model resolver.ConstraintModel
	seeds map[grid.Position]uint64
}

// NewBridge returns an empty Bridge over a grid of size, whose cells
// resolve against model.
func NewBridge(size grid.Size, model resolver.ConstraintModel) *Bridge {
	return &Bridge{size: size, model: model, seeds: make(map[grid.Position]uint64)}
}

// Seed marks pos as pre-collapsed to typeID. Returns ErrOutOfBounds if
// pos lies outside the bridge's grid.
func (b *Bridge) Seed(pos grid.Position, typeID uint64) error {
	if !b.size.Contains(pos) {
		return ErrOutOfBounds
	}
	b.seeds[pos] = typeID
	return nil
}

// ConnectIslands finds the maximal 4-adjacent regions among the seeded
// positions and, while more than one remains, bridges the first two
// (regions ordered by their smallest position, as sortGroups arranges
// them) with a 0-1 BFS path across the grid (cost 0 through any already
// seeded cell, cost 1 through any other). Every unseeded cell on a
// bridging path is seeded with the type id of its nearer endpoint's
// region, splitting the path at its midpoint.
//
// A Bridge with zero or one seed region is left untouched; calling
// ConnectIslands is optional and Generate works correctly without it.
func (b *Bridge) ConnectIslands() error {
	for {
		groups := components(b.seeds)
		if len(groups) <= 1 {
			return nil
		}
		sortGroups(groups)

		path, err := bridgePath(b.size, b.seeds, groups[0], groups[1])
		if err != nil {
			return err
		}

		srcID := b.seeds[groups[0][0]]
		dstID := b.seeds[groups[1][0]]
		mid := len(path) / 2
		for i, p := range path {
			if _, already := b.seeds[p]; already {
				continue
			}
			id := srcID
			if i >= mid {
				id = dstID
			}
			b.seeds[p] = id
		}
	}
}

// sortGroups orders groups by their lexicographically-smallest
// position, and each group's members by position, so ConnectIslands
// picks the same pair of regions to bridge first run after run.
func sortGroups(groups [][]grid.Position) {
	for _, g := range groups {
		sort.Slice(g, func(i, j int) bool { return g[i].Less(g[j]) })
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0].Less(groups[j][0]) })
}

// Generate seeds a resolver with every accumulated position, runs it
// to completion, and returns the ordered placement events a host can
// replay. seed selects the deterministic RNG stream; q selects the
// selection queue strategy (defaults to a row-wise PositionQueue when
// nil).
func (b *Bridge) Generate(seed int64, q queue.Queue) ([]PlacementEvent, error) {
	history := subscriber.NewHistory()

	opts := []resolver.Option{
		resolver.WithSeed(seed),
		resolver.WithSubscriber(history),
	}
	if q != nil {
		opts = append(opts, resolver.WithQueue(q))
	}

	positions := make([]grid.Position, 0, len(b.seeds))
	for p := range b.seeds {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })
	for _, p := range positions {
		opts = append(opts, resolver.WithPreCollapsed(p, b.seeds[p]))
	}

	r, err := resolver.New(b.model, b.size, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := r.Resolve(); err != nil {
		return nil, err
	}

	events := make([]PlacementEvent, history.Len())
	for i := 0; i < history.Len(); i++ {
		e := history.At(i)
		events[i] = PlacementEvent{Position: e.Position, TypeID: e.TileTypeID}
	}
	return events, nil
}
