package collapse

import (
	"math"
	"math/rand"
	"sort"
)

// noiseScale bounds the per-tile tie-breaking noise well below the gap
// between realistic entropy values, so it only ever discriminates
// between otherwise-equal cells.
const noiseScale = 1e-6

// WeightFunc looks up the selection weight of an option id; both
// rules-based and pattern-based resolvers supply this from their own
// frequency hints.
type WeightFunc func(id uint64) float64

// Tile is one cell's collapsible state: the set of option ids still
// possible, their cached entropy, and whichever id (if any) the cell
// has committed to.
type Tile struct {
	options   map[uint64]float64 // id -> weight, while uncollapsed
	chosen    uint64
	hasChosen bool

	weightSum          float64
	weightLogWeightSum float64
	noise              float64
}

// NewTile seeds a fresh Uncollapsed cell with the given candidate ids,
// weighted by weight. rng supplies the tie-breaking noise; passing the
// resolver's own RNG makes noise reproducible for a fixed seed.
func NewTile(ids []uint64, weight WeightFunc, rng *rand.Rand) *Tile {
	t := &Tile{
		options: make(map[uint64]float64, len(ids)),
		noise:   rng.Float64() * noiseScale,
	}
	for _, id := range ids {
		w := weight(id)
		t.options[id] = w
		t.weightSum += w
		t.weightLogWeightSum += w * math.Log(w)
	}
	return t
}

// State reports the cell's current lifecycle stage.
func (t *Tile) State() State {
	switch {
	case t.hasChosen:
		return Collapsed
	case len(t.options) == 0:
		return Failed
	default:
		return Uncollapsed
	}
}

// HasOptions reports whether the cell still has at least one option.
func (t *Tile) HasOptions() bool {
	return len(t.options) > 0
}

// NumOptions returns the number of options still possible.
func (t *Tile) NumOptions() int {
	return len(t.options)
}

// Options returns the still-possible option ids, ascending.
func (t *Tile) Options() []uint64 {
	out := make([]uint64, 0, len(t.options))
	for id := range t.options {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Entropy returns the cell's Shannon entropy over its remaining option
// weights, plus the tile's fixed tie-breaking noise:
//
//	H = log(W) - (1/W) * sum(w_i * log(w_i))
//
// Calling Entropy on a Failed cell (no options) returns negative
// infinity; callers must check HasOptions first.
func (t *Tile) Entropy() float64 {
	if t.weightSum <= 0 {
		return math.Inf(-1)
	}
	return math.Log(t.weightSum) - t.weightLogWeightSum/t.weightSum + t.noise
}

// RemoveOption discards id from the option set if present, updating the
// cached entropy sums incrementally, and reports whether it was
// present.
func (t *Tile) RemoveOption(id uint64) bool {
	w, ok := t.options[id]
	if !ok {
		return false
	}
	delete(t.options, id)
	t.weightSum -= w
	t.weightLogWeightSum -= w * math.Log(w)
	return true
}

// Collapse commits the cell to id, clearing the remaining options. The
// caller is responsible for having verified id was a member of the
// option set.
func (t *Tile) Collapse(id uint64) {
	t.chosen = id
	t.hasChosen = true
	t.options = map[uint64]float64{}
	t.weightSum = 0
	t.weightLogWeightSum = 0
}

// ChosenID returns the committed id and true, or zero and false if the
// cell has not yet collapsed.
func (t *Tile) ChosenID() (uint64, bool) {
	return t.chosen, t.hasChosen
}
