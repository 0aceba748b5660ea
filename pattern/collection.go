package pattern

import (
	"encoding/binary"
	"sort"

	"blainsmith.com/go/seahash"

	"github.com/tilecollapse/gridwfc/grid"
	"github.com/tilecollapse/gridwfc/tile"
)

// Collection is the set of distinct patterns observed across one or
// more sample maps, together with their occurrence counts and
// precomputed pairwise compatibility.
type Collection struct {
	w, h     int
	byID     map[uint64]*Pattern
	counts   map[uint64]float64
	compatOf map[uint64]grid.DirectionTable[[]uint64]
}

// Width and Height return the pattern window's fixed dimensions.
func (c *Collection) Width() int  { return c.w }
func (c *Collection) Height() int { return c.h }

// Get returns the pattern stored under id, if any.
func (c *Collection) Get(id uint64) (*Pattern, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// IDs returns every pattern id in the collection, ascending.
func (c *Collection) IDs() []uint64 {
	out := make([]uint64, 0, len(c.byID))
	for id := range c.byID {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of distinct patterns.
func (c *Collection) Len() int { return len(c.byID) }

// Count returns the number of times id was observed across the
// analyzed samples, the pattern collection's frequency hint.
func (c *Collection) Count(id uint64) float64 {
	return c.counts[id]
}

// Compatible returns the sorted ids of patterns permitted to sit one
// cell away from id in direction d, precomputed at extraction time.
func (c *Collection) Compatible(id uint64, d grid.Direction) []uint64 {
	table, ok := c.compatOf[id]
	if !ok {
		return nil
	}
	return table.Get(d)
}

// Extract slides a w x h window over every sample, in row-major order,
// capturing a pattern at each position where every cell is occupied. A
// window straddling a gap is silently skipped: the sample is treated
// as a partial record of a larger conceptual map, not a claim that the
// gap itself is a valid tile.
//
// Returns ErrInvalidDimensions if w or h is not positive, or
// ErrNoPatterns if no sample contained a single complete window.
func Extract[T tile.IdentifiableTileData](samples []*grid.GridMap2D[T], w, h int) (*Collection, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}

	c := &Collection{
		w:      w,
		h:      h,
		byID:   make(map[uint64]*Pattern),
		counts: make(map[uint64]float64),
	}

	for _, sample := range samples {
		extractSample(sample, w, h, c)
	}

	if len(c.byID) == 0 {
		return nil, ErrNoPatterns
	}

	c.precomputeCompatibility()
	return c, nil
}

// extractSample slides the window across one sample, row-major, folding
// every complete window into c.
func extractSample[T tile.IdentifiableTileData](sample *grid.GridMap2D[T], w, h int, c *Collection) {
	size := sample.Size()
	for originY := 0; originY+h <= size.Height; originY++ {
		for originX := 0; originX+w <= size.Width; originX++ {
			cells, ok := captureWindow(sample, originX, originY, w, h)
			if !ok {
				continue
			}
			id := contentHash(cells)
			if _, exists := c.byID[id]; !exists {
				c.byID[id] = &Pattern{ID: id, W: w, H: h, Cells: cells}
			}
			c.counts[id]++
		}
	}
}

// captureWindow reads the w x h window rooted at (originX, originY) in
// row-major order, returning ok=false if any cell in the window is
// unoccupied.
func captureWindow[T tile.IdentifiableTileData](sample *grid.GridMap2D[T], originX, originY, w, h int) ([]uint64, bool) {
	cells := make([]uint64, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tileData, ok := sample.Get(grid.Position{X: originX + x, Y: originY + y})
			if !ok {
				return nil, false
			}
			cells = append(cells, tileData.TypeID())
		}
	}
	return cells, true
}

// contentHash derives a stable pattern id from its row-major type-id
// tuple: each id contributes 8 little-endian bytes to the seahash input.
func contentHash(cells []uint64) uint64 {
	buf := make([]byte, 8*len(cells))
	for i, id := range cells {
		binary.LittleEndian.PutUint64(buf[i*8:], id)
	}
	return seahash.Sum64(buf)
}

// precomputeCompatibility fills compatOf for every pattern and
// direction, replacing per-propagation-step recomputation.
//
// Complexity: O(k^2 * w * h) where k is the number of distinct
// patterns; run once at extraction time.
func (c *Collection) precomputeCompatibility() {
	ids := c.IDs()
	c.compatOf = make(map[uint64]grid.DirectionTable[[]uint64], len(ids))

	for _, pid := range ids {
		p := c.byID[pid]
		var table grid.DirectionTable[[]uint64]
		for _, d := range grid.Directions {
			var matches []uint64
			for _, qid := range ids {
				q := c.byID[qid]
				if compatible(p, q, d) {
					matches = append(matches, qid)
				}
			}
			table.Set(d, matches)
		}
		c.compatOf[pid] = table
	}
}
