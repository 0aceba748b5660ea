package pattern

import "github.com/tilecollapse/gridwfc/grid"

// Pattern is a fixed W x H window of type identifiers captured in
// row-major order, keyed by a content-derived id.
type Pattern struct {
	ID    uint64
	W, H  int
	Cells []uint64 // len == W*H, row-major
}

// at returns the type id at local coordinate (x, y) within the pattern.
func (p *Pattern) at(x, y int) uint64 {
	return p.Cells[y*p.W+x]
}

// PrimaryTypeID returns the type id of the pattern's origin cell
// (top-left, local (0,0)), the id recorded into a CollapsedGrid once a
// position collapses to this pattern.
func (p *Pattern) PrimaryTypeID() uint64 {
	return p.Cells[0]
}

// compatible reports whether q may sit one cell away from p in
// direction d: shifting q's W x H window by d's unit offset from p's
// origin, every cell position the two windows overlap on must carry
// the same type id in both.
//
// A shift whose offset lies outside both patterns' extents (e.g. a
// width-1 pattern shifted sideways) has an empty overlap region and is
// vacuously compatible; patterns intended to constrain a given axis
// must have extent greater than one cell along that axis.
func compatible(p, q *Pattern, d grid.Direction) bool {
	off := d.Offset()
	dx, dy := off.X, off.Y

	for yp := 0; yp < p.H; yp++ {
		yq := yp - dy
		if yq < 0 || yq >= q.H {
			continue
		}
		for xp := 0; xp < p.W; xp++ {
			xq := xp - dx
			if xq < 0 || xq >= q.W {
				continue
			}
			if p.at(xp, yp) != q.at(xq, yq) {
				return false
			}
		}
	}
	return true
}
