package imageio

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/tilecollapse/gridwfc/grid"
)

// RenderPreview paints one scale x scale block per cell of g, looking
// up each cell's color in palette, and returns the resulting image. A
// scale of 1 renders one pixel per cell directly; a larger scale
// upscales with nearest-neighbor so tile boundaries stay crisp.
//
// Returns ErrUnknownTypeID if a cell's type id has no palette entry.
func RenderPreview(g *grid.GridMap2D[uint64], palette map[uint64]color.Color, scale int) (image.Image, error) {
	if scale <= 0 {
		scale = 1
	}
	size := g.Size()

	base := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	for _, p := range g.Positions() {
		id, _ := g.Get(p)
		col, ok := palette[id]
		if !ok {
			return nil, ErrUnknownTypeID
		}
		base.Set(p.X, p.Y, col)
	}
	if scale == 1 {
		return base, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, size.Width*scale, size.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Over, nil)
	return dst, nil
}
