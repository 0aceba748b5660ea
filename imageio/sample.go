package imageio

import (
	"image"
	"image/png"
	"os"

	farm "github.com/dgryski/go-farm"

	"github.com/tilecollapse/gridwfc/grid"
)

// LoadSampleMap decodes the PNG at path and slices it into tileSize x
// tileSize pixel blocks, one per cell of the returned grid. Each
// block's type id is a farm.Hash64 digest of its raw RGBA bytes, so
// identical blocks anywhere in the sheet collapse to the same id.
//
// Returns ErrInvalidTileSize if tileSize <= 0, or ErrDimensionMismatch
// if the image's width or height is not an exact multiple of tileSize.
func LoadSampleMap(path string, tileSize int) (*grid.GridMap2D[*PixelTile], error) {
	if tileSize <= 0 {
		return nil, ErrInvalidTileSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	return decodeSampleMap(img, tileSize)
}

// decodeSampleMap is LoadSampleMap's pure counterpart, split out so
// tests can exercise the tiling logic against an in-memory image
// without touching the filesystem.
func decodeSampleMap(img image.Image, tileSize int) (*grid.GridMap2D[*PixelTile], error) {
	if tileSize <= 0 {
		return nil, ErrInvalidTileSize
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width%tileSize != 0 || height%tileSize != 0 {
		return nil, ErrDimensionMismatch
	}

	cols, rows := width/tileSize, height/tileSize
	size := grid.Size{Width: cols, Height: rows}
	g := grid.NewGridMap2D[*PixelTile](size)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			id := hashBlock(img, bounds.Min.X+col*tileSize, bounds.Min.Y+row*tileSize, tileSize)
			_ = g.Set(grid.Position{X: col, Y: row}, &PixelTile{id: id})
		}
	}
	return g, nil
}

// hashBlock packs the raw RGBA bytes of the tileSize x tileSize block
// rooted at (originX, originY) and digests them with farm.Hash64.
func hashBlock(img image.Image, originX, originY, tileSize int) uint64 {
	buf := make([]byte, 0, tileSize*tileSize*4)
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			r, g, b, a := img.At(originX+x, originY+y).RGBA()
			buf = append(buf, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}
	return farm.Hash64(buf)
}
