package imageio_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilecollapse/gridwfc/grid"
	"github.com/tilecollapse/gridwfc/imageio"
)

func TestRenderPreview_PaintsOnePixelPerCellAtScaleOne(t *testing.T) {
	size := grid.Size{Width: 2, Height: 1}
	g := grid.NewGridMap2D[uint64](size)
	_ = g.Set(grid.Position{X: 0, Y: 0}, 1)
	_ = g.Set(grid.Position{X: 1, Y: 0}, 2)

	palette := map[uint64]color.Color{
		1: color.RGBA{R: 255, A: 255},
		2: color.RGBA{B: 255, A: 255},
	}

	img, err := imageio.RenderPreview(g, palette, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())

	r, _, _, _ := img.At(0, 0).RGBA()
	assert.NotZero(t, r)
	_, _, b, _ := img.At(1, 0).RGBA()
	assert.NotZero(t, b)
}

func TestRenderPreview_UpscalesByScaleFactor(t *testing.T) {
	size := grid.Size{Width: 2, Height: 2}
	g := grid.NewGridMap2D[uint64](size)
	for _, p := range g.Positions() {
		_ = g.Set(p, 1)
	}
	palette := map[uint64]color.Color{1: color.RGBA{G: 255, A: 255}}

	img, err := imageio.RenderPreview(g, palette, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
}

func TestRenderPreview_MissingPaletteEntryErrors(t *testing.T) {
	size := grid.Size{Width: 1, Height: 1}
	g := grid.NewGridMap2D[uint64](size)
	_ = g.Set(grid.Position{X: 0, Y: 0}, 99)

	_, err := imageio.RenderPreview(g, map[uint64]color.Color{}, 1)
	assert.ErrorIs(t, err, imageio.ErrUnknownTypeID)
}
