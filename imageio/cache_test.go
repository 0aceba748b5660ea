package imageio_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecollapse/gridwfc/imageio"
)

func writeTempPNG(t *testing.T, cols, rows, tileSize int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, cols*tileSize, rows*tileSize))
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestSampleCache_ReusesDecodeForUnchangedFile(t *testing.T) {
	path := writeTempPNG(t, 2, 2, 2)
	cache, err := imageio.NewSampleCache(4)
	require.NoError(t, err)

	first, err := cache.Get(path, 2)
	require.NoError(t, err)
	second, err := cache.Get(path, 2)
	require.NoError(t, err)

	require.Same(t, first, second, "unchanged file should hit the cache, not re-decode")
}

func TestSampleCache_LoadsDistinctSheets(t *testing.T) {
	pathA := writeTempPNG(t, 2, 2, 2)
	pathB := writeTempPNG(t, 2, 2, 2)
	cache, err := imageio.NewSampleCache(4)
	require.NoError(t, err)

	a, err := cache.Get(pathA, 2)
	require.NoError(t, err)
	b, err := cache.Get(pathB, 2)
	require.NoError(t, err)

	require.NotSame(t, a, b)
}
