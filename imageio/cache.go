package imageio

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru"

	"github.com/tilecollapse/gridwfc/grid"
)

// SampleCache memoizes decoded sample maps by file path and
// modification time, so repeated benchmark runs over the same sample
// sheet skip re-decoding PNG bytes.
type SampleCache struct {
	cache *lru.Cache
}

// NewSampleCache returns a SampleCache holding up to size decoded
// sample maps.
func NewSampleCache(size int) (*SampleCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &SampleCache{cache: c}, nil
}

// Get returns the sample map decoded from path at tileSize, reusing a
// cached decode if path's modification time has not changed since it
// was cached.
func (c *SampleCache) Get(path string, tileSize int) (*grid.GridMap2D[*PixelTile], error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s@%d#%d", path, info.ModTime().UnixNano(), tileSize)

	if cached, ok := c.cache.Get(key); ok {
		return cached.(*grid.GridMap2D[*PixelTile]), nil
	}

	g, err := LoadSampleMap(path, tileSize)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, g)
	return g, nil
}
