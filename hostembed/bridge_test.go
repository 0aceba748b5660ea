package hostembed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilecollapse/gridwfc/frequency"
	"github.com/tilecollapse/gridwfc/grid"
	"github.com/tilecollapse/gridwfc/hostembed"
	"github.com/tilecollapse/gridwfc/resolver"
	"github.com/tilecollapse/gridwfc/rules"
)

const (
	idA uint64 = 1
	idB uint64 = 2
)

// permissiveModel allows every id adjacent to every id in every
// direction, so a resolver run never contradicts regardless of which
// cells are pre-collapsed.
func permissiveModel() *resolver.SingularModel {
	r := rules.New()
	freq := frequency.New()
	for _, id := range []uint64{idA, idB} {
		freq.Add(id, 1)
		for _, d := range grid.Directions {
			r.Add(id, d, idA)
			r.Add(id, d, idB)
		}
	}
	return resolver.NewSingularModel(r, freq)
}

func TestBridge_SeedRejectsOutOfBounds(t *testing.T) {
	b := hostembed.NewBridge(grid.Size{Width: 2, Height: 2}, permissiveModel())
	err := b.Seed(grid.Position{X: 5, Y: 5}, idA)
	require.ErrorIs(t, err, hostembed.ErrOutOfBounds)
}

func TestBridge_ConnectIslandsBridgesTwoSeedRegions(t *testing.T) {
	size := grid.Size{Width: 5, Height: 1}
	b := hostembed.NewBridge(size, permissiveModel())
	require.NoError(t, b.Seed(grid.Position{X: 0, Y: 0}, idA))
	require.NoError(t, b.Seed(grid.Position{X: 4, Y: 0}, idB))

	require.NoError(t, b.ConnectIslands())

	events, err := b.Generate(0, nil)
	require.NoError(t, err)
	assert.Equal(t, size.Area(), len(events))

	got := map[grid.Position]uint64{}
	for _, e := range events {
		got[e.Position] = e.TypeID
	}
	assert.Equal(t, idA, got[grid.Position{X: 0, Y: 0}])
	assert.Equal(t, idB, got[grid.Position{X: 4, Y: 0}])
}

func TestBridge_GenerateCoversEveryPositionExactlyOnce(t *testing.T) {
	size := grid.Size{Width: 3, Height: 3}
	b := hostembed.NewBridge(size, permissiveModel())
	require.NoError(t, b.Seed(grid.Position{X: 1, Y: 1}, idA))

	events, err := b.Generate(7, nil)
	require.NoError(t, err)
	require.Equal(t, size.Area(), len(events))

	seen := make(map[grid.Position]bool, len(events))
	for _, e := range events {
		assert.False(t, seen[e.Position], "position %s placed twice", e.Position)
		seen[e.Position] = true
	}
	assert.Len(t, seen, size.Area())
}
