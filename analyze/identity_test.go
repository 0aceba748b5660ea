package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilecollapse/gridwfc/analyze"
	"github.com/tilecollapse/gridwfc/grid"
)

type stubTile struct {
	id uint64
}

func (s stubTile) TypeID() uint64 { return s.id }

const (
	idA uint64 = iota + 1
	idB
	idC
)

// stripSample builds the 1x3 [A, B, C] sample used throughout this
// package's tests and in the three-tile strip scenario.
func stripSample() *grid.GridMap2D[stubTile] {
	g := grid.NewGridMap2D[stubTile](grid.Size{Width: 3, Height: 1})
	_ = g.Set(grid.Position{X: 0, Y: 0}, stubTile{id: idA})
	_ = g.Set(grid.Position{X: 1, Y: 0}, stubTile{id: idB})
	_ = g.Set(grid.Position{X: 2, Y: 0}, stubTile{id: idC})
	return g
}

func TestIdentity_NoSamples(t *testing.T) {
	_, err := analyze.Identity[stubTile](nil)
	assert.ErrorIs(t, err, analyze.ErrNoSamples)
}

func TestIdentity_ObservedAdjacenciesOnly(t *testing.T) {
	res, err := analyze.Identity([]*grid.GridMap2D[stubTile]{stripSample()})
	require.NoError(t, err)

	assert.True(t, res.Rules.IsPermitted(idA, grid.Right, idB))
	assert.True(t, res.Rules.IsPermitted(idB, grid.Left, idA))
	assert.True(t, res.Rules.IsPermitted(idB, grid.Right, idC))
	assert.True(t, res.Rules.IsPermitted(idC, grid.Left, idB))

	assert.False(t, res.Rules.IsPermitted(idA, grid.Right, idC), "A and C never touch in the sample")
}

func TestIdentity_FrequencyCounts(t *testing.T) {
	res, err := analyze.Identity([]*grid.GridMap2D[stubTile]{stripSample(), stripSample()})
	require.NoError(t, err)

	assert.Equal(t, float64(2), res.Frequencies.Weight(idA))
	assert.Equal(t, float64(2), res.Frequencies.Weight(idB))
	assert.Equal(t, float64(2), res.Frequencies.Weight(idC))
}
