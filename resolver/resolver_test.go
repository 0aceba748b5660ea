package resolver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilecollapse/gridwfc/analyze"
	"github.com/tilecollapse/gridwfc/frequency"
	"github.com/tilecollapse/gridwfc/grid"
	"github.com/tilecollapse/gridwfc/pattern"
	"github.com/tilecollapse/gridwfc/queue"
	"github.com/tilecollapse/gridwfc/resolver"
	"github.com/tilecollapse/gridwfc/rules"
)

type stubTile struct{ id uint64 }

func (s stubTile) TypeID() uint64 { return s.id }

const (
	idA uint64 = 1
	idB uint64 = 2
)

// twoByTwoCheckerboard builds a minimal [[A,B],[B,A]] alternating sample.
func twoByTwoCheckerboard() *grid.GridMap2D[stubTile] {
	g := grid.NewGridMap2D[stubTile](grid.Size{Width: 2, Height: 2})
	_ = g.Set(grid.Position{X: 0, Y: 0}, stubTile{idA})
	_ = g.Set(grid.Position{X: 1, Y: 0}, stubTile{idB})
	_ = g.Set(grid.Position{X: 0, Y: 1}, stubTile{idB})
	_ = g.Set(grid.Position{X: 1, Y: 1}, stubTile{idA})
	return g
}

// fourByFourCheckerboard builds the larger checkerboard used for the
// overlapping round-trip test.
func fourByFourCheckerboard() *grid.GridMap2D[stubTile] {
	g := grid.NewGridMap2D[stubTile](grid.Size{Width: 4, Height: 4})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			id := idA
			if (x+y)%2 == 1 {
				id = idB
			}
			_ = g.Set(grid.Position{X: x, Y: y}, stubTile{id})
		}
	}
	return g
}

func singularModelFrom(t *testing.T, sample *grid.GridMap2D[stubTile]) *resolver.SingularModel {
	t.Helper()
	res, err := analyze.Identity([]*grid.GridMap2D[stubTile]{sample})
	require.NoError(t, err)
	return resolver.NewSingularModel(res.Rules, res.Frequencies)
}

// TestResolver_TrivialIdentityIsDeterministic checks that seed 0 with a
// rowwise PositionQueue starting at (0,0) is deterministic across
// repeated runs.
func TestResolver_TrivialIdentityIsDeterministic(t *testing.T) {
	model := singularModelFrom(t, twoByTwoCheckerboard())
	size := grid.Size{Width: 2, Height: 2}

	r1, err := resolver.New(model, size, resolver.WithSeed(0))
	require.NoError(t, err)
	out1, err := r1.Resolve()
	require.NoError(t, err)

	r2, err := resolver.New(model, size, resolver.WithSeed(0))
	require.NoError(t, err)
	out2, err := r2.Resolve()
	require.NoError(t, err)

	if diff := cmp.Diff(snapshot(out1), snapshot(out2)); diff != "" {
		t.Fatalf("identical-seed runs diverged (-run1 +run2):\n%s", diff)
	}
}

// snapshot flattens a resolved grid into a plain map for comparison,
// since GridMap2D itself carries unexported fields.
func snapshot(g *grid.GridMap2D[uint64]) map[grid.Position]uint64 {
	out := make(map[grid.Position]uint64, len(g.Positions()))
	for _, p := range g.Positions() {
		v, _ := g.Get(p)
		out[p] = v
	}
	return out
}

// TestResolver_OutputSatisfiesAdjacencyRules checks that every adjacent
// pair in the output satisfies the singular adjacency rules.
func TestResolver_OutputSatisfiesAdjacencyRules(t *testing.T) {
	sample := twoByTwoCheckerboard()
	res, err := analyze.Identity([]*grid.GridMap2D[stubTile]{sample})
	require.NoError(t, err)
	model := resolver.NewSingularModel(res.Rules, res.Frequencies)
	size := grid.Size{Width: 2, Height: 2}

	r, err := resolver.New(model, size, resolver.WithSeed(0))
	require.NoError(t, err)
	out, err := r.Resolve()
	require.NoError(t, err)

	for _, p := range out.Positions() {
		pid, _ := out.Get(p)
		for _, d := range grid.Directions {
			np, ok := d.Step(p, size)
			if !ok {
				continue
			}
			nid, _ := out.Get(np)
			assert.Truef(t, res.Rules.IsPermitted(pid, d, nid),
				"output %s=%d is not permitted adjacent to %s=%d in direction %s", p, pid, np, nid, d)
		}
	}
}

// TestResolver_UnsatisfiablePreCollapseFailsPropagation checks that,
// when rules forbid A left-of A, pre-collapsing two adjacent cells to
// A surfaces a retryable NoOptions CollapseError from the initial
// propagation.
func TestResolver_UnsatisfiablePreCollapseFailsPropagation(t *testing.T) {
	r := rules.New()
	r.Add(idA, grid.Right, idB)
	r.Add(idB, grid.Left, idA)
	r.Close()
	freq := frequency.New()
	freq.Add(idA, 1)
	freq.Add(idB, 1)
	model := resolver.NewSingularModel(r, freq)

	size := grid.Size{Width: 2, Height: 1}
	res, err := resolver.New(model, size,
		resolver.WithSeed(0),
		resolver.WithPreCollapsed(grid.Position{X: 0, Y: 0}, idA),
		resolver.WithPreCollapsed(grid.Position{X: 1, Y: 0}, idA),
	)
	require.NoError(t, err)

	_, err = res.Resolve()
	require.Error(t, err)
	var collapseErr *resolver.CollapseError
	require.ErrorAs(t, err, &collapseErr)
	assert.True(t, collapseErr.Retryable)
	assert.Equal(t, resolver.NoOptions, collapseErr.Kind)
}

// TestResolver_PreCollapsedCellsArePreserved checks that cells supplied
// as pre-collapsed retain their given type id in the output.
func TestResolver_PreCollapsedCellsArePreserved(t *testing.T) {
	model := singularModelFrom(t, twoByTwoCheckerboard())
	size := grid.Size{Width: 2, Height: 2}

	r, err := resolver.New(model, size,
		resolver.WithSeed(0),
		resolver.WithPreCollapsed(grid.Position{X: 0, Y: 0}, idB),
	)
	require.NoError(t, err)
	out, err := r.Resolve()
	require.NoError(t, err)

	got, ok := out.Get(grid.Position{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, idB, got)
}

// TestResolver_OverlappingRoundTrip checks that a pattern collection
// extracted from the 4x4 checkerboard, pre-collapsed at every cell to
// reproduce the same checkerboard, does not report a contradiction.
func TestResolver_OverlappingRoundTrip(t *testing.T) {
	sample := fourByFourCheckerboard()
	patterns, err := pattern.Extract([]*grid.GridMap2D[stubTile]{sample}, 2, 2)
	require.NoError(t, err)
	model := resolver.NewOverlappingModel(patterns)
	size := grid.Size{Width: 4, Height: 4}

	patternIDFor := func(x, y int) uint64 {
		want := idA
		if (x+y)%2 == 1 {
			want = idB
		}
		for _, id := range patterns.IDs() {
			p, _ := patterns.Get(id)
			if p.PrimaryTypeID() == want {
				return id
			}
		}
		t.Fatalf("no pattern with primary type id %d", want)
		return 0
	}

	opts := []resolver.Option{resolver.WithSeed(0), resolver.WithQueue(queue.NewEntropyQueue())}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			opts = append(opts, resolver.WithPreCollapsed(grid.Position{X: x, Y: y}, patternIDFor(x, y)))
		}
	}

	r, err := resolver.New(model, size, opts...)
	require.NoError(t, err)
	out, err := r.Resolve()
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := idA
			if (x+y)%2 == 1 {
				want = idB
			}
			got, _ := out.Get(grid.Position{X: x, Y: y})
			assert.Equalf(t, want, got, "mismatch at (%d,%d)", x, y)
		}
	}
}

// TestResolver_WeightedChoiceConvergesToWeights checks that, over many
// 1x1 runs, the empirical frequency of each option converges to
// w_i / sum(w).
func TestResolver_WeightedChoiceConvergesToWeights(t *testing.T) {
	freq := frequency.New()
	freq.Add(idA, 3)
	freq.Add(idB, 1)
	r := rules.New()
	r.Add(idA, grid.Right, idA) // keeps the sanity check satisfied; a 1x1 grid has no neighbours to consult it
	model := resolver.NewSingularModel(r, freq)
	size := grid.Size{Width: 1, Height: 1}

	const runs = 2000
	counts := map[uint64]int{}
	for attempt := uint64(0); attempt < runs; attempt++ {
		res, err := resolver.New(model, size, resolver.WithSeed(int64(attempt)+1))
		require.NoError(t, err)
		out, err := res.Resolve()
		require.NoError(t, err)
		id, _ := out.Get(grid.Position{X: 0, Y: 0})
		counts[id]++
	}

	freqA := float64(counts[idA]) / float64(runs)
	freqB := float64(counts[idB]) / float64(runs)
	assert.InDelta(t, 0.75, freqA, 0.08)
	assert.InDelta(t, 0.25, freqB, 0.08)
}

// ConfigurationError paths.
func TestResolver_NewRejectsEmptyDomain(t *testing.T) {
	freq := frequency.New()
	r := rules.New()
	model := resolver.NewSingularModel(r, freq)
	size := grid.Size{Width: 1, Height: 1}

	_, err := resolver.New(model, size)
	require.Error(t, err)
	var cfgErr *resolver.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, cfgErr, resolver.ErrEmptyDomain)
}

func TestResolver_NewRejectsOutOfBoundsPreCollapsed(t *testing.T) {
	model := singularModelFrom(t, twoByTwoCheckerboard())
	size := grid.Size{Width: 2, Height: 2}

	_, err := resolver.New(model, size, resolver.WithPreCollapsed(grid.Position{X: 5, Y: 5}, idA))
	require.Error(t, err)
	var cfgErr *resolver.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, cfgErr, grid.ErrOutOfBounds)
}

// CollapseError{retryable=false, kind=Unreachable}: an empty rule table
// can never place a second tile, a sanity check should catch before a
// run even starts.
func TestResolver_NewRejectsEmptyRuleTable(t *testing.T) {
	freq := frequency.New()
	freq.Add(idA, 1)
	r := rules.New()
	model := resolver.NewSingularModel(r, freq)
	size := grid.Size{Width: 2, Height: 1}

	_, err := resolver.New(model, size)
	require.Error(t, err)
	var collapseErr *resolver.CollapseError
	require.ErrorAs(t, err, &collapseErr)
	assert.False(t, collapseErr.Retryable)
	assert.Equal(t, resolver.Unreachable, collapseErr.Kind)
}

func TestResolver_NewRejectsUnknownPreCollapsedID(t *testing.T) {
	model := singularModelFrom(t, twoByTwoCheckerboard())
	size := grid.Size{Width: 2, Height: 2}

	const unknownID uint64 = 99
	_, err := resolver.New(model, size, resolver.WithPreCollapsed(grid.Position{X: 0, Y: 0}, unknownID))
	require.Error(t, err)
	var cfgErr *resolver.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, cfgErr, resolver.ErrUnknownPreCollapsedID)
}

func TestResolver_NewRejectsGridSmallerThanPatternWindow(t *testing.T) {
	sample := fourByFourCheckerboard()
	patterns, err := pattern.Extract([]*grid.GridMap2D[stubTile]{sample}, 2, 2)
	require.NoError(t, err)
	model := resolver.NewOverlappingModel(patterns)

	_, err = resolver.New(model, grid.Size{Width: 1, Height: 1})
	require.Error(t, err)
	var cfgErr *resolver.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, cfgErr, resolver.ErrGridTooSmall)
}
