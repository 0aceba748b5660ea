package randomwalk

import (
	"math/rand"

	"github.com/tilecollapse/gridwfc/grid"
)

// Generate carves a random-walk blob into a size x size grid, painting
// every cell with either the floor id (the carved path) or the wall
// id (untouched), and returns the completed grid. It never fails on
// the walk itself; it fails only on invalid options: ErrInvalidSteps
// for a non-positive step count, or grid.ErrOutOfBounds for a start
// position outside size.
//
// The walk loop is a plain iterative step-and-turn: no constraint
// propagation, no option sets, just an RNG-driven direction pick per
// step, in the same single-pass iterative shape as this module's other
// grid walkers, generalized from deterministic traversal order to a
// randomized one.
func Generate(size grid.Size, opts ...Option) (*grid.GridMap2D[uint64], error) {
	cfg := defaultConfig(size)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.steps <= 0 {
		return nil, ErrInvalidSteps
	}
	if !size.Contains(cfg.start) {
		return nil, grid.ErrOutOfBounds
	}

	out := grid.NewGridMap2D[uint64](size)
	for _, p := range out.Positions() {
		_ = out.Set(p, cfg.wallID)
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	for w := 0; w < cfg.walkers; w++ {
		walk(out, size, cfg, rng)
	}
	return out, nil
}

// walk carves one walker's path of cfg.steps cells starting at
// cfg.start, turning to a fresh random direction with probability
// cfg.windiness at each step (always turning when the previous
// direction would leave the grid).
func walk(out *grid.GridMap2D[uint64], size grid.Size, cfg config, rng *rand.Rand) {
	pos := cfg.start
	_ = out.Set(pos, cfg.floorID)

	dir := grid.Directions[rng.Intn(len(grid.Directions))]
	for step := 0; step < cfg.steps; step++ {
		if rng.Float64() < cfg.windiness {
			dir = grid.Directions[rng.Intn(len(grid.Directions))]
		}

		next, inBounds := dir.Step(pos, size)
		if !inBounds {
			turned := false
			for _, d := range grid.Directions {
				if np, ok := d.Step(pos, size); ok {
					dir, next, turned = d, np, true
					break
				}
			}
			if !turned {
				break
			}
		}

		pos = next
		_ = out.Set(pos, cfg.floorID)
	}
}
