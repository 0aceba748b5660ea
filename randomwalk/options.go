package randomwalk

import "github.com/tilecollapse/gridwfc/grid"

// config holds a walk's tunables, built up by Option functions before
// Generate runs.
type config struct {
	seed      int64
	steps     int
	walkers   int
	start     grid.Position
	hasStart  bool
	floorID   uint64
	wallID    uint64
	windiness float64
}

// Option customizes a walk's configuration.
type Option func(*config)

// defaultConfig returns a single centered walker, 64 steps, floor id 1
// over wall id 0, with a mild preference for continuing straight.
func defaultConfig(size grid.Size) config {
	return config{
		seed:      0,
		steps:     64,
		walkers:   1,
		start:     grid.Position{X: size.Width / 2, Y: size.Height / 2},
		hasStart:  true,
		floorID:   1,
		wallID:    0,
		windiness: 0.5,
	}
}

// WithSeed sets the base RNG seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithSteps sets the number of steps each walker takes. A non-positive
// count is not rejected here, since Option application cannot itself
// fail; Generate returns ErrInvalidSteps for it instead.
func WithSteps(steps int) Option {
	return func(c *config) { c.steps = steps }
}

// WithWalkers sets how many independent walkers carve the grid,
// each starting from the same start position.
func WithWalkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.walkers = n
		}
	}
}

// WithStart overrides the walk's starting position (default: the
// grid's center).
func WithStart(p grid.Position) Option {
	return func(c *config) {
		c.start = p
		c.hasStart = true
	}
}

// WithTileIDs overrides the carved (floor) and uncarved (wall) type
// ids painted into the output grid.
func WithTileIDs(floorID, wallID uint64) Option {
	return func(c *config) {
		c.floorID = floorID
		c.wallID = wallID
	}
}

// WithWindiness sets the probability, in [0,1], that a step turns to a
// random new direction rather than continuing the previous one; 0
// always goes straight (until a wall forces a turn), 1 always picks a
// fresh random direction.
func WithWindiness(p float64) Option {
	return func(c *config) {
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		c.windiness = p
	}
}
