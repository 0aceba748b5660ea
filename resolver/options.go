package resolver

import (
	"github.com/tilecollapse/gridwfc/grid"
	"github.com/tilecollapse/gridwfc/queue"
	"github.com/tilecollapse/gridwfc/subscriber"
)

// config holds a Resolver's tunables, built up by Option functions
// before a run starts.
type config struct {
	seed         int64
	queue        queue.Queue
	subscriber   subscriber.Subscriber
	preCollapsed map[grid.Position]uint64
}

// Option customizes a Resolver's configuration. Constructors validate
// and panic on meaningless input (a nil queue or subscriber); the
// collapse loop itself never panics.
type Option func(*config)

// defaultConfig returns a PositionQueue-driven, seed-0, silent
// configuration.
func defaultConfig() config {
	return config{
		seed:         0,
		queue:        queue.NewPositionQueue(queue.TopLeft, queue.RowWise),
		subscriber:   subscriber.NoOp{},
		preCollapsed: map[grid.Position]uint64{},
	}
}

// WithSeed sets the base RNG seed; seed 0 still yields a deterministic
// (not zero-valued) stream.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithQueue overrides the selection queue. Panics on nil.
func WithQueue(q queue.Queue) Option {
	if q == nil {
		panic("resolver: WithQueue(nil)")
	}
	return func(c *config) {
		c.queue = q
	}
}

// WithSubscriber attaches a Subscriber to observe every collapse.
// Panics on nil; pass subscriber.NoOp{} explicitly to silence events.
func WithSubscriber(s subscriber.Subscriber) Option {
	if s == nil {
		panic("resolver: WithSubscriber(nil)")
	}
	return func(c *config) {
		c.subscriber = s
	}
}

// WithPreCollapsed marks p as collapsed to id before the main loop
// starts, propagating its constraint to neighbours first. May be passed
// more than once to seed several cells.
func WithPreCollapsed(p grid.Position, id uint64) Option {
	return func(c *config) {
		c.preCollapsed[p] = id
	}
}
