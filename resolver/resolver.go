package resolver

import (
	"sort"

	"github.com/tilecollapse/gridwfc/collapse"
	"github.com/tilecollapse/gridwfc/grid"
)

// Resolver runs a single collapse to completion. It owns one RNG stream
// for its lifetime; construct a fresh Resolver (with DeriveRNG-derived
// seeding if desired) for a retry.
type Resolver struct {
	model ConstraintModel
	size  grid.Size
	cfg   config
}

// New validates model and size and returns a Resolver ready for
// Resolve. Returns a ConfigurationError if the model has no known ids.
func New(model ConstraintModel, size grid.Size, opts ...Option) (*Resolver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(model.AllIDs()) == 0 {
		return nil, &ConfigurationError{Err: ErrEmptyDomain}
	}
	if sc, ok := model.(sanityChecked); ok {
		if err := sc.SanityCheck(); err != nil {
			return nil, &CollapseError{Retryable: false, Kind: Unreachable}
		}
	}
	if ms, ok := model.(minSized); ok {
		minSize := ms.MinSize()
		if size.Width < minSize.Width || size.Height < minSize.Height {
			return nil, &ConfigurationError{Err: ErrGridTooSmall}
		}
	}
	known := make(map[uint64]struct{}, len(model.AllIDs()))
	for _, id := range model.AllIDs() {
		known[id] = struct{}{}
	}
	for p, id := range cfg.preCollapsed {
		if !size.Contains(p) {
			return nil, &ConfigurationError{Err: grid.ErrOutOfBounds}
		}
		if _, ok := known[id]; !ok {
			return nil, &ConfigurationError{Err: ErrUnknownPreCollapsedID}
		}
	}
	return &Resolver{model: model, size: size, cfg: cfg}, nil
}

// Resolve seeds the grid, applies any pre-collapsed cells, then runs
// the collapse loop: pop a position, commit a weighted choice,
// propagate, repeat until the queue is empty. Returns a grid of tile
// type ids, or a CollapseError at the first contradiction.
func (r *Resolver) Resolve() (*grid.GridMap2D[uint64], error) {
	rng := rngFromSeed(r.cfg.seed)
	allIDs := r.model.AllIDs()

	tiles := grid.NewGridMap2D[*collapse.Tile](r.size)
	for _, p := range tiles.Positions() {
		_ = tiles.Set(p, collapse.NewTile(allIDs, r.model.Weight, rng))
	}

	r.cfg.subscriber.OnGenerationStart(r.size)

	iteration := 0
	if err := r.seedPreCollapsed(tiles, &iteration); err != nil {
		r.cfg.subscriber.OnGenerationEnd(false, kindLabel(err))
		return nil, err
	}

	view := &gridView{tiles: tiles}
	r.cfg.queue.Initialize(view)

	for r.cfg.queue.Len() > 0 {
		p, ok := r.cfg.queue.PopNext(view)
		if !ok {
			break
		}
		t, _ := tiles.Get(p)
		if t.State() != collapse.Uncollapsed {
			continue
		}
		if !t.HasOptions() {
			err := &CollapseError{Position: p, Iteration: iteration, Retryable: true, Kind: NoOptions}
			r.cfg.subscriber.OnGenerationEnd(false, err.Kind.String())
			return nil, err
		}

		chosen := weightedChoice(t.Options(), r.model.Weight, rng)
		t.Collapse(chosen)
		r.cfg.subscriber.OnCollapse(p, r.model.ResolveTileID(chosen), iteration)
		iteration++

		changed, err := r.propagate(tiles, []grid.Position{p}, &iteration)
		if err != nil {
			r.cfg.subscriber.OnGenerationEnd(false, kindLabel(err))
			return nil, err
		}
		for _, np := range changed {
			r.cfg.queue.Update(np, view)
		}
	}

	result, err := r.buildResult(tiles, iteration)
	if err != nil {
		r.cfg.subscriber.OnGenerationEnd(false, kindLabel(err))
		return nil, err
	}
	r.cfg.subscriber.OnGenerationEnd(true, "")
	return result, nil
}

// seedPreCollapsed commits every caller-supplied pre-collapsed cell, in
// position order for determinism, and propagates their constraints
// before the main loop starts.
func (r *Resolver) seedPreCollapsed(tiles *grid.GridMap2D[*collapse.Tile], iteration *int) error {
	if len(r.cfg.preCollapsed) == 0 {
		return nil
	}

	positions := make([]grid.Position, 0, len(r.cfg.preCollapsed))
	for p := range r.cfg.preCollapsed {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })

	for _, p := range positions {
		id := r.cfg.preCollapsed[p]
		t, _ := tiles.Get(p)
		t.Collapse(id)
		r.cfg.subscriber.OnCollapse(p, r.model.ResolveTileID(id), *iteration)
		*iteration++
	}

	_, err := r.propagate(tiles, positions, iteration)
	return err
}

// buildResult reads every cell's chosen id into a CollapsedGrid. A
// cell left without a chosen id here means the queue emptied before
// every position collapsed, a contradiction the loop did not already
// surface.
func (r *Resolver) buildResult(tiles *grid.GridMap2D[*collapse.Tile], iteration int) (*grid.GridMap2D[uint64], error) {
	result := grid.NewGridMap2D[uint64](r.size)
	for _, p := range tiles.Positions() {
		t, _ := tiles.Get(p)
		id, ok := t.ChosenID()
		if !ok {
			return nil, &CollapseError{Position: p, Iteration: iteration, Retryable: true, Kind: NoOptions}
		}
		_ = result.Set(p, r.model.ResolveTileID(id))
	}
	return result, nil
}
