package subscriber

import "github.com/tilecollapse/gridwfc/grid"

// Subscriber receives collapse events in commit order.
type Subscriber interface {
	// OnGenerationStart fires once, before any collapse, with the
	// target grid size.
	OnGenerationStart(size grid.Size)
	// OnCollapse fires once per committed collapse, in the order
	// collapses are committed.
	OnCollapse(p grid.Position, tileTypeID uint64, iteration int)
	// OnGenerationEnd fires once, after the loop exits, reporting
	// whether the run succeeded. kind is empty on success; on failure
	// it names the CollapseError kind that ended the run ("NoOptions",
	// "Unreachable").
	OnGenerationEnd(success bool, kind string)
}

// NoOp discards every event; the zero value is ready to use.
type NoOp struct{}

func (NoOp) OnGenerationStart(grid.Size)           {}
func (NoOp) OnCollapse(grid.Position, uint64, int) {}
func (NoOp) OnGenerationEnd(bool, string)           {}

// Event is one recorded collapse.
type Event struct {
	Position   grid.Position
	TileTypeID uint64
	Iteration  int
}
