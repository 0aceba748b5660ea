package subscriber

import "github.com/tilecollapse/gridwfc/grid"

// History accumulates every collapse event from one generation into an
// indexed, randomly-accessible log, and supports replaying it either
// step by step or in a single pass onto a fresh grid.
type History struct {
	size        grid.Size
	events      []Event
	cursor      int
	finished    bool
	success     bool
	failureKind string
}

// NewHistory returns an empty History, ready to attach to a resolver run.
func NewHistory() *History {
	return &History{}
}

func (h *History) OnGenerationStart(size grid.Size) {
	h.size = size
	h.events = nil
	h.cursor = 0
	h.finished = false
	h.success = false
	h.failureKind = ""
}

func (h *History) OnCollapse(p grid.Position, tileTypeID uint64, iteration int) {
	h.events = append(h.events, Event{Position: p, TileTypeID: tileTypeID, Iteration: iteration})
}

func (h *History) OnGenerationEnd(success bool, kind string) {
	h.finished = true
	h.success = success
	h.failureKind = kind
}

// Len returns the number of recorded events.
func (h *History) Len() int { return len(h.events) }

// At returns the event recorded at index i.
func (h *History) At(i int) Event { return h.events[i] }

// Finished reports whether OnGenerationEnd has fired, and with what
// result.
func (h *History) Finished() (success, finished bool) { return h.success, h.finished }

// FailureKind reports the CollapseError kind that ended the run, or
// "" if the run succeeded or has not finished yet.
func (h *History) FailureKind() string { return h.failureKind }

// Rewind resets step-forward/step-backward playback to the start
// without discarding the recorded events.
func (h *History) Rewind() { h.cursor = 0 }

// StepForward advances the playback cursor by one event and returns it,
// or returns false once every event has been played.
func (h *History) StepForward() (Event, bool) {
	if h.cursor >= len(h.events) {
		return Event{}, false
	}
	e := h.events[h.cursor]
	h.cursor++
	return e, true
}

// StepBackward retreats the playback cursor by one event and returns
// the event it moves onto, or returns false if already at the start.
func (h *History) StepBackward() (Event, bool) {
	if h.cursor <= 0 {
		return Event{}, false
	}
	h.cursor--
	return h.events[h.cursor], true
}

// Replay folds every recorded event, in order, onto a fresh
// GridMap2D[uint64] keyed by tile type id — reproducing the final
// CollapsedGrid's type-id layout from the event log alone.
func (h *History) Replay() *grid.GridMap2D[uint64] {
	g := grid.NewGridMap2D[uint64](h.size)
	for _, e := range h.events {
		_ = g.Set(e.Position, e.TileTypeID)
	}
	return g
}
