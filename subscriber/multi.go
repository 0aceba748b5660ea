package subscriber

import "github.com/tilecollapse/gridwfc/grid"

// Multi fans one event stream out to several subscribers, invoked in
// the order they were passed to NewMulti.
type Multi struct {
	subs []Subscriber
}

// NewMulti returns a Multi that forwards every event to each of subs.
func NewMulti(subs ...Subscriber) *Multi {
	return &Multi{subs: subs}
}

func (m *Multi) OnGenerationStart(size grid.Size) {
	for _, s := range m.subs {
		s.OnGenerationStart(size)
	}
}

func (m *Multi) OnCollapse(p grid.Position, tileTypeID uint64, iteration int) {
	for _, s := range m.subs {
		s.OnCollapse(p, tileTypeID, iteration)
	}
}

func (m *Multi) OnGenerationEnd(success bool, kind string) {
	for _, s := range m.subs {
		s.OnGenerationEnd(success, kind)
	}
}
