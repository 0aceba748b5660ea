package resolver

import (
	"sort"

	"github.com/tilecollapse/gridwfc/grid"
	"github.com/tilecollapse/gridwfc/pattern"
)

// OverlappingModel adapts a pattern.Collection into a ConstraintModel
// over pattern ids: neighbour permission comes from the collection's
// precomputed compatibility table, selection weight from occurrence
// counts, and a collapsed pattern id resolves to its primary cell's
// tile type id.
type OverlappingModel struct {
	patterns *pattern.Collection
}

// NewOverlappingModel returns a ConstraintModel backed by patterns.
func NewOverlappingModel(patterns *pattern.Collection) *OverlappingModel {
	return &OverlappingModel{patterns: patterns}
}

func (m *OverlappingModel) AllIDs() []uint64 {
	return m.patterns.IDs()
}

// MinSize reports the pattern window's dimensions: an output grid
// smaller than this in either axis can never host a full pattern.
func (m *OverlappingModel) MinSize() grid.Size {
	return grid.Size{Width: m.patterns.Width(), Height: m.patterns.Height()}
}

func (m *OverlappingModel) Weight(id uint64) float64 {
	if w := m.patterns.Count(id); w > 0 {
		return w
	}
	return 1
}

func (m *OverlappingModel) PermittedNeighbors(ids []uint64, d grid.Direction) []uint64 {
	seen := make(map[uint64]struct{})
	var out []uint64
	for _, id := range ids {
		for _, target := range m.patterns.Compatible(id, d) {
			if _, ok := seen[target]; ok {
				continue
			}
			seen[target] = struct{}{}
			out = append(out, target)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (m *OverlappingModel) ResolveTileID(id uint64) uint64 {
	p, ok := m.patterns.Get(id)
	if !ok {
		return 0
	}
	return p.PrimaryTypeID()
}
