package resolver

import (
	"sort"

	"github.com/tilecollapse/gridwfc/frequency"
	"github.com/tilecollapse/gridwfc/grid"
	"github.com/tilecollapse/gridwfc/rules"
)

// SanityCheck reports ErrEmptyRules when the adjacency table has never
// recorded a single permitted pair: such a model can never place a
// second tile next to a first one.
func (m *SingularModel) SanityCheck() error {
	if m.rules.Empty() {
		return rules.ErrEmptyRules
	}
	return nil
}

// SingularModel adapts an AdjacencyRules table and frequency hints into
// a ConstraintModel over tile type ids directly.
type SingularModel struct {
	rules *rules.AdjacencyRules
	freq  *frequency.Hints
}

// NewSingularModel returns a ConstraintModel backed by r and freq.
func NewSingularModel(r *rules.AdjacencyRules, freq *frequency.Hints) *SingularModel {
	return &SingularModel{rules: r, freq: freq}
}

func (m *SingularModel) AllIDs() []uint64 {
	return m.freq.IDs()
}

func (m *SingularModel) Weight(id uint64) float64 {
	return m.freq.Weight(id)
}

func (m *SingularModel) PermittedNeighbors(ids []uint64, d grid.Direction) []uint64 {
	seen := make(map[uint64]struct{})
	var out []uint64
	for _, id := range ids {
		for _, target := range m.rules.Allowed(id, d) {
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

func (m *SingularModel) ResolveTileID(id uint64) uint64 {
	return id
}
