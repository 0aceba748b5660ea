package resolver

import "math/rand"

// weightedChoice draws one id from ids, weighted by weight, using rng.
// ids must be non-empty; every weight is assumed strictly positive
// (frequency.Hints and pattern.Collection both guarantee this).
func weightedChoice(ids []uint64, weight func(uint64) float64, rng *rand.Rand) uint64 {
	var total float64
	for _, id := range ids {
		total += weight(id)
	}
	target := rng.Float64() * total
	for _, id := range ids {
		w := weight(id)
		if target < w {
			return id
		}
		target -= w
	}
	return ids[len(ids)-1]
}
