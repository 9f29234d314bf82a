package scoring

import (
	"github.com/GoldenCoast-Capital/MarketScore/internal/dataset"
	"github.com/GoldenCoast-Capital/MarketScore/internal/finance"
)

// ScoredMarket is one market flowing through the pipeline: the raw row, its
// derived economics, and — after Apply — the normalized values and composite
// Master Score.
type ScoredMarket struct {
	dataset.Market
	finance.Economics

	// Normalized holds one [0,1] value per weighted metric. A metric that is
	// constant across the filtered set normalizes to 0 for every market.
	Normalized map[string]float64 `json:"normalized,omitempty"`

	// MasterScore is the weighted sum of directional normalized values.
	MasterScore float64 `json:"master_score"`
}

// Apply min-max normalizes every weighted metric across the set and
// accumulates the composite Master Score on each market. Cost-direction
// metrics contribute 1 - normalized. Weights keyed by unknown metric IDs
// are ignored. The whole computation is redone from scratch on every call:
// min/max depend on the filtered set, so no partial sums survive a pass.
func Apply(set []*ScoredMarket, weights Scheme) {
	for _, sm := range set {
		sm.Normalized = make(map[string]float64)
		sm.MasterScore = 0
	}

	// Catalog order keeps float accumulation deterministic across runs.
	for _, metric := range Catalog() {
		weight, ok := weights[metric.ID]
		if !ok {
			continue
		}

		var min, max float64
		for i, sm := range set {
			v := metric.Value(sm.Market, sm.Economics)
			if i == 0 || v < min {
				min = v
			}
			if i == 0 || v > max {
				max = v
			}
		}

		for _, sm := range set {
			var norm float64
			if max != min {
				norm = (metric.Value(sm.Market, sm.Economics) - min) / (max - min)
			}
			sm.Normalized[metric.ID] = norm

			directional := norm
			if metric.Direction == Cost {
				directional = 1 - norm
			}
			sm.MasterScore += weight * directional
		}
	}
}
