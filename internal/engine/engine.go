// Package engine runs the full scoring pipeline: derive economics, filter by
// capital, normalize and score, rank. Every call is a complete stateless
// recomputation over the in-memory dataset; the host UI re-invokes it on
// each input change.
package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/GoldenCoast-Capital/MarketScore/internal/dataset"
	"github.com/GoldenCoast-Capital/MarketScore/internal/finance"
	"github.com/GoldenCoast-Capital/MarketScore/internal/scoring"
)

// Inputs are the user-adjustable knobs for one scoring pass.
type Inputs struct {
	Assumptions finance.Assumptions
	Weights     scoring.Scheme
}

// Result is one completed scoring pass. Markets are ranked by Master Score
// descending, ties broken by market name ascending.
type Result struct {
	PassID      uuid.UUID               `json:"pass_id"`
	GeneratedAt time.Time               `json:"generated_at"`
	Total       int                     `json:"total_markets"`
	Filtered    int                     `json:"filtered_markets"`
	Markets     []*scoring.ScoredMarket `json:"markets"`
}

// FilterByCapital retains markets whose total cash requirement fits the
// ceiling. Idempotent; may return an empty slice.
func FilterByCapital(set []*scoring.ScoredMarket, maxInvestment float64) []*scoring.ScoredMarket {
	out := make([]*scoring.ScoredMarket, 0, len(set))
	for _, sm := range set {
		if sm.TotalCashRequired <= maxInvestment {
			out = append(out, sm)
		}
	}
	return out
}

// Run executes one full pass over the dataset. An empty filtered set yields
// a valid empty ranking.
func Run(markets []dataset.Market, in Inputs) Result {
	start := time.Now()

	set := make([]*scoring.ScoredMarket, 0, len(markets))
	for _, m := range markets {
		set = append(set, &scoring.ScoredMarket{
			Market:    m,
			Economics: finance.Evaluate(m, in.Assumptions),
		})
	}

	set = FilterByCapital(set, in.Assumptions.MaxInvestment)
	scoring.Apply(set, in.Weights)

	sort.SliceStable(set, func(i, j int) bool {
		if set[i].MasterScore != set[j].MasterScore {
			return set[i].MasterScore > set[j].MasterScore
		}
		return set[i].Name < set[j].Name
	})

	res := Result{
		PassID:      uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Total:       len(markets),
		Filtered:    len(set),
		Markets:     set,
	}
	observePass(res, time.Since(start))
	return res
}

// Top returns the first n ranked markets, or all of them if fewer.
func (r Result) Top(n int) []*scoring.ScoredMarket {
	if n <= 0 || n > len(r.Markets) {
		return r.Markets
	}
	return r.Markets[:n]
}

// Lookup finds a ranked market by name.
func (r Result) Lookup(name string) (*scoring.ScoredMarket, bool) {
	for _, sm := range r.Markets {
		if sm.Name == name {
			return sm, true
		}
	}
	return nil, false
}
