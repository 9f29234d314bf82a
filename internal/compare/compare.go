// Package compare builds side-by-side market comparisons and the investor
// narrative over a completed scoring pass.
package compare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GoldenCoast-Capital/MarketScore/internal/engine"
	"github.com/GoldenCoast-Capital/MarketScore/internal/scoring"
)

// ErrMarketNotRanked is returned when a selected market is missing from the
// filtered set, typically because the capital ceiling excludes it.
var ErrMarketNotRanked = errors.New("market not available under current filter")

// Row is one metric line of the comparison table, raw (not normalized)
// values for both markets.
type Row struct {
	Metric string  `json:"metric"`
	Label  string  `json:"label"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
}

// Comparison is the full two-market diff plus the narrative text block.
type Comparison struct {
	MarketA   string `json:"market_a"`
	MarketB   string `json:"market_b"`
	Rows      []Row  `json:"rows"`
	Narrative string `json:"narrative"`
}

// Compare resolves both markets in the ranked result and builds the diff of
// Master Score plus every weighted metric's raw value.
func Compare(res engine.Result, weights scoring.Scheme, nameA, nameB string) (*Comparison, error) {
	a, ok := res.Lookup(nameA)
	if !ok {
		return nil, fmt.Errorf("%s: %w", nameA, ErrMarketNotRanked)
	}
	b, ok := res.Lookup(nameB)
	if !ok {
		return nil, fmt.Errorf("%s: %w", nameB, ErrMarketNotRanked)
	}

	rows := []Row{{Metric: "master_score", Label: "Master Score", A: a.MasterScore, B: b.MasterScore}}
	for _, metric := range scoring.Catalog() {
		if _, weighted := weights[metric.ID]; !weighted {
			continue
		}
		rows = append(rows, Row{
			Metric: metric.ID,
			Label:  metric.Label,
			A:      metric.Value(a.Market, a.Economics),
			B:      metric.Value(b.Market, b.Economics),
		})
	}

	return &Comparison{
		MarketA:   nameA,
		MarketB:   nameB,
		Rows:      rows,
		Narrative: Narrative(a, b),
	}, nil
}

// Narrative renders the investor recommendation for two resolved markets.
// Higher STR yield wins the short-term upside call; higher LTR cash flow
// wins the long-term safety call.
func Narrative(a, b *scoring.ScoredMarket) string {
	var sb strings.Builder

	sb.WriteString("Investor Insight Analysis\n\n")
	fmt.Fprintf(&sb, "High-level comparison between %s and %s:\n\n", a.Name, b.Name)

	for _, sm := range []*scoring.ScoredMarket{a, b} {
		fmt.Fprintf(&sb, "%s, %s:\n", sm.Name, sm.State)
		fmt.Fprintf(&sb, "- Master Score: %.2f\n", sm.MasterScore)
		fmt.Fprintf(&sb, "- STR Yield: %.2f%% | LTR Gross Yield: %.2f%%\n", sm.STRYield*100, sm.GrossYieldSFR*100)
		fmt.Fprintf(&sb, "- Occupancy Rate: %.1f%%\n", sm.Occupancy)
		fmt.Fprintf(&sb, "- Median Price (2-4 Units): $%.0f\n", sm.MedianPrice)
		fmt.Fprintf(&sb, "- STR Cash Flow: $%.0f | LTR Cash Flow: $%.0f\n\n", sm.STRCashFlow, sm.LTRCashFlow)
	}

	upside := a
	if b.STRYield > a.STRYield {
		upside = b
	}
	safety := a
	if b.LTRCashFlow > a.LTRCashFlow {
		safety = b
	}

	sb.WriteString("Recommendation:\n")
	fmt.Fprintf(&sb, "If you're seeking higher STR upside, go with %s.\n", upside.Name)
	fmt.Fprintf(&sb, "If long-term resilience and safety are top priority, %s may win.\n", safety.Name)

	return sb.String()
}
