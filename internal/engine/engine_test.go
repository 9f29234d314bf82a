package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/GoldenCoast-Capital/MarketScore/internal/dataset"
	"github.com/GoldenCoast-Capital/MarketScore/internal/finance"
	"github.com/GoldenCoast-Capital/MarketScore/internal/scoring"
)

func testAssumptions() finance.Assumptions {
	return finance.Assumptions{
		InterestRate:     0.07,
		LoanTermYears:    30,
		DownPaymentPct:   0.20,
		STRExpenseRatio:  0.30,
		LTRExpenseRatio:  0.40,
		RenovationBuffer: 30000,
		MaxInvestment:    150000,
	}
}

func testMarkets() []dataset.Market {
	return []dataset.Market{
		{
			Name: "Cleveland", State: "OH",
			MarketScore: 72, AnnualRevenue: 38000, Occupancy: 54, BookingDemandGrowth: 6.2,
			GrossYieldSFR: 0.11, RentToPrice: 0.0091, MedianRent2Bed: 1350,
			MedianPrice: 148000, SmallMultiDiscount: 0.05, HomeValueGrowth5Y: 31,
			PopulationGrowth5Y: 1.2, RentGrowthYoY: 4.1, VacancyRate: 6.5,
		},
		{
			Name: "Tampa", State: "FL",
			MarketScore: 88, AnnualRevenue: 61000, Occupancy: 61, BookingDemandGrowth: 9.8,
			GrossYieldSFR: 0.08, RentToPrice: 0.0062, MedianRent2Bed: 2100,
			MedianPrice: 340000, SmallMultiDiscount: 0.02, HomeValueGrowth5Y: 58,
			PopulationGrowth5Y: 8.4, RentGrowthYoY: 6.0, VacancyRate: 5.2,
		},
		{
			Name: "Scranton", State: "PA",
			MarketScore: 65, AnnualRevenue: 29000, Occupancy: 49, BookingDemandGrowth: 3.1,
			GrossYieldSFR: 0.12, RentToPrice: 0.0105, MedianRent2Bed: 1100,
			MedianPrice: 112000, SmallMultiDiscount: 0.08, HomeValueGrowth5Y: 22,
			PopulationGrowth5Y: -0.4, RentGrowthYoY: 3.2, VacancyRate: 7.8,
		},
	}
}

func equalSchemeWeights() scoring.Scheme {
	scheme := scoring.Scheme{}
	for _, m := range scoring.Catalog() {
		scheme[m.ID] = 1.0
	}
	return scheme
}

func TestFilterByCapitalIdempotent(t *testing.T) {
	a := testAssumptions()
	var set []*scoring.ScoredMarket
	for _, m := range testMarkets() {
		set = append(set, &scoring.ScoredMarket{Market: m, Economics: finance.Evaluate(m, a)})
	}

	once := FilterByCapital(set, a.MaxInvestment)
	twice := FilterByCapital(once, a.MaxInvestment)
	if !reflect.DeepEqual(once, twice) {
		t.Error("filter is not idempotent")
	}
}

func TestFilterByCapitalExcludesExpensive(t *testing.T) {
	a := testAssumptions()
	var set []*scoring.ScoredMarket
	for _, m := range testMarkets() {
		set = append(set, &scoring.ScoredMarket{Market: m, Economics: finance.Evaluate(m, a)})
	}

	// Tampa needs (0.24)*340000 + 30000 = 111600; Cleveland 65520; Scranton 56880.
	got := FilterByCapital(set, 100000)
	names := make([]string, 0, len(got))
	for _, sm := range got {
		names = append(names, sm.Name)
	}
	if !reflect.DeepEqual(names, []string{"Cleveland", "Scranton"}) {
		t.Errorf("unexpected filtered set: %v", names)
	}
}

func TestRunDeterministic(t *testing.T) {
	in := Inputs{Assumptions: testAssumptions(), Weights: equalSchemeWeights()}

	first := Run(testMarkets(), in)
	second := Run(testMarkets(), in)

	if first.Filtered != second.Filtered || len(first.Markets) != len(second.Markets) {
		t.Fatalf("non-deterministic set size: %d vs %d", len(first.Markets), len(second.Markets))
	}
	for i := range first.Markets {
		if first.Markets[i].Name != second.Markets[i].Name {
			t.Errorf("rank %d differs: %s vs %s", i, first.Markets[i].Name, second.Markets[i].Name)
		}
		if first.Markets[i].MasterScore != second.Markets[i].MasterScore {
			t.Errorf("score for %s differs across runs: %v vs %v",
				first.Markets[i].Name, first.Markets[i].MasterScore, second.Markets[i].MasterScore)
		}
	}

	// Ranking is descending by score.
	for i := 1; i < len(first.Markets); i++ {
		if first.Markets[i-1].MasterScore < first.Markets[i].MasterScore {
			t.Errorf("ranking not descending at %d", i)
		}
	}
}

func TestRunEmptyResult(t *testing.T) {
	a := testAssumptions()
	a.MaxInvestment = 1

	res := Run(testMarkets(), Inputs{Assumptions: a, Weights: equalSchemeWeights()})
	if res.Filtered != 0 {
		t.Errorf("expected empty filtered set, got %d", res.Filtered)
	}
	if res.Total != 3 {
		t.Errorf("expected total 3, got %d", res.Total)
	}
	if len(res.Markets) != 0 {
		t.Errorf("expected empty ranking, got %d rows", len(res.Markets))
	}
	if len(res.Top(10)) != 0 {
		t.Error("Top on empty ranking should be empty")
	}
}

func TestRunExcludesUnpricedMarkets(t *testing.T) {
	markets := append(testMarkets(), dataset.Market{Name: "Nowhere", State: "KS"})

	res := Run(markets, Inputs{Assumptions: testAssumptions(), Weights: equalSchemeWeights()})
	if _, ok := res.Lookup("Nowhere"); ok {
		t.Error("zero-price market must be excluded by the capital filter")
	}
	if res.Total != 4 {
		t.Errorf("expected total 4, got %d", res.Total)
	}
}

func TestRunTieBreakByName(t *testing.T) {
	// Identical rows score identically; ranking falls back to name ascending.
	m := testMarkets()[0]
	a := m
	a.Name = "Zanesville"
	b := m
	b.Name = "Akron"

	res := Run([]dataset.Market{a, b}, Inputs{Assumptions: testAssumptions(), Weights: equalSchemeWeights()})
	if len(res.Markets) != 2 {
		t.Fatalf("expected 2 markets, got %d", len(res.Markets))
	}
	if res.Markets[0].MasterScore != res.Markets[1].MasterScore {
		t.Fatalf("expected tied scores, got %f vs %f", res.Markets[0].MasterScore, res.Markets[1].MasterScore)
	}
	if res.Markets[0].Name != "Akron" {
		t.Errorf("tie should order by name ascending, got %s first", res.Markets[0].Name)
	}
}

func TestTop(t *testing.T) {
	res := Run(testMarkets(), Inputs{Assumptions: testAssumptions(), Weights: equalSchemeWeights()})
	if got := len(res.Top(2)); got != 2 {
		t.Errorf("Top(2): got %d", got)
	}
	if got := len(res.Top(20)); got != len(res.Markets) {
		t.Errorf("Top beyond length should return all, got %d", got)
	}
}

func TestRunNormalizedBounds(t *testing.T) {
	res := Run(testMarkets(), Inputs{Assumptions: testAssumptions(), Weights: equalSchemeWeights()})
	for _, sm := range res.Markets {
		for id, n := range sm.Normalized {
			if n < 0 || n > 1 || math.IsNaN(n) {
				t.Errorf("%s/%s: normalized %f out of bounds", sm.Name, id, n)
			}
		}
	}
}
