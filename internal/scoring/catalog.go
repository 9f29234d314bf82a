package scoring

import (
	"github.com/GoldenCoast-Capital/MarketScore/internal/dataset"
	"github.com/GoldenCoast-Capital/MarketScore/internal/finance"
)

// Direction says whether a higher raw value makes a market more attractive.
type Direction string

const (
	// Benefit metrics contribute their normalized value directly.
	Benefit Direction = "benefit"
	// Cost metrics contribute 1 - normalized: lower raw value is better.
	Cost Direction = "cost"
)

// Metric is one entry in the fixed scoring catalog. Value extracts the raw
// metric from a market row and its derived economics.
type Metric struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Group       string    `json:"group"`
	Direction   Direction `json:"direction"`
	Description string    `json:"description"`

	Value func(m dataset.Market, e finance.Economics) float64 `json:"-"`
}

// Group names for the four themes.
const (
	GroupSTRPerformance = "str_performance"
	GroupLTRSafetyNet   = "ltr_safety_net"
	GroupEntryValue     = "entry_value"
	GroupFundamentals   = "fundamentals"
)

// Group is a theme bucket sharing one user-adjustable weight.
type Group struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Metrics []string `json:"metrics"`
}

var catalog = []Metric{
	{
		ID: "market_score", Label: "Market Score", Group: GroupSTRPerformance, Direction: Benefit,
		Description: "Overall STR market performance score from AirDNA.",
		Value:       func(m dataset.Market, _ finance.Economics) float64 { return m.MarketScore },
	},
	{
		ID: "str_yield", Label: "STR Yield", Group: GroupSTRPerformance, Direction: Benefit,
		Description: "STR annual revenue divided by property price.",
		Value:       func(_ dataset.Market, e finance.Economics) float64 { return e.STRYield },
	},
	{
		ID: "occupancy", Label: "Occupancy", Group: GroupSTRPerformance, Direction: Benefit,
		Description: "Average annual occupancy rate for STR listings.",
		Value:       func(m dataset.Market, _ finance.Economics) float64 { return m.Occupancy },
	},
	{
		ID: "booking_demand_growth", Label: "Booking Demand Growth", Group: GroupSTRPerformance, Direction: Benefit,
		Description: "Growth in STR demand year over year.",
		Value:       func(m dataset.Market, _ finance.Economics) float64 { return m.BookingDemandGrowth },
	},
	{
		ID: "str_positive_cf", Label: "STR Positive Cash Flow", Group: GroupSTRPerformance, Direction: Benefit,
		Description: "Binary flag: does STR cash flow after expenses?",
		Value:       func(_ dataset.Market, e finance.Economics) float64 { return e.STRPositiveCF },
	},
	{
		ID: "gross_yield_sfr", Label: "Gross Yield (SFR)", Group: GroupLTRSafetyNet, Direction: Benefit,
		Description: "LTR gross income / property price.",
		Value:       func(m dataset.Market, _ finance.Economics) float64 { return m.GrossYieldSFR },
	},
	{
		ID: "ltr_positive_cf", Label: "LTR Positive Cash Flow", Group: GroupLTRSafetyNet, Direction: Benefit,
		Description: "Binary flag: does LTR cash flow after expenses?",
		Value:       func(_ dataset.Market, e finance.Economics) float64 { return e.LTRPositiveCF },
	},
	{
		// The source sheet named this column with "Price" in it, so it has
		// always scored inverted. Kept for score compatibility.
		ID: "rent_to_price_ratio", Label: "Rent-to-Price Ratio", Group: GroupLTRSafetyNet, Direction: Cost,
		Description: "Monthly rent divided by home price.",
		Value:       func(m dataset.Market, _ finance.Economics) float64 { return m.RentToPrice },
	},
	{
		ID: "median_price_small_multi", Label: "Median Sales Price (2-4 Units)", Group: GroupEntryValue, Direction: Cost,
		Description: "Median price for 2-4 unit properties.",
		Value:       func(m dataset.Market, _ finance.Economics) float64 { return m.MedianPrice },
	},
	{
		ID: "small_multi_discount", Label: "Small Multi Discount", Group: GroupEntryValue, Direction: Benefit,
		Description: "Market discount compared to list price.",
		Value:       func(m dataset.Market, _ finance.Economics) float64 { return m.SmallMultiDiscount },
	},
	{
		ID: "home_value_growth_5y", Label: "Home Value Growth (5 Years)", Group: GroupEntryValue, Direction: Benefit,
		Description: "Appreciation over the past 5 years.",
		Value:       func(m dataset.Market, _ finance.Economics) float64 { return m.HomeValueGrowth5Y },
	},
	{
		ID: "population_growth_5y", Label: "Population Growth (5 Years)", Group: GroupFundamentals, Direction: Benefit,
		Description: "Population change over the past 5 years.",
		Value:       func(m dataset.Market, _ finance.Economics) float64 { return m.PopulationGrowth5Y },
	},
	{
		ID: "rent_growth_yoy", Label: "Rent Growth (YoY)", Group: GroupFundamentals, Direction: Benefit,
		Description: "Annual rent increase.",
		Value:       func(m dataset.Market, _ finance.Economics) float64 { return m.RentGrowthYoY },
	},
	{
		ID: "vacancy_rate", Label: "Vacancy Rate", Group: GroupFundamentals, Direction: Cost,
		Description: "% of unoccupied rental units (lower is better).",
		Value:       func(m dataset.Market, _ finance.Economics) float64 { return m.VacancyRate },
	},
}

var groups = []Group{
	{ID: GroupSTRPerformance, Label: "STR Performance"},
	{ID: GroupLTRSafetyNet, Label: "LTR Safety Net"},
	{ID: GroupEntryValue, Label: "Entry & Value"},
	{ID: GroupFundamentals, Label: "Fundamentals"},
}

func init() {
	for i := range groups {
		for _, m := range catalog {
			if m.Group == groups[i].ID {
				groups[i].Metrics = append(groups[i].Metrics, m.ID)
			}
		}
	}
}

// Catalog returns the fixed metric catalog in scoring order.
func Catalog() []Metric {
	out := make([]Metric, len(catalog))
	copy(out, catalog)
	return out
}

// Groups returns the four theme groups with their member metric IDs.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}

// MetricByID looks a metric up in the catalog.
func MetricByID(id string) (Metric, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Metric{}, false
}
