package dataset

// Market is one row of the raw market dataset. All numeric fields come
// straight from the master sheet; derived economics live in
// internal/finance and are never written back here.
type Market struct {
	Name  string `json:"market_name"`
	State string `json:"state"`

	// STR performance inputs
	MarketScore         float64 `json:"market_score"`
	AnnualRevenue       float64 `json:"annual_revenue"`
	Occupancy           float64 `json:"occupancy"`
	BookingDemandGrowth float64 `json:"booking_demand_growth"`

	// LTR inputs
	GrossYieldSFR  float64 `json:"gross_yield_sfr"`
	RentToPrice    float64 `json:"rent_to_price_ratio"`
	MedianRent2Bed float64 `json:"median_rent_2bed"`

	// Entry & value inputs
	MedianPrice        float64 `json:"median_price_small_multi"`
	SmallMultiDiscount float64 `json:"small_multi_discount"`
	HomeValueGrowth5Y  float64 `json:"home_value_growth_5y"`

	// Fundamentals
	PopulationGrowth5Y float64 `json:"population_growth_5y"`
	RentGrowthYoY      float64 `json:"rent_growth_yoy"`
	VacancyRate        float64 `json:"vacancy_rate"`
}
