package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvColumns is the fixed schema of the exported master sheet. Column order
// in the file does not matter; every column must be present.
var csvColumns = []string{
	"market_name", "state",
	"market_score", "annual_revenue", "occupancy", "booking_demand_growth",
	"gross_yield_sfr", "rent_to_price_ratio", "median_rent_2bed",
	"median_price_small_multi", "small_multi_discount", "home_value_growth_5y",
	"population_growth_5y", "rent_growth_yoy", "vacancy_rate",
}

// LoadCSV reads the full market dataset from a CSV export of the master
// sheet at the given path.
func LoadCSV(path string) ([]Market, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	markets, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return markets, nil
}

// ReadCSV parses market rows from r. The first record must be a header row
// naming every schema column.
func ReadCSV(r io.Reader) ([]Market, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, col := range csvColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var markets []Market
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		m := Market{
			Name:  rec[idx["market_name"]],
			State: rec[idx["state"]],
		}
		fields := map[string]*float64{
			"market_score":             &m.MarketScore,
			"annual_revenue":           &m.AnnualRevenue,
			"occupancy":                &m.Occupancy,
			"booking_demand_growth":    &m.BookingDemandGrowth,
			"gross_yield_sfr":          &m.GrossYieldSFR,
			"rent_to_price_ratio":      &m.RentToPrice,
			"median_rent_2bed":         &m.MedianRent2Bed,
			"median_price_small_multi": &m.MedianPrice,
			"small_multi_discount":     &m.SmallMultiDiscount,
			"home_value_growth_5y":     &m.HomeValueGrowth5Y,
			"population_growth_5y":     &m.PopulationGrowth5Y,
			"rent_growth_yoy":          &m.RentGrowthYoY,
			"vacancy_rate":             &m.VacancyRate,
		}
		for col, dst := range fields {
			v, err := strconv.ParseFloat(rec[idx[col]], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: column %q: %w", line, col, err)
			}
			*dst = v
		}
		markets = append(markets, m)
	}
	return markets, nil
}
