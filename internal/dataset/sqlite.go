package dataset

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LoadSQLite reads the full market dataset from a SQLite database file.
func LoadSQLite(path, table string) ([]Market, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT ` + marketColumns + ` FROM ` + table + ` ORDER BY market_name`)
	if err != nil {
		return nil, fmt.Errorf("query markets: %w", err)
	}
	defer rows.Close()

	var markets []Market
	for rows.Next() {
		var m Market
		if err := rows.Scan(
			&m.Name, &m.State,
			&m.MarketScore, &m.AnnualRevenue, &m.Occupancy, &m.BookingDemandGrowth,
			&m.GrossYieldSFR, &m.RentToPrice, &m.MedianRent2Bed,
			&m.MedianPrice, &m.SmallMultiDiscount, &m.HomeValueGrowth5Y,
			&m.PopulationGrowth5Y, &m.RentGrowthYoY, &m.VacancyRate,
		); err != nil {
			return nil, fmt.Errorf("scan market row: %w", err)
		}
		markets = append(markets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate markets: %w", err)
	}
	return markets, nil
}
