package dataset

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const marketColumns = `market_name, state,
	market_score, annual_revenue, occupancy, booking_demand_growth,
	gross_yield_sfr, rent_to_price_ratio, median_rent_2bed,
	median_price_small_multi, small_multi_discount, home_value_growth_5y,
	population_growth_5y, rent_growth_yoy, vacancy_rate`

// LoadPostgres reads the full market dataset from a Postgres table. The
// dataset is loaded once at startup; the pool is closed before returning.
func LoadPostgres(ctx context.Context, databaseURL, table string) ([]Market, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	rows, err := pool.Query(ctx, `SELECT `+marketColumns+` FROM `+table+` ORDER BY market_name`)
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
