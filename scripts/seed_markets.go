// seed_markets.go — standalone script to load a CSV export of the master
// score sheet into a SQLite database for the sqlite dataset source.
//
// Usage:
//
//	go run scripts/seed_markets.go -csv data/master_score_sheet.csv -db data/markets.db -table markets
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"

	"github.com/GoldenCoast-Capital/MarketScore/internal/dataset"
)

func main() {
	csvPath := flag.String("csv", "data/master_score_sheet.csv", "path to CSV export")
	dbPath := flag.String("db", "data/markets.db", "path to SQLite database")
	table := flag.String("table", "markets", "destination table name")
	flag.Parse()

	markets, err := dataset.LoadCSV(*csvPath)
	if err != nil {
		log.Fatalf("load csv: %v", err)
	}

	db, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	createStmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
  market_name TEXT PRIMARY KEY,
  state TEXT NOT NULL,
  market_score REAL NOT NULL,
  annual_revenue REAL NOT NULL,
  occupancy REAL NOT NULL,
  booking_demand_growth REAL NOT NULL,
  gross_yield_sfr REAL NOT NULL,
  rent_to_price_ratio REAL NOT NULL,
  median_rent_2bed REAL NOT NULL,
  median_price_small_multi REAL NOT NULL,
  small_multi_discount REAL NOT NULL,
  home_value_growth_5y REAL NOT NULL,
  population_growth_5y REAL NOT NULL,
  rent_growth_yoy REAL NOT NULL,
  vacancy_rate REAL NOT NULL
)`, *table)
	if _, err := db.Exec(createStmt); err != nil {
		log.Fatalf("create table: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("begin: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(fmt.Sprintf(`INSERT OR REPLACE INTO %s
(market_name, state, market_score, annual_revenue, occupancy, booking_demand_growth,
 gross_yield_sfr, rent_to_price_ratio, median_rent_2bed,
 median_price_small_multi, small_multi_discount, home_value_growth_5y,
 population_growth_5y, rent_growth_yoy, vacancy_rate)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, *table))
	if err != nil {
		log.Fatalf("prepare: %v", err)
	}
	defer stmt.Close()

	for _, m := range markets {
		if _, err := stmt.Exec(
			m.Name, m.State, m.MarketScore, m.AnnualRevenue, m.Occupancy, m.BookingDemandGrowth,
			m.GrossYieldSFR, m.RentToPrice, m.MedianRent2Bed,
			m.MedianPrice, m.SmallMultiDiscount, m.HomeValueGrowth5Y,
			m.PopulationGrowth5Y, m.RentGrowthYoY, m.VacancyRate,
		); err != nil {
			log.Fatalf("insert %s: %v", m.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("commit: %v", err)
	}
	log.Printf("seeded %d markets into %s (%s)", len(markets), *dbPath, *table)
}
