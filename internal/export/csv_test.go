package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/GoldenCoast-Capital/MarketScore/internal/dataset"
	"github.com/GoldenCoast-Capital/MarketScore/internal/engine"
	"github.com/GoldenCoast-Capital/MarketScore/internal/finance"
	"github.com/GoldenCoast-Capital/MarketScore/internal/scoring"
)

func TestWriteCSV(t *testing.T) {
	markets := []dataset.Market{
		{Name: "Cleveland", State: "OH", MedianPrice: 148000, AnnualRevenue: 38000, MedianRent2Bed: 1350, Occupancy: 54},
		{Name: "Tampa", State: "FL", MedianPrice: 340000, AnnualRevenue: 61000, MedianRent2Bed: 2100, Occupancy: 61},
	}
	weights := scoring.Scheme{"occupancy": 0.5, "median_price_small_multi": 0.5}
	res := engine.Run(markets, engine.Inputs{
		Assumptions: finance.Assumptions{
			InterestRate: 0.07, LoanTermYears: 30, DownPaymentPct: 0.20,
			STRExpenseRatio: 0.30, LTRExpenseRatio: 0.40, MaxInvestment: 500000,
		},
		Weights: weights,
	})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res, weights); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}

	header := records[0]
	// identity + score + 9 economics + 2 weighted metrics * (raw, norm)
	if len(header) != 3+9+4 {
		t.Errorf("unexpected header width %d: %v", len(header), header)
	}
	if header[0] != "market_name" || header[2] != "master_score" {
		t.Errorf("unexpected header: %v", header)
	}

	for _, rec := range records[1:] {
		if len(rec) != len(header) {
			t.Errorf("ragged row: %v", rec)
		}
	}
}

func TestWriteCSVEmptyResult(t *testing.T) {
	res := engine.Run(nil, engine.Inputs{Weights: scoring.Scheme{"occupancy": 1}})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res, scoring.Scheme{"occupancy": 1}); err != nil {
		t.Fatalf("WriteCSV on empty result failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected header only, got %d records", len(records))
	}
}
