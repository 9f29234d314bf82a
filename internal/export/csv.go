// Package export renders a completed scoring pass as a delimited-text
// document with all derived columns.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/GoldenCoast-Capital/MarketScore/internal/engine"
	"github.com/GoldenCoast-Capital/MarketScore/internal/scoring"
)

var economicsColumns = []string{
	"est_mortgage", "str_expenses", "str_cash_flow",
	"ltr_expenses", "ltr_cash_flow", "str_positive_cf", "ltr_positive_cf",
	"str_yield", "total_cash_required",
}

// WriteCSV streams the full scored table to w: identity, master score,
// cash-flow economics, then each weighted metric's raw and normalized value.
func WriteCSV(w io.Writer, res engine.Result, weights scoring.Scheme) error {
	var weighted []scoring.Metric
	for _, m := range scoring.Catalog() {
		if _, ok := weights[m.ID]; ok {
			weighted = append(weighted, m)
		}
	}

	header := []string{"market_name", "state", "master_score"}
	header = append(header, economicsColumns...)
	for _, m := range weighted {
		header = append(header, m.ID, m.ID+"_norm")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, sm := range res.Markets {
		row := []string{sm.Name, sm.State, ftoa(sm.MasterScore)}
		row = append(row,
			ftoa(sm.Mortgage), ftoa(sm.STRExpenses), ftoa(sm.STRCashFlow),
			ftoa(sm.LTRExpenses), ftoa(sm.LTRCashFlow), ftoa(sm.STRPositiveCF), ftoa(sm.LTRPositiveCF),
			ftoa(sm.STRYield), ftoa(sm.TotalCashRequired),
		)
		for _, m := range weighted {
			row = append(row, ftoa(m.Value(sm.Market, sm.Economics)), ftoa(sm.Normalized[m.ID]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
