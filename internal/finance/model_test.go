package finance

import (
	"math"
	"testing"

	"github.com/GoldenCoast-Capital/MarketScore/internal/dataset"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name  string
		loan  float64
		rate  float64
		years int
		want  float64
		tol   float64
	}{
		{"100k at 6% over 30y", 100000, 0.06, 30, 599.55, 0.01},
		{"zero rate straight line", 120000, 0, 10, 1000.00, 0},
		{"200k at 7% over 30y", 200000, 0.07, 30, 1330.60, 0.01},
		{"zero term", 100000, 0.06, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(tt.loan, tt.rate, tt.years)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("got %.4f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	m := dataset.Market{
		Name:           "Cleveland",
		MedianPrice:    200000,
		AnnualRevenue:  48000,
		MedianRent2Bed: 1500,
	}
	a := Assumptions{
		InterestRate:     0.07,
		LoanTermYears:    30,
		DownPaymentPct:   0.20,
		STRExpenseRatio:  0.30,
		LTRExpenseRatio:  0.40,
		RenovationBuffer: 30000,
	}

	e := Evaluate(m, a)

	// loan = 160000; payment at 7%/30y ≈ 1064.48
	if math.Abs(e.Mortgage-1064.48) > 0.01 {
		t.Errorf("mortgage: got %.4f, want 1064.48", e.Mortgage)
	}

	// STR: 48000*0.30/12 = 1200 expenses; 4000 - 1064.48 - 1200 = 1735.52
	if math.Abs(e.STRExpenses-1200) > 1e-9 {
		t.Errorf("str expenses: got %f", e.STRExpenses)
	}
	if math.Abs(e.STRCashFlow-1735.52) > 0.01 {
		t.Errorf("str cash flow: got %.4f", e.STRCashFlow)
	}
	if e.STRPositiveCF != 1 {
		t.Errorf("expected positive STR flag, got %f", e.STRPositiveCF)
	}

	// LTR: 1500*0.40 = 600 expenses; 1500 - 1064.48 - 600 = -164.48
	if math.Abs(e.LTRExpenses-600) > 1e-9 {
		t.Errorf("ltr expenses: got %f", e.LTRExpenses)
	}
	if e.LTRCashFlow >= 0 {
		t.Errorf("expected negative LTR cash flow, got %f", e.LTRCashFlow)
	}
	if e.LTRPositiveCF != 0 {
		t.Errorf("expected zero LTR flag, got %f", e.LTRPositiveCF)
	}

	// yield = 48000/200000 = 0.24
	if math.Abs(e.STRYield-0.24) > 1e-9 {
		t.Errorf("yield: got %f", e.STRYield)
	}

	// cash required = (0.20+0.04)*200000 + 30000 = 78000
	if math.Abs(e.TotalCashRequired-78000) > 1e-9 {
		t.Errorf("cash required: got %f", e.TotalCashRequired)
	}
}

func TestEvaluateZeroPrice(t *testing.T) {
	m := dataset.Market{Name: "Ghost Town", MedianPrice: 0, AnnualRevenue: 10000}
	e := Evaluate(m, Assumptions{InterestRate: 0.07, LoanTermYears: 30, DownPaymentPct: 0.20})

	if !math.IsInf(e.TotalCashRequired, 1) {
		t.Errorf("expected +Inf cash required, got %f", e.TotalCashRequired)
	}
	if e.STRYield != 0 {
		t.Errorf("expected zero yield sentinel, got %f", e.STRYield)
	}
	if e.Mortgage != 0 {
		t.Errorf("expected zero mortgage, got %f", e.Mortgage)
	}
}
