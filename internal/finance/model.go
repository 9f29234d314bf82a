package finance

import (
	"math"

	"github.com/GoldenCoast-Capital/MarketScore/internal/dataset"
)

// closingCostPct models fixed closing costs as a fraction of purchase price.
const closingCostPct = 0.04

// Assumptions are the financing inputs shared by every market in a scoring
// pass. All ratio fields are fractions, not percentages.
type Assumptions struct {
	InterestRate     float64 `json:"interest_rate"`
	LoanTermYears    int     `json:"loan_term_years"`
	DownPaymentPct   float64 `json:"down_payment_pct"`
	STRExpenseRatio  float64 `json:"str_expense_ratio"`
	LTRExpenseRatio  float64 `json:"ltr_expense_ratio"`
	RenovationBuffer float64 `json:"renovation_buffer"`
	MaxInvestment    float64 `json:"max_investment"`
}

// Economics holds the per-market cash-flow figures derived from one set of
// assumptions. Monthly amounts unless noted.
type Economics struct {
	Mortgage          float64 `json:"est_mortgage"`
	STRExpenses       float64 `json:"str_expenses"`
	STRCashFlow       float64 `json:"str_cash_flow"`
	LTRExpenses       float64 `json:"ltr_expenses"`
	LTRCashFlow       float64 `json:"ltr_cash_flow"`
	STRPositiveCF     float64 `json:"str_positive_cf"` // 0 or 1, feeds normalization
	LTRPositiveCF     float64 `json:"ltr_positive_cf"` // 0 or 1
	STRYield          float64 `json:"str_yield"`       // annual revenue / price
	TotalCashRequired float64 `json:"total_cash_required"`
}

// MonthlyPayment returns the standard amortized monthly payment for a loan.
// A zero interest rate degenerates to straight-line principal repayment.
func MonthlyPayment(loanAmount, annualRate float64, termYears int) float64 {
	n := float64(termYears * 12)
	if n <= 0 {
		return 0
	}
	monthlyRate := annualRate / 12
	if monthlyRate == 0 {
		return loanAmount / n
	}
	factor := math.Pow(1+monthlyRate, n)
	return loanAmount * (monthlyRate * factor) / (factor - 1)
}

// Evaluate computes the cash-flow economics for one market under the given
// assumptions. A non-positive price cannot be financed: yield is reported as
// zero and TotalCashRequired as +Inf so the capital filter excludes the
// market.
func Evaluate(m dataset.Market, a Assumptions) Economics {
	var e Economics

	if m.MedianPrice <= 0 {
		e.TotalCashRequired = math.Inf(1)
		return e
	}

	loanAmount := m.MedianPrice * (1 - a.DownPaymentPct)
	e.Mortgage = MonthlyPayment(loanAmount, a.InterestRate, a.LoanTermYears)

	e.STRExpenses = m.AnnualRevenue * a.STRExpenseRatio / 12
	e.STRCashFlow = m.AnnualRevenue/12 - e.Mortgage - e.STRExpenses

	e.LTRExpenses = m.MedianRent2Bed * a.LTRExpenseRatio
	e.LTRCashFlow = m.MedianRent2Bed - e.Mortgage - e.LTRExpenses

	if e.STRCashFlow > 0 {
		e.STRPositiveCF = 1
	}
	if e.LTRCashFlow > 0 {
		e.LTRPositiveCF = 1
	}

	e.STRYield = m.AnnualRevenue / m.MedianPrice
	e.TotalCashRequired = (a.DownPaymentPct+closingCostPct)*m.MedianPrice + a.RenovationBuffer

	return e
}
