package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/GoldenCoast-Capital/MarketScore/internal/compare"
	"github.com/GoldenCoast-Capital/MarketScore/internal/config"
	"github.com/GoldenCoast-Capital/MarketScore/internal/dataset"
	"github.com/GoldenCoast-Capital/MarketScore/internal/engine"
	"github.com/GoldenCoast-Capital/MarketScore/internal/events"
	"github.com/GoldenCoast-Capital/MarketScore/internal/finance"
	"github.com/GoldenCoast-Capital/MarketScore/internal/scoring"
)

// topNMenu is the fixed set of table sizes the UI offers.
var topNMenu = map[int]bool{5: true, 10: true, 15: true, 20: true}

type ScoreHandler struct {
	markets []dataset.Market
	events  events.Client
	cfg     *config.Config
	logger  *slog.Logger
}

func NewScoreHandler(markets []dataset.Market, ev events.Client, cfg *config.Config, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{markets: markets, events: ev, cfg: cfg, logger: logger}
}

// AssumptionsPayload overrides individual financial assumptions; omitted
// fields fall back to the configured defaults.
type AssumptionsPayload struct {
	InterestRate      *float64 `json:"interest_rate,omitempty"`
	LoanTermYears     *int     `json:"loan_term_years,omitempty"`
	DownPaymentPct    *float64 `json:"down_payment_pct,omitempty"`
	STRExpenseRatio   *float64 `json:"str_expense_ratio,omitempty"`
	LTRExpenseRatio   *float64 `json:"ltr_expense_ratio,omitempty"`
	IncludeRenovation *bool    `json:"include_renovation,omitempty"`
	MaxInvestment     *float64 `json:"max_investment,omitempty"`
}

// PassRequest is the shared input shape for score, compare, and export.
type PassRequest struct {
	Assumptions   *AssumptionsPayload   `json:"assumptions,omitempty"`
	WeightMode    scoring.Mode          `json:"weight_mode,omitempty"`
	Preset        string                `json:"preset,omitempty"`
	ThemeWeights  *scoring.ThemeWeights `json:"theme_weights,omitempty"`
	MetricWeights scoring.Scheme        `json:"metric_weights,omitempty"`
	TopN          int                   `json:"top_n,omitempty"`

	// Compare only
	MarketA string `json:"market_a,omitempty"`
	MarketB string `json:"market_b,omitempty"`
}

// RankedRow is one line of the ranked table: identity, composite score and
// each weighted metric's raw value.
type RankedRow struct {
	Rank        int                `json:"rank"`
	MarketName  string             `json:"market_name"`
	State       string             `json:"state"`
	MasterScore float64            `json:"master_score"`
	Metrics     map[string]float64 `json:"metrics"`
}

type ScoreResponse struct {
	PassID          uuid.UUID      `json:"pass_id"`
	GeneratedAt     time.Time      `json:"generated_at"`
	TotalMarkets    int            `json:"total_markets"`
	FilteredMarkets int            `json:"filtered_markets"`
	Weights         scoring.Scheme `json:"weights"`
	Markets         []RankedRow    `json:"markets"`
}

func (h *ScoreHandler) assumptions(p *AssumptionsPayload) finance.Assumptions {
	d := h.cfg.Assumptions
	a := finance.Assumptions{
		InterestRate:     d.InterestRate,
		LoanTermYears:    d.LoanTermYears,
		DownPaymentPct:   d.DownPaymentPct,
		STRExpenseRatio:  d.STRExpenseRatio,
		LTRExpenseRatio:  d.LTRExpenseRatio,
		RenovationBuffer: d.Buffer(),
		MaxInvestment:    d.MaxInvestment,
	}
	if p == nil {
		return a
	}
	if p.InterestRate != nil {
		a.InterestRate = *p.InterestRate
	}
	if p.LoanTermYears != nil {
		a.LoanTermYears = *p.LoanTermYears
	}
	if p.DownPaymentPct != nil {
		a.DownPaymentPct = *p.DownPaymentPct
	}
	if p.STRExpenseRatio != nil {
		a.STRExpenseRatio = *p.STRExpenseRatio
	}
	if p.LTRExpenseRatio != nil {
		a.LTRExpenseRatio = *p.LTRExpenseRatio
	}
	if p.IncludeRenovation != nil {
		a.RenovationBuffer = 0
		if *p.IncludeRenovation {
			a.RenovationBuffer = d.RenovationBuffer
		}
	}
	if p.MaxInvestment != nil {
		a.MaxInvestment = *p.MaxInvestment
	}
	return a
}

func (h *ScoreHandler) weights(req *PassRequest) (scoring.Scheme, error) {
	mode := req.WeightMode
	if mode == "" || mode == scoring.ModeThemes {
		themes, err := h.themeWeights(req)
		if err != nil {
			return nil, err
		}
		return scoring.ResolveWeights(scoring.ModeThemes, themes, nil)
	}
	return scoring.ResolveWeights(mode, scoring.ThemeWeights{}, req.MetricWeights)
}

func (h *ScoreHandler) themeWeights(req *PassRequest) (scoring.ThemeWeights, error) {
	if req.ThemeWeights != nil {
		return *req.ThemeWeights, nil
	}
	name := req.Preset
	if name == "" {
		name = h.cfg.Scoring.Preset
	}
	w, ok := scoring.Preset(name)
	if !ok {
		return scoring.ThemeWeights{}, errors.New("unknown preset: " + name)
	}
	return w, nil
}

// runPass decodes a pass request, runs the full pipeline and publishes the
// pass event. Every call recomputes from the raw dataset.
func (h *ScoreHandler) runPass(r *http.Request) (*PassRequest, engine.Result, scoring.Scheme, error) {
	req := &PassRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return nil, engine.Result{}, nil, errors.New("invalid request body")
		}
	}

	weights, err := h.weights(req)
	if err != nil {
		return nil, engine.Result{}, nil, err
	}

	res := engine.Run(h.markets, engine.Inputs{
		Assumptions: h.assumptions(req.Assumptions),
		Weights:     weights,
	})
	h.publish(res)
	return req, res, weights, nil
}

func (h *ScoreHandler) publish(res engine.Result) {
	if h.events == nil {
		return
	}
	ev := events.PassCompleted{
		PassID:          res.PassID.String(),
		GeneratedAt:     res.GeneratedAt,
		TotalMarkets:    res.Total,
		FilteredMarkets: res.Filtered,
	}
	if len(res.Markets) > 0 {
		ev.TopMarket = res.Markets[0].Name
		ev.TopScore = res.Markets[0].MasterScore
	}
	if err := h.events.Publish(events.SubjectPassCompleted(ev.PassID), ev); err != nil {
		h.logger.Warn("failed to publish pass event", "error", err)
	}
}

// Score handles POST /api/v1/score.
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	req, res, weights, err := h.runPass(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	topN := req.TopN
	if topN == 0 {
		topN = h.cfg.Scoring.TopN
	}
	if !topNMenu[topN] {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "top_n must be one of 5, 10, 15, 20"})
		return
	}

	rows := make([]RankedRow, 0, topN)
	for i, sm := range res.Top(topN) {
		row := RankedRow{
			Rank:        i + 1,
			MarketName:  sm.Name,
			State:       sm.State,
			MasterScore: sm.MasterScore,
			Metrics:     make(map[string]float64),
		}
		for _, metric := range scoring.Catalog() {
			if _, ok := weights[metric.ID]; ok {
				row.Metrics[metric.ID] = metric.Value(sm.Market, sm.Economics)
			}
		}
		rows = append(rows, row)
	}

	writeJSON(w, http.StatusOK, ScoreResponse{
		PassID:          res.PassID,
		GeneratedAt:     res.GeneratedAt,
		TotalMarkets:    res.Total,
		FilteredMarkets: res.Filtered,
		Weights:         weights,
		Markets:         rows,
	})
}

// Compare handles POST /api/v1/compare.
func (h *ScoreHandler) Compare(w http.ResponseWriter, r *http.Request) {
	req, res, weights, err := h.runPass(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.MarketA == "" || req.MarketB == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "market_a and market_b required"})
		return
	}

	c, err := compare.Compare(res, weights, req.MarketA, req.MarketB)
	if err != nil {
		if errors.Is(err, compare.ErrMarketNotRanked) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, c)
}
