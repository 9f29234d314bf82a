package events

import "time"

const (
	StreamName   = "MARKETSCORE_EVENTS"
	StreamMaxAge = "168h" // 7 days
)

func SubjectPassCompleted(passID string) string { return "marketscore.pass." + passID + ".completed" }

// PassCompleted summarizes one finished scoring pass.
type PassCompleted struct {
	PassID          string    `json:"pass_id"`
	GeneratedAt     time.Time `json:"generated_at"`
	TotalMarkets    int       `json:"total_markets"`
	FilteredMarkets int       `json:"filtered_markets"`
	TopMarket       string    `json:"top_market,omitempty"`
	TopScore        float64   `json:"top_score,omitempty"`
}
