package api

import (
	"net/http"

	"github.com/GoldenCoast-Capital/MarketScore/internal/export"
)

// Export handles POST /api/v1/export: the full scored table (no top-N cut)
// as a CSV attachment.
func (h *ScoreHandler) Export(w http.ResponseWriter, r *http.Request) {
	_, res, weights, err := h.runPass(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="top_markets_scored.csv"`)
	w.WriteHeader(http.StatusOK)

	if err := export.WriteCSV(w, res, weights); err != nil {
		h.logger.Error("csv export failed", "error", err)
	}
}
