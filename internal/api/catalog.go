package api

import (
	"net/http"

	"github.com/GoldenCoast-Capital/MarketScore/internal/scoring"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Catalog handles GET /api/v1/catalog: the fixed metric catalog and theme
// groups, for the UI to render sliders and help text.
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"metrics": scoring.Catalog(),
		"groups":  scoring.Groups(),
	})
}

// Presets handles GET /api/v1/presets.
func (h *CatalogHandler) Presets(w http.ResponseWriter, r *http.Request) {
	out := make([]map[string]interface{}, 0, len(scoring.PresetNames))
	for _, name := range scoring.PresetNames {
		weights, _ := scoring.Preset(name)
		out = append(out, map[string]interface{}{
			"name":    name,
			"weights": weights,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
