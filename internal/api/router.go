package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GoldenCoast-Capital/MarketScore/internal/config"
	"github.com/GoldenCoast-Capital/MarketScore/internal/dataset"
	"github.com/GoldenCoast-Capital/MarketScore/internal/events"
)

func NewRouter(markets []dataset.Market, ev events.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	score := NewScoreHandler(markets, ev, cfg, logger)
	catalog := NewCatalogHandler()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/score", score.Score)
		r.Post("/compare", score.Compare)
		r.Post("/export", score.Export)

		r.Get("/catalog", catalog.Catalog)
		r.Get("/presets", catalog.Presets)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
