package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	passesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketscore_passes_total",
		Help: "Number of completed scoring passes.",
	})
	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "marketscore_pass_duration_seconds",
		Help:    "Duration of a full scoring pass.",
		Buckets: prometheus.DefBuckets,
	})
	filteredMarkets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "marketscore_filtered_markets",
		Help: "Markets surviving the capital filter in the latest pass.",
	})
)

func observePass(res Result, elapsed time.Duration) {
	passesTotal.Inc()
	passDuration.Observe(elapsed.Seconds())
	filteredMarkets.Set(float64(res.Filtered))
}
