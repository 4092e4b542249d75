package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	renderCycles *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	authResults  *prometheus.CounterVec
	lastPrice    *prometheus.GaugeVec
	fetchLatency *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		renderCycles: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskboard_render_cycles_total",
				Help: "Total number of render cycles executed",
			},
			[]string{"authenticated"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskboard_provider_errors_total",
				Help: "Total number of provider errors by kind",
			},
			[]string{"kind"},
		),
		authResults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskboard_auth_attempts_total",
				Help: "Token validation attempts by outcome",
			},
			[]string{"result"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "riskboard_last_price_usd",
				Help: "Last observed spot price for an asset",
			},
			[]string{"asset"},
		),
		fetchLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "riskboard_fetch_duration_seconds",
				Help:    "Duration of provider fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
	}
}

// RecordRenderCycle records a completed render cycle.
func (r *Recorder) RecordRenderCycle(authenticated bool) {
	label := "false"
	if authenticated {
		label = "true"
	}
	r.renderCycles.WithLabelValues(label).Inc()
}

// RecordError records a provider error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordAuthResult records a token validation outcome.
func (r *Recorder) RecordAuthResult(result string) {
	r.authResults.WithLabelValues(result).Inc()
}

// RecordLastPrice records the last spot price for an asset.
func (r *Recorder) RecordLastPrice(asset string, price float64) {
	r.lastPrice.WithLabelValues(asset).Set(price)
}

// RecordFetchLatency records a provider fetch duration in seconds.
func (r *Recorder) RecordFetchLatency(provider string, seconds float64) {
	r.fetchLatency.WithLabelValues(provider).Observe(seconds)
}
